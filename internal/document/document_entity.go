package document

import (
	"time"

	"github.com/google/uuid"
)

// FileTypes doubles as the first segment of the object key.
var FileTypes = map[string]bool{
	"profile-picture":       true,
	"document":              true,
	"certificate":           true,
	"id-proof":              true,
	"address-proof":         true,
	"education-certificate": true,
	"experience-letter":     true,
	"other":                 true,
}

type Document struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_documents_employee_type"`
	FileName     string     `gorm:"type:varchar(255);not null"`
	OriginalName string     `gorm:"type:varchar(255);not null"`
	FilePath     string     `gorm:"type:varchar(512);not null"`
	FileSize     int64      `gorm:"not null"`
	MimeType     string     `gorm:"type:varchar(150);not null"`
	FileType     string     `gorm:"type:varchar(40);not null;index:idx_documents_employee_type"`
	Category     string     `gorm:"type:varchar(40);not null;default:'personal'"`
	Description  string     `gorm:"type:text"`
	IsActive     bool       `gorm:"default:true"`
	IsDeleted    bool       `gorm:"default:false"`
	UploadedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	DeletedBy    *uuid.UUID `gorm:"type:uuid"`
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Document) TableName() string {
	return "documents"
}
