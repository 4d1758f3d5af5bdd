package profilefile

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultFileType = "other"
	DefaultCategory = "personal"
)

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

var Categories = map[string]bool{
	"professional": true,
	"personal":     true,
	"tax":          true,
	"employment":   true,
	"bank":         true,
	"photos":       true,
	"education":    true,
	"identity":     true,
}

type ProfileFile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_profile_files_employee"`
	FileName     string     `gorm:"type:varchar(255);not null"`
	OriginalName string     `gorm:"type:varchar(255);not null"`
	FilePath     string     `gorm:"type:varchar(512);not null"`
	FileSize     int64      `gorm:"not null"`
	MimeType     string     `gorm:"type:varchar(150);not null"`
	FileType     string     `gorm:"type:varchar(40);not null;default:'other'"`
	Category     string     `gorm:"type:varchar(40);not null;default:'personal'"`
	Description  string     `gorm:"type:text"`
	IsActive     bool       `gorm:"default:true"`
	IsDeleted    bool       `gorm:"default:false"`
	UploadedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	UpdatedBy    *uuid.UUID `gorm:"type:uuid"`
	DeletedBy    *uuid.UUID `gorm:"type:uuid"`
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProfileFile) TableName() string {
	return "profile_files"
}

type ProfileFileView struct {
	ProfileFile
	EmployeeName   string
	EmployeeNumber string
	UploadedByName string
}
