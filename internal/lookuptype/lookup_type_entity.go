package lookuptype

import (
	"time"

	"github.com/google/uuid"
)

// LookupType maps a sequential code to a display name. Requests reference it
// by code only.
type LookupType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        int       `gorm:"not null;uniqueIndex:uq_lookup_types_code"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	DeletedBy *uuid.UUID `gorm:"type:uuid"`
	IsDeleted bool       `gorm:"not null;default:false"`
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LookupType) TableName() string {
	return "lookup_types"
}
