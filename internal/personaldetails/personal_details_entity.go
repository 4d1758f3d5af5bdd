package personaldetails

import (
	"time"

	"github.com/google/uuid"
)

type PersonalDetails struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_personal_details_employee"`
	DateOfBirth   *time.Time `gorm:"type:date"`
	Gender        string     `gorm:"type:varchar(20)"`
	Nationality   string     `gorm:"type:varchar(100)"`
	MaritalStatus string     `gorm:"type:varchar(30)"`
	BloodGroup    string     `gorm:"type:varchar(5)"`
	PersonalEmail string     `gorm:"type:varchar(255)"`

	AddressLine1 string `gorm:"type:varchar(255)"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"type:varchar(20)"`

	EmergencyContactName     string `gorm:"type:varchar(150)"`
	EmergencyContactRelation string `gorm:"type:varchar(50)"`
	EmergencyContactPhone    string `gorm:"type:varchar(30)"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	UpdatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	IsDeleted bool       `gorm:"default:false"`
	DeletedAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PersonalDetails) TableName() string {
	return "personal_details"
}

// PersonalDetailsView is a personal details row joined with its employee.
type PersonalDetailsView struct {
	PersonalDetails
	EmployeeName   string
	EmployeeNumber string
	EmployeeEmail  string
	EmployeePhone  string
	Position       string
	Department     string
}
