package request

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is an employee-initiated item awaiting approval. Soft-deleted rows
// stay in the table and remain readable by id.
type Request struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_requests_employee"`
	RequestTypeCode int        `gorm:"not null"`
	Description     string     `gorm:"type:text"`
	From            *time.Time `gorm:"column:from_date;type:date"`
	To              *time.Time `gorm:"column:to_date;type:date"`
	FileName        string
	Status          string `gorm:"type:varchar(20);not null;default:'pending'"`
	Reply           string `gorm:"type:text"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	DeletedBy *uuid.UUID `gorm:"type:uuid"`
	IsDeleted bool       `gorm:"not null;default:false"`
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Request) TableName() string {
	return "requests"
}

// RequestView is a request joined with its lookup type and, for approver
// reads, with the owning employee.
type RequestView struct {
	ID              uuid.UUID
	EmployeeID      uuid.UUID
	RequestTypeCode int
	RequestTypeName *string
	Description     string
	From            *time.Time `gorm:"column:from_date"`
	To              *time.Time `gorm:"column:to_date"`
	FileName        string
	Status          string
	Reply           string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	EmployeeName    *string
	EmployeeEmail   *string
}

// Owner is the part of an employee record the workflow authorizes against.
type Owner struct {
	ID        uuid.UUID
	ManagerID *uuid.UUID
}

// Manager returns the owner's manager id, or "" when the owner reports to
// nobody. "" never matches a caller.
func (o Owner) Manager() string {
	if o.ManagerID == nil {
		return ""
	}
	return o.ManagerID.String()
}
