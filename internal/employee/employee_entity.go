package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserName       string     `gorm:"type:varchar(100)"`
	EmployeeName   string     `gorm:"not null"`
	EmployeeNumber string     `gorm:"not null;uniqueIndex:uq_employee_number"`
	DateOfJoining  time.Time  `gorm:"type:date;not null"`
	Email          string     `gorm:"not null;uniqueIndex:uq_employee_email"`
	Phone          string     `gorm:"not null"`
	Position       string     `gorm:"not null"`
	Department     string
	ManagerID      *uuid.UUID `gorm:"type:uuid;index:idx_employees_manager"`
	Role           string     `gorm:"type:varchar(20);not null;default:'employee'"`
	PasswordHash   string     `gorm:"not null"`

	IsVerified     bool `gorm:"not null;default:false"`
	IsTempPassword bool `gorm:"not null;default:true"`
	IsActive       bool `gorm:"not null;default:true"`
	IsDeleted      bool `gorm:"not null;default:false"`
	LastLoginAt    *time.Time

	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	DeletedBy *uuid.UUID `gorm:"type:uuid"`
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}
