package employee

type CreateEmployeeRequest struct {
	UserName       string `json:"userName"`
	EmployeeName   string `json:"employeeName"`
	EmployeeNumber string `json:"employeeNumber"`
	DateOfJoining  string `json:"dateOfJoining"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	ManagerID      string `json:"managerId" binding:"omitempty,uuid"`
	Role           string `json:"role"`
}

type ListEmployeesQuery struct {
	Q     string `form:"q"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserName       string  `json:"userName,omitempty"`
	EmployeeName   string  `json:"employeeName"`
	EmployeeNumber string  `json:"employeeNumber"`
	DateOfJoining  string  `json:"dateOfJoining"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Position       string  `json:"position"`
	Department     string  `json:"department,omitempty"`
	ManagerID      *string `json:"managerId"`
	Role           string  `json:"role"`
	IsVerified     bool    `json:"isVerified"`
	IsTempPassword bool    `json:"isTempPassword"`
	IsActive       bool    `json:"isActive"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// CreateEmployeeResponse carries the generated password once; it is never
// readable again.
type CreateEmployeeResponse struct {
	EmployeeResponse
	TemporaryPassword string `json:"temporaryPassword"`
}

type EmployeeOptionResponse struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
}
