package personaldetails

type PersonalDetailsRequest struct {
	DateOfBirth              string `json:"dateOfBirth"`
	Gender                   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Nationality              string `json:"nationality"`
	MaritalStatus            string `json:"maritalStatus" binding:"omitempty,oneof=single married divorced widowed"`
	BloodGroup               string `json:"bloodGroup"`
	PersonalEmail            string `json:"personalEmail" binding:"omitempty,email"`
	AddressLine1             string `json:"addressLine1"`
	AddressLine2             string `json:"addressLine2"`
	City                     string `json:"city"`
	State                    string `json:"state"`
	Country                  string `json:"country"`
	PostalCode               string `json:"postalCode"`
	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`
	EmergencyContactPhone    string `json:"emergencyContactPhone"`
}

// UpdatePersonalDetailsRequest overwrites only the fields present in the body.
type UpdatePersonalDetailsRequest struct {
	DateOfBirth              *string `json:"dateOfBirth"`
	Gender                   *string `json:"gender" binding:"omitempty,oneof=male female other"`
	Nationality              *string `json:"nationality"`
	MaritalStatus            *string `json:"maritalStatus" binding:"omitempty,oneof=single married divorced widowed"`
	BloodGroup               *string `json:"bloodGroup"`
	PersonalEmail            *string `json:"personalEmail" binding:"omitempty,email"`
	AddressLine1             *string `json:"addressLine1"`
	AddressLine2             *string `json:"addressLine2"`
	City                     *string `json:"city"`
	State                    *string `json:"state"`
	Country                  *string `json:"country"`
	PostalCode               *string `json:"postalCode"`
	EmergencyContactName     *string `json:"emergencyContactName"`
	EmergencyContactRelation *string `json:"emergencyContactRelation"`
	EmergencyContactPhone    *string `json:"emergencyContactPhone"`
}

type ListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type SearchQuery struct {
	Query string `form:"query"`
	Field string `form:"field"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type EmployeeSummary struct {
	EmployeeName   string `json:"employeeName"`
	EmployeeNumber string `json:"employeeNumber"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	Department     string `json:"department"`
}

type AddressResponse struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type EmergencyContactResponse struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

type PersonalDetailsResponse struct {
	ID               string                   `json:"id"`
	EmployeeID       string                   `json:"employeeId"`
	Employee         *EmployeeSummary         `json:"employee,omitempty"`
	DateOfBirth      *string                  `json:"dateOfBirth"`
	Gender           string                   `json:"gender"`
	Nationality      string                   `json:"nationality"`
	MaritalStatus    string                   `json:"maritalStatus"`
	BloodGroup       string                   `json:"bloodGroup"`
	PersonalEmail    string                   `json:"personalEmail"`
	Address          AddressResponse          `json:"address"`
	EmergencyContact EmergencyContactResponse `json:"emergencyContact"`
	CreatedBy        string                   `json:"createdBy"`
	UpdatedBy        string                   `json:"updatedBy"`
	CreatedAt        string                   `json:"createdAt"`
	UpdatedAt        string                   `json:"updatedAt"`
}
