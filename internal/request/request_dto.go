package request

type CreateRequestRequest struct {
	RequestTypeCode int    `json:"requestTypeCode"`
	Description     string `json:"description"`
	From            string `json:"from"`
	To              string `json:"to"`
	FileName        string `json:"fileName"`
}

// RespondRequestRequest carries optional fields: a nil Status keeps the
// current one, a nil Reply keeps the current reply.
type RespondRequestRequest struct {
	ID     string  `json:"id"`
	Status *string `json:"status"`
	Reply  *string `json:"reply"`
}

type UpdateRequestRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	From        string `json:"from"`
	To          string `json:"to"`
	FileName    string `json:"fileName"`
}

type DeleteRequestRequest struct {
	ID string `json:"id"`
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	RequestTypeCode int     `json:"requestTypeCode"`
	Description     string  `json:"description"`
	From            *string `json:"from"`
	To              *string `json:"to"`
	FileName        string  `json:"fileName"`
	Status          string  `json:"status"`
	Reply           string  `json:"reply"`
	CreatedBy       string  `json:"createdBy"`
	UpdatedBy       *string `json:"updatedBy,omitempty"`
	DeletedBy       *string `json:"deletedBy,omitempty"`
	IsDeleted       bool    `json:"isDeleted"`
	DeletedAt       *string `json:"deletedAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type RequestViewResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	RequestTypeCode int     `json:"requestTypeCode"`
	RequestTypeName *string `json:"requestTypeName"`
	Description     string  `json:"description"`
	From            *string `json:"from"`
	To              *string `json:"to"`
	FileName        string  `json:"fileName"`
	Status          string  `json:"status"`
	Reply           string  `json:"reply"`
	CreatedBy       string  `json:"createdBy"`
	CreatedAt       string  `json:"createdAt"`
	EmployeeName    *string `json:"employeeName,omitempty"`
	EmployeeEmail   *string `json:"employeeEmail,omitempty"`
}
