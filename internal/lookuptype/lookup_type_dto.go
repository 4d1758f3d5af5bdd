package lookuptype

type CreateLookupTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateLookupTypeRequest leaves omitted fields untouched.
type UpdateLookupTypeRequest struct {
	ID          string  `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type DeleteLookupTypeRequest struct {
	ID string `json:"id" binding:"required"`
}

type LookupTypeResponse struct {
	ID          string  `json:"id"`
	Code        int     `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"createdBy"`
	UpdatedBy   *string `json:"updatedBy,omitempty"`
	DeletedBy   *string `json:"deletedBy,omitempty"`
	IsDeleted   bool    `json:"isDeleted"`
	DeletedAt   *string `json:"deletedAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}
