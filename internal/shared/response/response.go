package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// round up: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// ApiEnvelope is the single response shape of the API:
// {status, message, data?, count?, meta?, error?}.
type ApiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    any             `json:"data,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
	Error   *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Status:  true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// List writes data together with its item count.
func List[T any](c *gin.Context, status int, message string, data []T) {
	if data == nil {
		data = []T{}
	}
	count := len(data)
	c.JSON(status, ApiEnvelope{
		Status:  true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Status:  false,
		Message: message,
		Error: &ErrorBody{
			Code:    errorCode,
			Details: details,
		},
	})
}
