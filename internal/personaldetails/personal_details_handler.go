package personaldetails

import (
	"net/http"

	"go-hrms/internal/identity"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"
	"go-hrms/internal/shared/scope"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("personaldetails.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personaldetails.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("personal details request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("http personal details validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return false
	}
	return true
}

func normalizePage(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 {
		*limit = scope.DefaultLimit
	}
}

func (h *Handler) Create(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req PersonalDetailsRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, c.Param("employeeId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Personal details created successfully", resp, nil)
}

// Get answers 200 with no data when nothing is recorded yet.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		response.Success(c, http.StatusOK, "Personal details not recorded", nil, nil)
		return
	}

	response.Success(c, http.StatusOK, "Personal details fetched successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdatePersonalDetailsRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), caller, c.Param("employeeId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Personal details updated successfully", resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return
	}
	normalizePage(&query.Page, &query.Limit)

	resp, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, query.Page, query.Limit)
	response.Success(c, http.StatusOK, "Personal details fetched successfully", resp, &meta)
}

func (h *Handler) Search(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return
	}
	normalizePage(&query.Page, &query.Limit)

	resp, total, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, query.Page, query.Limit)
	response.Success(c, http.StatusOK, "Personal details fetched successfully", resp, &meta)
}
