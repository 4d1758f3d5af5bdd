package lookuptype

import (
	"net/http"

	"go-hrms/internal/identity"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lookuptype.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookuptype.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("lookup type request failed",
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
		h.logger.Warn("http lookup type validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req CreateLookupTypeRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Type added successfully", resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, "Types fetched successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdateLookupTypeRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Type updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req DeleteLookupTypeRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Type deleted successfully", resp, nil)
}
