package request

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
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request workflow call failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) caller(c *gin.Context) (identity.Caller, bool) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return identity.Caller{}, false
	}
	return caller, true
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("http request body invalid", zap.String("path", c.FullPath()), zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req CreateRequestRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Request added successfully", resp, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	resp, err := h.service.ListForCaller(c.Request.Context(), caller)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, "Request fetched successfully", resp)
}

func (h *Handler) ListForApprover(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	resp, err := h.service.ListForApprover(c.Request.Context(), caller)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	message := "Requests fetched for manager"
	if caller.Role == identity.RoleAdmin {
		message = "All requests fetched for admin"
	}
	response.List(c, http.StatusOK, message, resp)
}

func (h *Handler) Respond(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req RespondRequestRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Respond(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Request updated", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req UpdateRequestRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Request updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req DeleteRequestRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Request deleted successfully", resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Request fetched successfully", resp, nil)
}
