package profilefile

import (
	"fmt"
	"net/http"

	"go-hrms/internal/identity"
	profilefileerrors "go-hrms/internal/profilefile/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const MaxUploadBytes = 10 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("profilefile.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profilefile.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("profile file request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, profilefileerrors.ErrNoFileUploaded)
		return
	}
	if fh.Size > MaxUploadBytes {
		h.writeServiceError(c, profilefileerrors.ErrFileTooLarge)
		return
	}

	file, err := fh.Open()
	if err != nil {
		h.logger.Error("open uploaded file failed", zap.Error(err))
		h.writeServiceError(c, profilefileerrors.ErrUploadFailed)
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(c.Request.Context(), caller, c.Param("employeeId"), UploadInput{
		OriginalName: fh.Filename,
		Size:         fh.Size,
		ContentType:  fh.Header.Get("Content-Type"),
		Body:         file,
		FileType:     c.PostForm("fileType"),
		Category:     c.PostForm("category"),
		Description:  c.PostForm("description"),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "File uploaded successfully", resp, nil)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	var query ListFilesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), c.Param("employeeId"), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, "Files fetched successfully", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "File fetched successfully", resp, nil)
}

func (h *Handler) Download(c *gin.Context) {
	dl, err := h.service.Download(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer dl.Body.Close()

	c.DataFromReader(http.StatusOK, dl.Size, dl.ContentType, dl.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename=%q`, dl.OriginalName),
	})
}

func (h *Handler) UpdateInfo(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdateFileInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.UpdateInfo(c.Request.Context(), caller, c.Param("fileId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "File information updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	caller, err := identity.FromGin(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, c.Param("fileId")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "File deleted successfully", nil, nil)
}

func (h *Handler) HardDelete(c *gin.Context) {
	if err := h.service.HardDelete(c.Request.Context(), c.Param("fileId")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "File permanently deleted", nil, nil)
}

func (h *Handler) ListByCategory(c *gin.Context) {
	resp, err := h.service.ListByCategory(c.Request.Context(), c.Param("category"), c.Query("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, "Files fetched successfully", resp)
}
