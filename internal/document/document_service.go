package document

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"regexp"
	"strings"
	"time"

	documenterrors "go-hrms/internal/document/errors"
	"go-hrms/internal/identity"
	"go-hrms/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxDocumentBytes = 10 << 20
	defaultCategory  = "personal"
	defaultFileGroup = "other"
)

var dataURLPrefix = regexp.MustCompile(`^data:(.*?);base64,`)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, caller identity.Caller, employeeID string, req UploadDocumentRequest) (DocumentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) (GroupedDocuments, error)
}

type service struct {
	repo   Repository
	store  storage.ObjectStore
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, store storage.ObjectStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		repo:   repo,
		store:  store,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

// SplitFileName returns the part before the first dot and the part after the
// last one. A name without a dot has no extension.
func SplitFileName(name string) (base, ext string) {
	first := strings.Index(name, ".")
	if first < 0 {
		return name, ""
	}
	return name[:first], name[strings.LastIndex(name, ".")+1:]
}

// ObjectKey is <fileType>/<employee>/<base>_<unix millis>.<ext>.
func ObjectKey(fileType, employeeID, originalName string, at time.Time) (fileName, key string) {
	base, ext := SplitFileName(originalName)
	fileName = fmt.Sprintf("%s_%d", base, at.UnixMilli())
	if ext != "" {
		fileName += "." + ext
	}
	return fileName, fileType + "/" + employeeID + "/" + fileName
}

// DecodeContent strips an optional data URL prefix and decodes the payload.
// The prefix media type, when present, is returned as the content type.
func DecodeContent(file string) ([]byte, string, error) {
	contentType := ""
	if m := dataURLPrefix.FindStringSubmatch(file); m != nil {
		contentType = m[1]
		file = file[len(m[0]):]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(file))
	if err != nil {
		return nil, "", documenterrors.ErrInvalidFileContent
	}
	return data, contentType, nil
}

func (s *service) Upload(ctx context.Context, caller identity.Caller, employeeID string, req UploadDocumentRequest) (DocumentResponse, error) {
	s.logger.Debug("upload document requested",
		zap.String("employee_id", employeeID),
		zap.String("caller_id", caller.ID),
		zap.String("file_type", req.FileType),
	)

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidCallerID
	}
	if req.File == "" || strings.TrimSpace(req.FileName) == "" || strings.TrimSpace(employeeID) == "" || req.FileType == "" {
		return DocumentResponse{}, documenterrors.ErrMissingRequiredFields
	}
	if !FileTypes[req.FileType] {
		return DocumentResponse{}, documenterrors.ErrInvalidFileType
	}
	empID, err := uuid.Parse(strings.TrimSpace(employeeID))
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrEmployeeNotFound
	}

	data, contentType, err := DecodeContent(req.File)
	if err != nil {
		s.logger.Warn("upload document decode failed", zap.String("employee_id", employeeID))
		return DocumentResponse{}, err
	}
	if len(data) > MaxDocumentBytes {
		return DocumentResponse{}, documenterrors.ErrFileTooLarge
	}

	exists, err := s.repo.EmployeeExists(ctx, empID.String())
	if err != nil {
		s.logger.Error("upload document employee lookup failed", zap.Error(err))
		return DocumentResponse{}, err
	}
	if !exists {
		return DocumentResponse{}, documenterrors.ErrEmployeeNotFound
	}

	now := s.now()
	originalName := strings.TrimSpace(req.FileName)
	fileName, key := ObjectKey(req.FileType, empID.String(), originalName, now)
	if contentType == "" {
		_, ext := SplitFileName(originalName)
		contentType = mime.TypeByExtension("." + ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		s.logger.Error("upload document store failed", zap.String("key", key), zap.Error(err))
		return DocumentResponse{}, documenterrors.ErrUploadFailed
	}

	doc := &Document{
		ID:           uuid.New(),
		EmployeeID:   empID,
		FileName:     fileName,
		OriginalName: originalName,
		FilePath:     key,
		FileSize:     int64(len(data)),
		MimeType:     contentType,
		FileType:     req.FileType,
		Category:     defaultCategory,
		IsActive:     true,
		UploadedBy:   callerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("upload document persist failed", zap.String("key", key), zap.Error(err))
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.logger.Error("upload document cleanup failed", zap.String("key", key), zap.Error(rmErr))
		}
		return DocumentResponse{}, err
	}

	s.logger.Info("upload document success", zap.String("id", doc.ID.String()), zap.String("key", key))
	return s.toResponse(*doc), nil
}

// ListByEmployee groups non-deleted documents by fileType, most recently
// updated first within each group.
func (s *service) ListByEmployee(ctx context.Context, employeeID string) (GroupedDocuments, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, documenterrors.ErrMissingRequiredFields
	}
	grouped := GroupedDocuments{}
	if _, err := uuid.Parse(employeeID); err != nil {
		return grouped, nil
	}

	docs, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list documents failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	for _, d := range docs {
		group := d.FileType
		if group == "" {
			group = defaultFileGroup
		}
		grouped[group] = append(grouped[group], s.toResponse(d))
	}
	return grouped, nil
}

func (s *service) toResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID.String(),
		EmployeeID:   d.EmployeeID.String(),
		FileName:     d.FileName,
		OriginalName: d.OriginalName,
		FilePath:     d.FilePath,
		FileURL:      s.store.URL(d.FilePath),
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		FileType:     d.FileType,
		Category:     d.Category,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}
}
