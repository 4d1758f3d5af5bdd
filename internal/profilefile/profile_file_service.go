package profilefile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go-hrms/internal/identity"
	profilefileerrors "go-hrms/internal/profilefile/errors"
	"go-hrms/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_file_service.go -destination=mock/profile_file_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, caller identity.Caller, employeeID string, in UploadInput) (ProfileFileResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, query ListFilesQuery) ([]ProfileFileResponse, error)
	GetByID(ctx context.Context, id string) (ProfileFileResponse, error)
	Download(ctx context.Context, id string) (Download, error)
	UpdateInfo(ctx context.Context, caller identity.Caller, id string, req UpdateFileInfoRequest) (ProfileFileResponse, error)
	Delete(ctx context.Context, caller identity.Caller, id string) error
	HardDelete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, category, employeeID string) ([]ProfileFileResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	store  storage.ObjectStore
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, store storage.ObjectStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("profilefile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profilefile.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		store:  store,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

// ObjectKey is profiles/<employee>/<employee>_<unix millis><ext>.
func ObjectKey(employeeID, originalName string, at time.Time) (fileName, key string) {
	fileName = fmt.Sprintf("%s_%d%s", employeeID, at.UnixMilli(), filepath.Ext(originalName))
	return fileName, "profiles/" + employeeID + "/" + fileName
}

func (s *service) Upload(ctx context.Context, caller identity.Caller, employeeID string, in UploadInput) (ProfileFileResponse, error) {
	s.logger.Debug("upload profile file requested",
		zap.String("employee_id", employeeID),
		zap.String("caller_id", caller.ID),
		zap.String("original_name", in.OriginalName),
	)

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return ProfileFileResponse{}, profilefileerrors.ErrInvalidCallerID
	}
	empID, err := uuid.Parse(strings.TrimSpace(employeeID))
	if err != nil {
		return ProfileFileResponse{}, profilefileerrors.ErrEmployeeNotFound
	}

	fileType := orDefault(in.FileType, DefaultFileType)
	if !FileTypes[fileType] {
		return ProfileFileResponse{}, profilefileerrors.ErrInvalidFileType
	}
	category := orDefault(in.Category, DefaultCategory)
	if !Categories[category] {
		return ProfileFileResponse{}, profilefileerrors.ErrInvalidCategory
	}

	exists, err := s.repo.EmployeeExists(ctx, empID.String())
	if err != nil {
		s.logger.Error("upload profile file employee lookup failed", zap.Error(err))
		return ProfileFileResponse{}, err
	}
	if !exists {
		return ProfileFileResponse{}, profilefileerrors.ErrEmployeeNotFound
	}
	if in.Body == nil {
		return ProfileFileResponse{}, profilefileerrors.ErrNoFileUploaded
	}

	now := s.now()
	fileName, key := ObjectKey(empID.String(), in.OriginalName, now)
	contentType := orDefault(in.ContentType, "application/octet-stream")

	if err := s.store.Put(ctx, key, in.Body, in.Size, contentType); err != nil {
		s.logger.Error("upload profile file store failed", zap.String("key", key), zap.Error(err))
		return ProfileFileResponse{}, profilefileerrors.ErrUploadFailed
	}

	f := &ProfileFile{
		ID:           uuid.New(),
		EmployeeID:   empID,
		FileName:     fileName,
		OriginalName: in.OriginalName,
		FilePath:     key,
		FileSize:     in.Size,
		MimeType:     contentType,
		FileType:     fileType,
		Category:     category,
		Description:  in.Description,
		IsActive:     true,
		UploadedBy:   callerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("upload profile file persist failed", zap.String("key", key), zap.Error(err))
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.logger.Error("upload profile file cleanup failed", zap.String("key", key), zap.Error(rmErr))
		}
		return ProfileFileResponse{}, profilefileerrors.ErrSaveFileInfoFailed
	}

	s.logger.Info("upload profile file success", zap.String("id", f.ID.String()), zap.String("key", key))
	return s.toResponse(ProfileFileView{ProfileFile: *f}), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, query ListFilesQuery) ([]ProfileFileResponse, error) {
	if _, err := uuid.Parse(strings.TrimSpace(employeeID)); err != nil {
		return []ProfileFileResponse{}, nil
	}
	views, err := s.repo.ListByEmployee(ctx, employeeID, query)
	if err != nil {
		s.logger.Error("list employee files failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return s.toListResponse(views), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProfileFileResponse, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return ProfileFileResponse{}, profilefileerrors.ErrFileNotFound
	}
	view, err := s.repo.FindViewByID(ctx, id)
	if err != nil {
		return ProfileFileResponse{}, mapRepositoryError(err)
	}
	return s.toResponse(*view), nil
}

// Download streams the object. The caller closes Body.
func (s *service) Download(ctx context.Context, id string) (Download, error) {
	f, err := s.findActive(ctx, s.repo, id)
	if err != nil {
		return Download{}, err
	}

	body, info, err := s.store.Get(ctx, f.FilePath)
	if errors.Is(err, storage.ErrObjectNotFound) {
		s.logger.Warn("profile file object missing", zap.String("id", id), zap.String("key", f.FilePath))
		return Download{}, profilefileerrors.ErrFileMissingInStorage
	}
	if err != nil {
		s.logger.Error("profile file download failed", zap.String("id", id), zap.Error(err))
		return Download{}, err
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = f.MimeType
	}
	return Download{Body: body, Size: info.Size, ContentType: contentType, OriginalName: f.OriginalName}, nil
}

func (s *service) UpdateInfo(ctx context.Context, caller identity.Caller, id string, req UpdateFileInfoRequest) (ProfileFileResponse, error) {
	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return ProfileFileResponse{}, profilefileerrors.ErrInvalidCallerID
	}
	if req.FileType != nil && !FileTypes[*req.FileType] {
		return ProfileFileResponse{}, profilefileerrors.ErrInvalidFileType
	}
	if req.Category != nil && !Categories[*req.Category] {
		return ProfileFileResponse{}, profilefileerrors.ErrInvalidCategory
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update file info begin tx failed", zap.Error(err))
		return ProfileFileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	f, err := s.findActive(ctx, qtx, id)
	if err != nil {
		return ProfileFileResponse{}, err
	}
	if req.FileType != nil {
		f.FileType = *req.FileType
	}
	if req.Category != nil {
		f.Category = *req.Category
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	f.UpdatedBy = &callerID
	f.UpdatedAt = s.now()

	written, err := qtx.UpdateInfo(ctx, f)
	if err != nil {
		s.logger.Error("update file info persist failed", zap.String("id", id), zap.Error(err))
		return ProfileFileResponse{}, err
	}
	if !written {
		return ProfileFileResponse{}, profilefileerrors.ErrFileNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update file info commit failed", zap.Error(err))
		return ProfileFileResponse{}, err
	}

	s.logger.Info("update file info success", zap.String("id", id))
	return s.toResponse(ProfileFileView{ProfileFile: *f}), nil
}

// Delete keeps the object so the row can still be purged later.
func (s *service) Delete(ctx context.Context, caller identity.Caller, id string) error {
	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return profilefileerrors.ErrInvalidCallerID
	}
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return profilefileerrors.ErrFileNotFound
	}

	deleted, err := s.repo.SoftDelete(ctx, id, callerID, s.now())
	if err != nil {
		s.logger.Error("delete profile file failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return profilefileerrors.ErrFileNotFound
	}

	s.logger.Info("delete profile file success", zap.String("id", id))
	return nil
}

// HardDelete removes the row and then the object inside one transaction, so
// a failed object removal leaves the row in place.
func (s *service) HardDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return profilefileerrors.ErrFileNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("hard delete begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	f, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	removed, err := qtx.HardDelete(ctx, id)
	if err != nil {
		s.logger.Error("hard delete row failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !removed {
		return profilefileerrors.ErrFileNotFound
	}

	if err := s.store.Remove(ctx, f.FilePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		s.logger.Error("hard delete object failed", zap.String("key", f.FilePath), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("hard delete commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("hard delete profile file success", zap.String("id", id), zap.String("key", f.FilePath))
	return nil
}

func (s *service) ListByCategory(ctx context.Context, category, employeeID string) ([]ProfileFileResponse, error) {
	if !Categories[category] {
		return nil, profilefileerrors.ErrInvalidCategory
	}
	views, err := s.repo.ListByCategory(ctx, category, employeeID)
	if err != nil {
		s.logger.Error("list files by category failed", zap.String("category", category), zap.Error(err))
		return nil, err
	}
	return s.toListResponse(views), nil
}

func (s *service) findActive(ctx context.Context, repo Repository, id string) (*ProfileFile, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return nil, profilefileerrors.ErrFileNotFound
	}
	f, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if f.IsDeleted {
		return nil, profilefileerrors.ErrFileNotFound
	}
	return f, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profilefileerrors.ErrFileNotFound
	}
	return err
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func (s *service) toResponse(v ProfileFileView) ProfileFileResponse {
	resp := ProfileFileResponse{
		ID:             v.ID.String(),
		EmployeeID:     v.EmployeeID.String(),
		EmployeeName:   v.EmployeeName,
		EmployeeNumber: v.EmployeeNumber,
		FileName:       v.FileName,
		OriginalName:   v.OriginalName,
		FilePath:       v.FilePath,
		FileURL:        s.store.URL(v.FilePath),
		FileSize:       v.FileSize,
		MimeType:       v.MimeType,
		FileType:       v.FileType,
		Category:       v.Category,
		Description:    v.Description,
		UploadedBy:     v.UploadedBy.String(),
		UploadedByName: v.UploadedByName,
		UploadedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      v.UpdatedAt.Format(time.RFC3339),
	}
	if v.UpdatedBy != nil {
		u := v.UpdatedBy.String()
		resp.UpdatedBy = &u
	}
	return resp
}

func (s *service) toListResponse(views []ProfileFileView) []ProfileFileResponse {
	resp := make([]ProfileFileResponse, len(views))
	for i, v := range views {
		resp[i] = s.toResponse(v)
	}
	return resp
}
