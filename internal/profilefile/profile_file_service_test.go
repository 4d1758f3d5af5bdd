package profilefile_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/identity"
	"go-hrms/internal/profilefile"
	profilefileerrors "go-hrms/internal/profilefile/errors"
	"go-hrms/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProfileFileRepository struct {
	employeeExistsFn func(ctx context.Context, employeeID string) (bool, error)
	createFn         func(ctx context.Context, f *profilefile.ProfileFile) error
	findByIDFn       func(ctx context.Context, id string) (*profilefile.ProfileFile, error)
	findViewByIDFn   func(ctx context.Context, id string) (*profilefile.ProfileFileView, error)
	listByEmployeeFn func(ctx context.Context, employeeID string, query profilefile.ListFilesQuery) ([]profilefile.ProfileFileView, error)
	listByCategoryFn func(ctx context.Context, category, employeeID string) ([]profilefile.ProfileFileView, error)
	updateInfoFn     func(ctx context.Context, f *profilefile.ProfileFile) (bool, error)
	softDeleteFn     func(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error)
	hardDeleteFn     func(ctx context.Context, id string) (bool, error)
}

func (f *fakeProfileFileRepository) WithTx(tx *sql.Tx) profilefile.Repository { return f }
func (f *fakeProfileFileRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}
func (f *fakeProfileFileRepository) Create(ctx context.Context, pf *profilefile.ProfileFile) error {
	return f.createFn(ctx, pf)
}
func (f *fakeProfileFileRepository) FindByID(ctx context.Context, id string) (*profilefile.ProfileFile, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeProfileFileRepository) FindViewByID(ctx context.Context, id string) (*profilefile.ProfileFileView, error) {
	return f.findViewByIDFn(ctx, id)
}
func (f *fakeProfileFileRepository) ListByEmployee(ctx context.Context, employeeID string, query profilefile.ListFilesQuery) ([]profilefile.ProfileFileView, error) {
	return f.listByEmployeeFn(ctx, employeeID, query)
}
func (f *fakeProfileFileRepository) ListByCategory(ctx context.Context, category, employeeID string) ([]profilefile.ProfileFileView, error) {
	return f.listByCategoryFn(ctx, category, employeeID)
}
func (f *fakeProfileFileRepository) UpdateInfo(ctx context.Context, pf *profilefile.ProfileFile) (bool, error) {
	return f.updateInfoFn(ctx, pf)
}
func (f *fakeProfileFileRepository) SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error) {
	return f.softDeleteFn(ctx, id, deletedBy, at)
}
func (f *fakeProfileFileRepository) HardDelete(ctx context.Context, id string) (bool, error) {
	return f.hardDeleteFn(ctx, id)
}

type failingRemoveStore struct {
	*storage.MemoryStore
}

func (s failingRemoveStore) Remove(ctx context.Context, key string) error {
	return errors.New("bucket unavailable")
}

type profileDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *fakeProfileFileRepository
	store   *storage.MemoryStore
	service profilefile.Service
}

func setupProfileFileServiceTest(t *testing.T) *profileDeps {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeProfileFileRepository{}
	store := storage.NewMemoryStore("http://files.local")
	return &profileDeps{
		sqlMock: mock,
		repo:    repo,
		store:   store,
		service: profilefile.NewService(db, repo, store),
	}
}

var uploader = identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	name, key := profilefile.ObjectKey("e1", "photo.final.JPG", at)
	assert.Equal(t, "e1_1700000000123.JPG", name)
	assert.Equal(t, "profiles/e1/e1_1700000000123.JPG", key)
}

func TestProfileFileService_Upload(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	t.Run("success stores object and row with defaults", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
		deps.repo.createFn = func(ctx context.Context, f *profilefile.ProfileFile) error {
			assert.Equal(t, "other", f.FileType)
			assert.Equal(t, "personal", f.Category)
			assert.Equal(t, uploader.ID, f.UploadedBy.String())
			return nil
		}

		resp, err := deps.service.Upload(ctx, uploader, employeeID, profilefile.UploadInput{
			OriginalName: "avatar.png",
			Size:         3,
			ContentType:  "image/png",
			Body:         strings.NewReader("png"),
		})
		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^profiles/`+employeeID+`/`+employeeID+`_\d+\.png$`), resp.FilePath)
		assert.Equal(t, "http://files.local/"+resp.FilePath, resp.FileURL)
		assert.Equal(t, "avatar.png", resp.OriginalName)
		assert.True(t, deps.store.Has(resp.FilePath))
	})

	t.Run("negative row save removes stored object", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		var key string
		deps.repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
		deps.repo.createFn = func(ctx context.Context, f *profilefile.ProfileFile) error {
			key = f.FilePath
			return errors.New("insert failed")
		}

		_, err := deps.service.Upload(ctx, uploader, employeeID, profilefile.UploadInput{
			OriginalName: "cv.pdf",
			Size:         3,
			Body:         strings.NewReader("pdf"),
		})
		assert.ErrorIs(t, err, profilefileerrors.ErrSaveFileInfoFailed)
		assert.NotEmpty(t, key)
		assert.False(t, deps.store.Has(key))
	})

	t.Run("negative employee not found", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return false, nil }

		_, err := deps.service.Upload(ctx, uploader, employeeID, profilefile.UploadInput{Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, profilefileerrors.ErrEmployeeNotFound)
	})

	t.Run("negative no file", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }

		_, err := deps.service.Upload(ctx, uploader, employeeID, profilefile.UploadInput{})
		assert.ErrorIs(t, err, profilefileerrors.ErrNoFileUploaded)
	})

	t.Run("negative invalid category", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		_, err := deps.service.Upload(ctx, uploader, employeeID, profilefile.UploadInput{Category: "secret"})
		assert.ErrorIs(t, err, profilefileerrors.ErrInvalidCategory)
	})
}

func TestProfileFileService_Download(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("success streams object", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		assert.NoError(t, deps.store.Put(ctx, "profiles/e1/a.txt", strings.NewReader("hello"), 5, "text/plain"))
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return &profilefile.ProfileFile{FilePath: "profiles/e1/a.txt", OriginalName: "a.txt"}, nil
		}

		dl, err := deps.service.Download(ctx, id)
		assert.NoError(t, err)
		defer dl.Body.Close()
		data, _ := io.ReadAll(dl.Body)
		assert.Equal(t, "hello", string(data))
		assert.Equal(t, "text/plain", dl.ContentType)
		assert.Equal(t, "a.txt", dl.OriginalName)
	})

	t.Run("negative deleted file", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return &profilefile.ProfileFile{IsDeleted: true}, nil
		}

		_, err := deps.service.Download(ctx, id)
		assert.ErrorIs(t, err, profilefileerrors.ErrFileNotFound)
	})

	t.Run("negative object missing", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return &profilefile.ProfileFile{FilePath: "profiles/e1/gone.txt"}, nil
		}

		_, err := deps.service.Download(ctx, id)
		assert.ErrorIs(t, err, profilefileerrors.ErrFileMissingInStorage)
	})
}

func TestProfileFileService_UpdateInfo(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return &profilefile.ProfileFile{FileType: "other", Category: "personal", Description: "old"}, nil
		}
		deps.repo.updateInfoFn = func(ctx context.Context, f *profilefile.ProfileFile) (bool, error) {
			assert.Equal(t, "certificate", f.FileType)
			assert.Equal(t, "personal", f.Category)
			assert.Equal(t, "old", f.Description)
			assert.Equal(t, uploader.ID, f.UpdatedBy.String())
			return true, nil
		}

		fileType := "certificate"
		resp, err := deps.service.UpdateInfo(ctx, uploader, id, profilefile.UpdateFileInfoRequest{FileType: &fileType})
		assert.NoError(t, err)
		assert.Equal(t, "certificate", resp.FileType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative deleted file", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return &profilefile.ProfileFile{IsDeleted: true}, nil
		}

		_, err := deps.service.UpdateInfo(ctx, uploader, id, profilefile.UpdateFileInfoRequest{})
		assert.ErrorIs(t, err, profilefileerrors.ErrFileNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid file type", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		bad := "selfie"
		_, err := deps.service.UpdateInfo(ctx, uploader, id, profilefile.UpdateFileInfoRequest{FileType: &bad})
		assert.ErrorIs(t, err, profilefileerrors.ErrInvalidFileType)
	})
}

func TestProfileFileService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.softDeleteFn = func(ctx context.Context, fid string, by uuid.UUID, at time.Time) (bool, error) {
			assert.Equal(t, uploader.ID, by.String())
			return true, nil
		}
		assert.NoError(t, deps.service.Delete(ctx, uploader, id))
	})

	t.Run("negative already deleted", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.softDeleteFn = func(ctx context.Context, fid string, by uuid.UUID, at time.Time) (bool, error) {
			return false, nil
		}
		assert.ErrorIs(t, deps.service.Delete(ctx, uploader, id), profilefileerrors.ErrFileNotFound)
	})
}

func TestProfileFileService_HardDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("success removes row and object", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		assert.NoError(t, deps.store.Put(ctx, "profiles/e1/x.png", strings.NewReader("x"), 1, "image/png"))
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return &profilefile.ProfileFile{FilePath: "profiles/e1/x.png", IsDeleted: true}, nil
		}
		deps.repo.hardDeleteFn = func(ctx context.Context, fid string) (bool, error) { return true, nil }

		assert.NoError(t, deps.service.HardDelete(ctx, id))
		assert.False(t, deps.store.Has("profiles/e1/x.png"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative object removal failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := &fakeProfileFileRepository{
			findByIDFn: func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
				return &profilefile.ProfileFile{FilePath: "profiles/e1/x.png"}, nil
			},
			hardDeleteFn: func(ctx context.Context, fid string) (bool, error) { return true, nil },
		}
		svc := profilefile.NewService(db, repo, failingRemoveStore{storage.NewMemoryStore("")})
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Error(t, svc.HardDelete(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.findByIDFn = func(ctx context.Context, fid string) (*profilefile.ProfileFile, error) {
			return nil, gorm.ErrRecordNotFound
		}

		assert.ErrorIs(t, deps.service.HardDelete(ctx, id), profilefileerrors.ErrFileNotFound)
	})
}

func TestProfileFileService_Lists(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	t.Run("by employee passes filters", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.listByEmployeeFn = func(ctx context.Context, id string, q profilefile.ListFilesQuery) ([]profilefile.ProfileFileView, error) {
			assert.Equal(t, "tax", q.Category)
			return []profilefile.ProfileFileView{{UploadedByName: "Asha"}}, nil
		}

		resp, err := deps.service.ListByEmployee(ctx, employeeID, profilefile.ListFilesQuery{Category: "tax"})
		assert.NoError(t, err)
		assert.Equal(t, "Asha", resp[0].UploadedByName)
	})

	t.Run("by category", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		deps.repo.listByCategoryFn = func(ctx context.Context, category, id string) ([]profilefile.ProfileFileView, error) {
			assert.Equal(t, "bank", category)
			assert.Equal(t, employeeID, id)
			return nil, nil
		}

		resp, err := deps.service.ListByCategory(ctx, "bank", employeeID)
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("negative unknown category", func(t *testing.T) {
		deps := setupProfileFileServiceTest(t)
		_, err := deps.service.ListByCategory(ctx, "misc", "")
		assert.ErrorIs(t, err, profilefileerrors.ErrInvalidCategory)
	})
}
