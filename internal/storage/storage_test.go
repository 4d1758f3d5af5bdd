package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"go-hrms/internal/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore("http://cdn.local/files/")

	err := s.Put(ctx, "profiles/e1/a.png", strings.NewReader("png-bytes"), 9, "image/png")
	assert.NoError(t, err)
	assert.True(t, s.Has("profiles/e1/a.png"))

	rc, info, err := s.Get(ctx, "profiles/e1/a.png")
	assert.NoError(t, err)
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	assert.Equal(t, "http://cdn.local/files/profiles/e1/a.png", s.URL("profiles/e1/a.png"))

	assert.NoError(t, s.Remove(ctx, "profiles/e1/a.png"))
	_, _, err = s.Get(ctx, "profiles/e1/a.png")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestMinioStore_URL(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds: credentials.NewStaticV4("key", "secret", ""),
	})
	assert.NoError(t, err)

	s := storage.NewMinioStore(client, "hrms", "")
	assert.Equal(t, "/documents/e1/x.pdf", s.URL("documents/e1/x.pdf"))

	s = storage.NewMinioStore(client, "hrms", "https://files.example.com")
	assert.Equal(t, "https://files.example.com/documents/e1/x.pdf", s.URL("/documents/e1/x.pdf"))
}
