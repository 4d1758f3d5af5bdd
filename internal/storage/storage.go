// Package storage is the boundary to the object store that holds uploaded
// profile files and documents.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

var ErrObjectNotFound = errors.New("storage: object not found")

type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Get returns ErrObjectNotFound for unknown keys. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Remove(ctx context.Context, key string) error
	// URL is the public address of key under the configured base URL.
	URL(key string) string
}

func joinURL(base, key string) string {
	if base == "" {
		return "/" + strings.TrimLeft(key, "/")
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
