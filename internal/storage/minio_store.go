package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

func NewMinioStore(client *minio.Client, bucket, publicBaseURL string, logger ...*zap.Logger) *MinioStore {
	l := zap.L().Named("storage.minio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.minio")
	}
	return &MinioStore{client: client, bucket: bucket, publicBaseURL: publicBaseURL, logger: l}
}

func (s *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("put object failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

func (s *MinioStore) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	// GetObject is lazy; Stat surfaces a missing key.
	stat, err := object.Stat()
	if err != nil {
		object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	return object, ObjectInfo{Key: key, Size: stat.Size, ContentType: stat.ContentType}, nil
}

func (s *MinioStore) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error("remove object failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}

func (s *MinioStore) URL(key string) string {
	return joinURL(s.publicBaseURL, key)
}
