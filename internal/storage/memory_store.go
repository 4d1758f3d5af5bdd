package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryStore keeps objects in process memory. It backs local runs without
// an object store endpoint and the module tests.
type MemoryStore struct {
	mu            sync.RWMutex
	objects       map[string]memoryObject
	publicBaseURL string
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryStore(publicBaseURL string) *MemoryStore {
	return &MemoryStore{objects: map[string]memoryObject{}, publicBaseURL: publicBaseURL}
}

func (s *MemoryStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[key] = memoryObject{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	info := ObjectInfo{Key: key, Size: int64(len(obj.data)), ContentType: obj.contentType}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) URL(key string) string {
	return joinURL(s.publicBaseURL, key)
}

// Has reports whether key is stored.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}
