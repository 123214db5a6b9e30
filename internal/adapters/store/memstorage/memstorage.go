// Package memstorage is an in-memory ports.ObjectStorage. It also serves the
// stored objects over HTTP so a local run can display uploaded images.
package memstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.ObjectStorage = (*Storage)(nil)

type object struct {
	data        []byte
	contentType string
	modified    time.Time
}

// Storage keeps objects keyed by "bucket/path".
type Storage struct {
	mu      sync.RWMutex
	objects map[string]object
	baseURL string
}

// New creates an empty storage whose public URLs start with baseURL, e.g.
// "http://localhost:8080/files".
func New(baseURL string) *Storage {
	return &Storage{
		objects: make(map[string]object),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload stores body. An existing object at the same path is a conflict.
func (s *Storage) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading upload body: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := bucket + "/" + path
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; exists {
		return "", fmt.Errorf("%w: object %s already exists", domain.ErrConflict, key)
	}
	s.objects[key] = object{data: data, contentType: contentType, modified: time.Now()}
	return path, nil
}

// PublicURL returns {baseURL}/{bucket}/{path}.
func (s *Storage) PublicURL(bucket, path string) string {
	return s.baseURL + "/" + bucket + "/" + path
}

// ObjectPath returns the path of a URL produced by PublicURL for bucket.
func (s *Storage) ObjectPath(bucket, url string) (string, bool) {
	path, ok := strings.CutPrefix(url, s.baseURL+"/"+bucket+"/")
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Remove deletes objects; missing ones are ignored.
func (s *Storage) Remove(ctx context.Context, bucket string, paths ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		delete(s.objects, bucket+"/"+p)
	}
	return nil
}

// Exists reports whether bucket/path is stored.
func (s *Storage) Exists(bucket, path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[bucket+"/"+path]
	return ok
}

// Len returns the number of stored objects.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// ServeHTTP serves GET /{bucket}/{path}. Mount it with http.StripPrefix at
// the path of baseURL.
func (s *Storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/")
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	if obj.contentType != "" {
		w.Header().Set("Content-Type", obj.contentType)
	}
	http.ServeContent(w, r, key, obj.modified, bytes.NewReader(obj.data))
}
