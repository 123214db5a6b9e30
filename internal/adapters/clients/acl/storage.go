package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Compile-time interface check.
var _ ports.ObjectStorage = (*Storage)(nil)

const (
	objectPrefix       = "/storage/v1/object/"
	publicObjectPrefix = "/storage/v1/object/public/"
)

// Storage is the outbound adapter for the hosted backend's object storage
// API. It implements [ports.ObjectStorage]. Buckets are expected to be
// public; PublicURL builds URLs without a network call.
type Storage struct {
	req    *Requester
	logger *slog.Logger
}

// NewStorage creates a storage client sharing the backend's HTTP client.
func NewStorage(client *httpclient.Client, logger *slog.Logger) *Storage {
	return &Storage{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

type uploadResponse struct {
	Key string `json:"Key"`
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Upload stores body at bucket/path. Existing objects are not overwritten;
// a name collision surfaces as domain.ErrConflict.
func (s *Storage) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var resp uploadResponse
	err := s.req.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   objectPrefix + escapePath(bucket, path),
		Header: http.Header{
			"X-Upsert":      []string{"false"},
			"Cache-Control": []string{"max-age=3600"},
		},
		Body:        body,
		ContentType: contentType,
		WantStatus:  []int{http.StatusOK, http.StatusCreated},
	}, &resp)
	if err != nil {
		return "", err
	}

	if key, ok := strings.CutPrefix(resp.Key, bucket+"/"); ok {
		return key, nil
	}
	return path, nil
}

// PublicURL returns the public URL of bucket/path.
func (s *Storage) PublicURL(bucket, path string) string {
	return s.req.BaseURL() + publicObjectPrefix + escapePath(bucket, path)
}

// ObjectPath extracts the object path from a URL built by PublicURL.
func (s *Storage) ObjectPath(bucket, rawURL string) (string, bool) {
	prefix := s.req.BaseURL() + publicObjectPrefix + url.PathEscape(bucket) + "/"
	rest, ok := strings.CutPrefix(rawURL, prefix)
	if !ok || rest == "" {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return path, true
}

// Remove deletes the given objects in one call.
func (s *Storage) Remove(ctx context.Context, bucket string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	err := s.req.Send(ctx, Request{
		Method:     http.MethodDelete,
		Path:       objectPrefix + url.PathEscape(bucket),
		Body:       removeRequest{Prefixes: paths},
		WantStatus: []int{http.StatusOK},
	}, nil)
	if err != nil {
		return fmt.Errorf("removing %d object(s) from %s: %w", len(paths), bucket, err)
	}
	return nil
}

// escapePath escapes each segment of bucket/path, keeping the separators.
func escapePath(bucket, path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
