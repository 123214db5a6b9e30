package s3store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

// newTestStore points a path-style client at an httptest server.
func newTestStore(t *testing.T, h http.Handler) *Store {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		BaseEndpoint:               aws.String(ts.URL),
		UsePathStyle:               true,
		Credentials:                credentials.NewStaticCredentialsProvider("key", "secret", ""),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})
	return New(client, "https://cdn.example.com/")
}

func TestStore_Upload(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		got  *http.Request
		body string
	)
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		got, body = r, string(b)
		mu.Unlock()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))

	path, err := s.Upload(context.Background(), "site-assets", "banners/a b.jpg", strings.NewReader("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "banners/a b.jpg", path)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, got)
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/site-assets/banners/a b.jpg", got.URL.Path)
	assert.Equal(t, "image/jpeg", got.Header.Get("Content-Type"))
	assert.Equal(t, "*", got.Header.Get("If-None-Match"))
	assert.Equal(t, "jpeg", body)
}

func TestStore_UploadExistingIsConflict(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>PreconditionFailed</Code><Message>At least one of the pre-conditions you specified did not hold</Message></Error>`)
	}))

	_, err := s.Upload(context.Background(), "downloads", "edital.pdf", strings.NewReader("%PDF"), "application/pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict), "got %v", err)
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		method  string
		query   string
		payload string
	)
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		method, query, payload = r.Method, r.URL.RawQuery, string(b)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><DeleteResult></DeleteResult>`)
	}))

	require.NoError(t, s.Remove(context.Background(), "gallery-photos", "a.jpg", "b.jpg"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPost, method)
	assert.Contains(t, query, "delete")
	assert.Contains(t, payload, "<Key>a.jpg</Key>")
	assert.Contains(t, payload, "<Key>b.jpg</Key>")
}

func TestStore_RemoveNothing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))
	require.NoError(t, s.Remove(context.Background(), "gallery-photos"))
}

func TestStore_PublicURLRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(nil, "https://cdn.example.com/")

	url := s.PublicURL("site-assets", "projects/curta metragem.png")
	assert.Equal(t, "https://cdn.example.com/site-assets/projects/curta%20metragem.png", url)

	path, ok := s.ObjectPath("site-assets", url)
	require.True(t, ok)
	assert.Equal(t, "projects/curta metragem.png", path)

	_, ok = s.ObjectPath("downloads", url)
	assert.False(t, ok)
	_, ok = s.ObjectPath("site-assets", "https://elsewhere.example.com/site-assets/x.png")
	assert.False(t, ok)
}
