package memstorage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

func TestStorage_UploadURLAndRemove(t *testing.T) {
	t.Parallel()
	s := New("http://localhost:8080/files/")
	ctx := context.Background()

	path, err := s.Upload(ctx, "gallery-photos", "a.jpg", strings.NewReader("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", path)

	url := s.PublicURL("gallery-photos", path)
	assert.Equal(t, "http://localhost:8080/files/gallery-photos/a.jpg", url)

	got, ok := s.ObjectPath("gallery-photos", url)
	require.True(t, ok)
	assert.Equal(t, "a.jpg", got)

	_, ok = s.ObjectPath("downloads", url)
	assert.False(t, ok)

	_, err = s.Upload(ctx, "gallery-photos", "a.jpg", strings.NewReader("again"), "image/jpeg")
	assert.True(t, errors.Is(err, domain.ErrConflict))

	require.NoError(t, s.Remove(ctx, "gallery-photos", "a.jpg", "missing.jpg"))
	assert.False(t, s.Exists("gallery-photos", "a.jpg"))
}

func TestStorage_ServeHTTP(t *testing.T) {
	t.Parallel()
	s := New("/files")
	_, err := s.Upload(context.Background(), "downloads", "edital.pdf", strings.NewReader("%PDF"), "application/pdf")
	require.NoError(t, err)

	h := http.StripPrefix("/files", s)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/downloads/edital.pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "%PDF", string(body))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/downloads/none.pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/files/downloads/edital.pdf", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
