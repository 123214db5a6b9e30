package handlers_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/adapters/http/handlers"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/ports"
	"github.com/MiguelCav2025/sitecav/mocks"
)

func newBannerHandler(t *testing.T) (*handlers.CatalogHandler[content.Banner, dto.BannerRequest, *dto.BannerRequest], *mocks.MockCatalogService[content.Banner]) {
	t.Helper()
	svc := mocks.NewMockCatalogService[content.Banner](t)
	return handlers.NewCatalogHandler[content.Banner, dto.BannerRequest](svc, testMaxUpload), svc
}

func newGalleryHandler(t *testing.T) (*handlers.OrderedCatalogHandler[content.Photo, dto.PhotoRequest, *dto.PhotoRequest], *mocks.MockOrderedCatalogService[content.Photo]) {
	t.Helper()
	svc := mocks.NewMockOrderedCatalogService[content.Photo](t)
	return handlers.NewOrderedCatalogHandler[content.Photo, dto.PhotoRequest](svc, testMaxUpload), svc
}

// --- List / Get ---

func TestCatalogList_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBannerHandler(t)

	svc.EXPECT().List(mock.Anything).Return([]content.Banner{validBanner()}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/banners", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[content.Banner]](t, rec)
	if resp.Count != 1 || resp.Items[0].ID != "b1" {
		t.Errorf("resp = %+v, want one banner b1", resp)
	}
}

func TestCatalogList_FetchError(t *testing.T) {
	t.Parallel()
	h, svc := newBannerHandler(t)

	svc.EXPECT().List(mock.Anything).
		Return(nil, &domain.FetchError{Resource: "banners", Err: io.ErrUnexpectedEOF})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/banners", nil))

	requireStatus(t, rec, http.StatusBadGateway)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Type != "urn:cav:problem:fetch" {
		t.Errorf("Type = %q, want fetch problem", resp.Type)
	}
}

func TestCatalogGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newBannerHandler(t)

			var found *content.Banner
			if tt.err == nil {
				b := validBanner()
				found = &b
			}
			svc.EXPECT().Get(mock.Anything, "b1").Return(found, tt.err)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/admin/banners/b1", nil),
				map[string]string{"id": "b1"})
			h.Get(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestCatalogGet_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newBannerHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/admin/banners/", nil),
		map[string]string{"id": " "})
	h.Get(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Create / Update ---

func TestCatalogCreate_Multipart(t *testing.T) {
	t.Parallel()
	h, svc := newBannerHandler(t)

	svc.EXPECT().Save(mock.Anything,
		mock.MatchedBy(func(b *content.Banner) bool {
			return b.ID == "" && b.Title == "Vestibular" && !b.IsActive
		}),
		mock.MatchedBy(func(f *ports.FileUpload) bool {
			return f != nil && f.Name == "capa.png" && f.ContentType == "image/png"
		}),
	).RunAndReturn(func(_ context.Context, b *content.Banner, f *ports.FileUpload) (*content.Banner, error) {
		data, err := io.ReadAll(f.Body)
		if err != nil || string(data) != "png-bytes" {
			t.Errorf("file body = %q, %v; want png-bytes", data, err)
		}
		saved := *b
		saved.ID = "b9"
		return &saved, nil
	})

	body, ct := multipartBody(t,
		map[string]string{"title": " Vestibular ", "is_active": "false"},
		"capa.png", "image/png", []byte("png-bytes"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners", body)
	req.Header.Set("Content-Type", ct)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[content.Banner](t, rec)
	if resp.ID != "b9" {
		t.Errorf("ID = %q, want %q", resp.ID, "b9")
	}
}

func TestCatalogCreate_ContentTypeFromExtension(t *testing.T) {
	t.Parallel()
	h, svc := newBannerHandler(t)

	svc.EXPECT().Save(mock.Anything, mock.Anything,
		mock.MatchedBy(func(f *ports.FileUpload) bool {
			return f != nil && f.ContentType == "image/jpeg"
		}),
	).Return(&content.Banner{ID: "b2"}, nil)

	body, ct := multipartBody(t, map[string]string{"title": "x"}, "FOTO.JPG", "", []byte("jpg"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners", body)
	req.Header.Set("Content-Type", ct)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCatalogCreate_InvalidFormField(t *testing.T) {
	t.Parallel()
	h, _ := newBannerHandler(t)

	body, ct := multipartBody(t, map[string]string{"is_active": "maybe"}, "", "", nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners", body)
	req.Header.Set("Content-Type", ct)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.is_active" {
		t.Errorf("Errors = %+v, want one is_active error", resp.Errors)
	}
}

func TestCatalogCreate_FileTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newBannerHandler(t)

	big := bytes.Repeat([]byte("x"), 3*testMaxUpload)
	body, ct := multipartBody(t, map[string]string{"title": "x"}, "big.png", "image/png", big)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners", body)
	req.Header.Set("Content-Type", ct)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCatalogCreate_UploadFailure(t *testing.T) {
	t.Parallel()
	h, svc := newBannerHandler(t)

	svc.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.UploadError{Bucket: "banners", Path: "banners/x.png", Err: io.ErrClosedPipe})

	body, ct := multipartBody(t, map[string]string{"title": "x"}, "x.png", "image/png", []byte("x"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners", body)
	req.Header.Set("Content-Type", ct)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Type != "urn:cav:problem:upload" {
		t.Errorf("Type = %q, want upload problem", resp.Type)
	}
}

func TestCatalogUpdate_JSONKeepsFile(t *testing.T) {
	t.Parallel()
	h, svc := newBannerHandler(t)

	svc.EXPECT().Save(mock.Anything,
		mock.MatchedBy(func(b *content.Banner) bool { return b.ID == "b1" && b.IsActive }),
		(*ports.FileUpload)(nil),
	).Return(&content.Banner{ID: "b1", IsActive: true}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/banners/b1",
		jsonBody(t, map[string]any{"title": "Novo"}))
	req.Header.Set("Content-Type", "application/json")
	h.Update(rec, withChiParams(req, map[string]string{"id": "b1"}))

	requireStatus(t, rec, http.StatusOK)
}

func TestCatalogUpdate_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newBannerHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPut, "/api/v1/admin/banners/b1",
		strings.NewReader("{")), map[string]string{"id": "b1"})
	h.Update(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCatalogCreate_JSONOnlyRejectsMultipart(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockCatalogService[content.Bibliography](t)
	h := handlers.NewCatalogHandler[content.Bibliography, dto.BibliographyRequest](svc, testMaxUpload)

	body, ct := multipartBody(t, map[string]string{"title": "x"}, "", "", nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/bibliographies", body)
	req.Header.Set("Content-Type", ct)
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Delete ---

func TestCatalogDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "file removal failed",
			err:        &domain.WriteError{Resource: "banners", Op: domain.OpRemoveFile, Err: io.ErrClosedPipe},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newBannerHandler(t)

			svc.EXPECT().Delete(mock.Anything, "b1").Return(tt.err)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/banners/b1", nil),
				map[string]string{"id": "b1"})
			h.Delete(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- Reorder ---

func TestCatalogReorder_Success(t *testing.T) {
	t.Parallel()
	h, svc := newGalleryHandler(t)

	svc.EXPECT().Reorder(mock.Anything, []string{"p2", "p1"}).
		Return([]content.Photo{validPhoto("p2", 0), validPhoto("p1", 1)}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/gallery/order",
		jsonBody(t, dto.OrderRequest{IDs: []string{"p2", "p1"}}))
	h.Reorder(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[content.Photo]](t, rec)
	if resp.Items[0].ID != "p2" || resp.Items[0].GalleryOrder != 0 {
		t.Errorf("first item = %+v, want p2 at 0", resp.Items[0])
	}
}

func TestCatalogReorder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ids        []string
		svcErr     error
		wantStatus int
	}{
		{name: "empty ids", ids: nil, wantStatus: http.StatusBadRequest},
		{name: "blank id", ids: []string{"p1", ""}, wantStatus: http.StatusBadRequest},
		{name: "not a permutation", ids: []string{"p1"}, svcErr: domain.ErrConflict, wantStatus: http.StatusConflict},
		{
			name:       "write failed",
			ids:        []string{"p1"},
			svcErr:     &domain.WriteError{Resource: "gallery", Op: domain.OpUpsert, Err: io.ErrClosedPipe},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newGalleryHandler(t)

			if tt.svcErr != nil {
				svc.EXPECT().Reorder(mock.Anything, tt.ids).Return(nil, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/gallery/order",
				jsonBody(t, dto.OrderRequest{IDs: tt.ids}))
			h.Reorder(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestOrderedCatalog_InheritsCRUD(t *testing.T) {
	t.Parallel()
	h, svc := newGalleryHandler(t)

	svc.EXPECT().List(mock.Anything).Return([]content.Photo{validPhoto("p1", 0)}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/gallery", nil))

	requireStatus(t, rec, http.StatusOK)
}
