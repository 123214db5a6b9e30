package handlers

import (
	"net/http"
	"net/url"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// EntityRequest is a request DTO that builds entity T.
type EntityRequest[T any] interface {
	ToEntity(id string) *T
}

// formBinder is implemented by request DTOs that can also arrive as a
// multipart form with a file.
type formBinder interface {
	BindForm(form url.Values) error
}

// CatalogHandler handles admin CRUD of one collection. Entities with files
// are written as multipart forms with the file under "file"; JSON bodies are
// accepted for updates that do not change the file.
type CatalogHandler[T any, R any, PR interface {
	*R
	EntityRequest[T]
}] struct {
	service       ports.CatalogService[T]
	maxUploadSize int64
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler[T any, R any, PR interface {
	*R
	EntityRequest[T]
}](service ports.CatalogService[T], maxUploadSize int64) *CatalogHandler[T, R, PR] {
	return &CatalogHandler[T, R, PR]{service: service, maxUploadSize: maxUploadSize}
}

// List handles GET /admin/{collection}.
func (h *CatalogHandler[T, R, PR]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(items))
}

// Get handles GET /admin/{collection}/{id}.
func (h *CatalogHandler[T, R, PR]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /admin/{collection}.
func (h *CatalogHandler[T, R, PR]) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "", http.StatusCreated)
}

// Update handles PUT /admin/{collection}/{id}.
func (h *CatalogHandler[T, R, PR]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.save(w, r, id, http.StatusOK)
}

// Delete handles DELETE /admin/{collection}/{id}.
func (h *CatalogHandler[T, R, PR]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler[T, R, PR]) save(w http.ResponseWriter, r *http.Request, id string, status int) {
	req := PR(new(R))
	var file *ports.FileUpload

	if isMultipart(r) {
		binder, ok := any(req).(formBinder)
		if !ok {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "envie JSON"))
			return
		}
		upload, cleanup, err := parseMultipart(w, r, h.maxUploadSize)
		defer cleanup()
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		if err := binder.BindForm(r.MultipartForm.Value); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		file = upload
	} else if !decodeJSONBody(w, r, req) {
		return
	}

	saved, err := h.service.Save(r.Context(), req.ToEntity(id), file)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, status, saved)
}

// OrderedCatalogHandler adds the order endpoint to a CatalogHandler.
type OrderedCatalogHandler[T any, R any, PR interface {
	*R
	EntityRequest[T]
}] struct {
	*CatalogHandler[T, R, PR]
	ordered ports.OrderedCatalogService[T]
}

// NewOrderedCatalogHandler creates an OrderedCatalogHandler.
func NewOrderedCatalogHandler[T any, R any, PR interface {
	*R
	EntityRequest[T]
}](service ports.OrderedCatalogService[T], maxUploadSize int64) *OrderedCatalogHandler[T, R, PR] {
	return &OrderedCatalogHandler[T, R, PR]{
		CatalogHandler: NewCatalogHandler[T, R, PR](service, maxUploadSize),
		ordered:        service,
	}
}

// Reorder handles PUT /admin/{collection}/order with every id of the
// collection in the new order.
func (h *OrderedCatalogHandler[T, R, PR]) Reorder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items, err := h.ordered.Reorder(r.Context(), req.IDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(items))
}
