package handlers

import (
	"net/http"
	"strconv"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// maxGalleryLimit caps the limit query parameter of the public gallery.
const maxGalleryLimit = 100

// PageHandler serves the public site.
type PageHandler struct {
	pages   ports.PageService
	process ports.ProcessService
	contact ports.ContactService
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(pages ports.PageService, process ports.ProcessService, contact ports.ContactService) *PageHandler {
	return &PageHandler{pages: pages, process: process, contact: contact}
}

// Home handles GET /home. Blocks that fail to load are reported per block
// and never fail the page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToHomeResponse(h.pages.Home(r.Context())))
}

// CandidateArea handles GET /candidate-area.
func (h *PageHandler) CandidateArea(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToCandidateAreaResponse(h.pages.CandidateArea(r.Context())))
}

// Process handles GET /process.
func (h *PageHandler) Process(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToProcessResponse(h.process.Active(r.Context())))
}

// Banners handles GET /banners.
func (h *PageHandler) Banners(w http.ResponseWriter, r *http.Request) {
	items, err := h.pages.ActiveBanners(r.Context())
	writeList(w, r, items, err)
}

// Projects handles GET /projects.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	items, err := h.pages.Portfolio(r.Context())
	writeList(w, r, items, err)
}

// Project handles GET /projects/{id}.
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.pages.PortfolioProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// InstitutionalProjects handles GET /institutional-projects.
func (h *PageHandler) InstitutionalProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.pages.InstitutionalProjects(r.Context())
	writeList(w, r, items, err)
}

// Gallery handles GET /gallery with an optional limit query parameter.
func (h *PageHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxGalleryLimit {
			dto.WriteErrorResponse(w, r,
				domain.NewValidationError("limit", "deve ser um número entre 1 e "+strconv.Itoa(maxGalleryLimit)))
			return
		}
		limit = n
	}

	items, err := h.pages.Gallery(r.Context(), limit)
	writeList(w, r, items, err)
}

// Downloads handles GET /downloads.
func (h *PageHandler) Downloads(w http.ResponseWriter, r *http.Request) {
	items, err := h.pages.ActiveDownloads(r.Context())
	writeList(w, r, items, err)
}

// Contact handles POST /contact.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.contact.Send(r.Context(), req.ToEntity()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func writeList[T any](w http.ResponseWriter, r *http.Request, items []T, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToListResponse(items))
}
