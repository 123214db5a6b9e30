package handlers

import (
	"net/http"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// ProcessHandler handles the admin selection-process screen.
type ProcessHandler struct {
	service ports.ProcessService
}

// NewProcessHandler creates a ProcessHandler.
func NewProcessHandler(service ports.ProcessService) *ProcessHandler {
	return &ProcessHandler{service: service}
}

// Get handles GET /admin/process.
func (h *ProcessHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToProcessResponse(h.service.Active(r.Context())))
}

// Publish handles PUT /admin/process. The previous data is deactivated and
// kept as history.
func (h *ProcessHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessDataRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	data, err := h.service.Publish(r.Context(), req.ToEntity())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
