package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/adapters/http/handlers"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/ports"
	"github.com/MiguelCav2025/sitecav/mocks"
)

func TestProcessGet(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockProcessService(t)
	h := handlers.NewProcessHandler(svc)

	data := content.DefaultProcessData()
	data.Semester = "2026.2"
	svc.EXPECT().Active(mock.Anything).Return(ports.ActiveProcess{Data: data})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/process", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProcessResponse](t, rec)
	if resp.Semester != "2026.2" || resp.Fallback {
		t.Errorf("resp = %+v, want semester 2026.2 without fallback", resp)
	}
}

func TestProcessPublish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "published", wantStatus: http.StatusOK},
		{name: "invalid", err: domain.NewValidationError("semester", "é obrigatório"), wantStatus: http.StatusBadRequest},
		{
			name:       "insert failed",
			err:        &domain.WriteError{Resource: "process_data", Op: domain.OpInsert, Err: domain.ErrUnavailable},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockProcessService(t)
			h := handlers.NewProcessHandler(svc)

			var published *content.ProcessData
			if tt.err == nil {
				published = &content.ProcessData{ID: "p2", Semester: "2026.2", IsActive: true}
			}
			svc.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(d *content.ProcessData) bool {
				return d.Semester == "2026.2" && d.InscriptionLink == "https://forms.example.com/x"
			})).Return(published, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/process", jsonBody(t, dto.ProcessDataRequest{
				Semester:        "2026.2",
				InscriptionLink: " https://forms.example.com/x ",
			}))
			h.Publish(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
