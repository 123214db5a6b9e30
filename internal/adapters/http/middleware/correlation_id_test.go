package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantReq  bool // expect the request ID instead of the incoming value
	}{
		{name: "caller value kept", incoming: "admin-panel:4f1c"},
		{name: "missing falls back", incoming: "", wantReq: true},
		{name: "malformed falls back", incoming: "bad value\r\nX-Evil: 1", wantReq: true},
		{name: "oversized falls back", incoming: strings.Repeat("c", 129), wantReq: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				gotCorr string
				gotReq  string
			)
			handler := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotCorr = middleware.CorrelationIDFromContext(r.Context())
					gotReq = middleware.RequestIDFromContext(r.Context())
				}),
			))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/pages", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotEmpty(t, gotReq)
			want := tt.incoming
			if tt.wantReq {
				want = gotReq
			}
			assert.Equal(t, want, gotCorr)
			assert.Equal(t, want, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestCorrelationID_WithoutRequestID(t *testing.T) {
	t.Parallel()

	handler := middleware.CorrelationID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Empty(t, rec.Header().Values("X-Correlation-ID"))
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
	assert.Equal(t, "corr-1", middleware.CorrelationIDFromContext(
		middleware.WithCorrelationID(context.Background(), "corr-1")))
}
