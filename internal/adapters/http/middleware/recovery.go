package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a logged stack trace and a 500
// problem response. A panic after the handler started writing only logs.
// http.ErrAbortHandler is passed through so the server drops the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rec.started),
				)
				if !rec.started {
					dto.WriteProblem(rec, r, http.StatusInternalServerError, "the request could not be completed")
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
