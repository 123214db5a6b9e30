package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders request headers as log attributes in name order,
// masking credentials and joining repeated values with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.IsSensitiveHeader(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
