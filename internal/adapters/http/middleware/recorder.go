// Package middleware holds the inbound HTTP pipeline shared by the public
// and admin routes:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout, [AdminAuth]
//
// Every middleware is a func(http.Handler) http.Handler mounted with
// chi's Router.Use in that order.
package middleware

import "net/http"

// recorder remembers the status and body size a handler produced.
type recorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *recorder) WriteHeader(code int) {
	if rec.started {
		return
	}
	rec.status = code
	rec.started = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	rec.started = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and deadlines.
func (rec *recorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
