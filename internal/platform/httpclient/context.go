package httpclient

import (
	"context"
	"net/http"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
	allowRetryKey
	bearerTokenKey
)

// WithRequestID makes outbound calls made under ctx carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID makes outbound calls made under ctx carry
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// WithBearerToken makes outbound calls made under ctx send token as their
// bearer credential in place of the client's default Authorization header.
// The admin API uses it to write as the signed-in user.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// AllowRetry marks a non-idempotent call, such as an upsert keyed by id, as
// safe to replay.
func AllowRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, allowRetryKey, true)
}

func retryAllowed(ctx context.Context) bool {
	ok, _ := ctx.Value(allowRetryKey).(bool)
	return ok
}

// stampHeaders fills in the caller's bearer token and the client defaults
// the request did not set, then the tracing IDs found in ctx.
func stampHeaders(ctx context.Context, req *http.Request, defaults http.Header) {
	if token, _ := ctx.Value(bearerTokenKey).(string); token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for name, values := range defaults {
		if req.Header.Get(name) == "" && len(values) > 0 {
			req.Header.Set(name, values[0])
		}
	}
	if id, _ := ctx.Value(requestIDKey).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey).(string); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}
