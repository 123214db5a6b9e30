package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
)

// Request describes one call to the backend.
type Request struct {
	Method string
	// Path is appended to the client's base URL; it must be escaped already.
	Path   string
	Query  url.Values
	Header http.Header
	// Body is JSON-encoded unless it is an io.Reader, which is sent as is
	// with ContentType.
	Body        any
	ContentType string
	// WantStatus lists the accepted status codes; empty means 200.
	WantStatus []int
	// Replayable marks a non-idempotent request as safe to retry.
	Replayable bool
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup on error, status code validation, error
// translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes a JSON request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, validates the
// status code matches wantStatus, and decodes the response body into respBody
// (if non-nil).
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	return r.Send(ctx, Request{
		Method:     method,
		Path:       path,
		Body:       reqBody,
		WantStatus: []int{wantStatus},
	}, respBody)
}

// Send executes req and decodes a successful response into respBody (if
// non-nil). Numbers are decoded as json.Number so integer columns survive
// untyped decoding. Non-accepted status codes are passed to
// TranslateHTTPError.
func (r *Requester) Send(ctx context.Context, req Request, respBody any) error {
	httpReq, err := r.newRequest(ctx, req)
	if err != nil {
		return err
	}
	if req.Replayable {
		ctx = httpclient.AllowRetry(ctx)
	}

	want := req.WantStatus
	if len(want) == 0 {
		want = []int{http.StatusOK}
	}
	return r.execute(ctx, httpReq, want, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Client returns the underlying HTTP client, for health reporting.
func (r *Requester) Client() *httpclient.Client {
	return r.client
}

func (r *Requester) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := r.client.BaseURL() + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader = http.NoBody
		contentType string
	)
	switch b := req.Body.(type) {
	case nil:
	case io.Reader:
		body = b
		contentType = req.ContentType
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", req.Method, req.Path, err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	return httpReq, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(ctx context.Context, req *http.Request, want []int, respBody any) error {
	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !slices.Contains(want, resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !slices.Contains(want, resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
			slog.Any("want_status", want),
			slog.Any("error", translateErr),
		)
		return translateErr
	}

	if respBody != nil {
		dec := json.NewDecoder(resp.Body)
		dec.UseNumber()
		if err := dec.Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
