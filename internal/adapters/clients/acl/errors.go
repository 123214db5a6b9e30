// Package acl implements the Anti-Corruption Layer between the hosted backend
// (a PostgREST table API plus a storage REST API) and the domain. The table
// and storage clients live here together with the shared error mapping;
// record <-> entity codecs live in the records subpackage.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the union of the error shapes the backend produces:
// PostgREST ({code, message, details, hint}), the storage API
// ({statusCode, error, message}) and RFC 9457 problem details
// ({detail, errors}).
type errorBody struct {
	// PostgREST.
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	// Storage API. statusCode arrives as a string.
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`

	// Problem details.
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within a problem details
// response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// Postgres and PostgREST error codes with a domain meaning.
const (
	pgUniqueViolation   = "23505"
	pgForeignKey        = "23503"
	pgNotNullViolation  = "23502"
	pgCheckViolation    = "23514"
	pgInvalidText       = "22P02"
	pgrstSingularNoRows = "PGRST116"
	pgrstUnknownColumn  = "PGRST204"
)

// TranslateHTTPError maps an HTTP error response to a domain error.
// The backend's error code, when present, takes precedence over the HTTP
// status: the storage API for instance reports a missing object as a 400
// whose body says statusCode "404".
func TranslateHTTPError(resp *http.Response) error {
	eb := parseErrorBody(resp)

	detail := eb.message()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	status := resp.StatusCode
	if s, err := strconv.Atoi(eb.StatusCode); err == nil && s >= http.StatusBadRequest {
		status = s
	}

	switch eb.Code {
	case pgUniqueViolation, pgForeignKey:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case pgNotNullViolation, pgCheckViolation, pgInvalidText, pgrstUnknownColumn:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case pgrstSingularNoRows:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case status == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if len(eb.Errors) > 0 {
			return toValidationError(eb.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case status == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// message picks the most specific human-readable text in the body.
func (e errorBody) message() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "" && e.Details != "":
		return e.Message + " (" + e.Details + ")"
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}

// parseErrorBody reads and parses a JSON error body from the response.
// Returns an empty errorBody if the body is absent or not JSON.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") && !strings.HasPrefix(ct, "application/problem+json") {
		return errorBody{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}

// toValidationError converts problem details errors to a domain
// ValidationError. It strips the "body." prefix from locations to produce
// clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
