package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// FetchError reports a failed read of a resource (table or collection).
// Callers show an empty state with an inline message.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UploadError reports a failed file transfer to object storage. The record
// that would have referenced the file is never written.
type UploadError struct {
	Bucket string
	Path   string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %s/%s: %v", e.Bucket, e.Path, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Write operations reported by WriteError.
const (
	OpInsert     = "insert"
	OpUpdate     = "update"
	OpUpsert     = "upsert"
	OpDelete     = "delete"
	OpRemoveFile = "remove file"
)

// WriteError reports a failed insert, update, upsert, delete or stored-file
// removal. Op is one of the Op* constants.
type WriteError struct {
	Resource string
	Op       string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsBackendFailure reports whether err is one of the taxonomy errors
// (FetchError, UploadError, WriteError) produced by a failing collaborator.
func IsBackendFailure(err error) bool {
	var (
		fetchErr  *FetchError
		uploadErr *UploadError
		writeErr  *WriteError
	)
	return errors.As(err, &fetchErr) || errors.As(err, &uploadErr) || errors.As(err, &writeErr)
}
