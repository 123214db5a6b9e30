package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"url":   "deve ser uma URL válida",
		"title": "é obrigatório",
	}}

	want := "validation error: title: é obrigatório; url: deve ser uma URL válida"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
}

func TestValidationError_Merge(t *testing.T) {
	t.Parallel()

	var nilErr *ValidationError
	merged := nilErr.Merge(NewValidationError("title", "x"))
	if merged == nil || merged.Fields["title"] != "x" {
		t.Fatalf("Merge into nil = %+v", merged)
	}

	merged = merged.Merge(fmt.Errorf("wrapped: %w", NewValidationError("url", "y")))
	if len(merged.Fields) != 2 {
		t.Errorf("Fields = %v, want 2 entries", merged.Fields)
	}

	if got := merged.Merge(errors.New("plain")); got != merged {
		t.Error("Merge of non-validation error should return receiver")
	}
	if got := nilErr.Merge(nil); got != nil {
		t.Errorf("nil.Merge(nil) = %v, want nil", got)
	}
}

func TestTaxonomyErrors_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "fetch",
			err:  &FetchError{Resource: "photo_gallery", Err: ErrUnavailable},
			want: "fetching photo_gallery: unavailable",
		},
		{
			name: "upload",
			err:  &UploadError{Bucket: "gallery-photos", Path: "a.jpg", Err: ErrUnavailable},
			want: "uploading gallery-photos/a.jpg: unavailable",
		},
		{
			name: "write",
			err:  &WriteError{Resource: "banners", Op: OpDelete, Err: ErrUnavailable},
			want: "delete banners: unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrUnavailable) {
				t.Error("errors.Is should reach the wrapped cause")
			}
			if !IsBackendFailure(fmt.Errorf("ctx: %w", tt.err)) {
				t.Error("IsBackendFailure() = false, want true")
			}
		})
	}

	if IsBackendFailure(ErrNotFound) {
		t.Error("IsBackendFailure(ErrNotFound) = true, want false")
	}
}
