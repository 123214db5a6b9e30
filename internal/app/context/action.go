package appctx

import (
	"context"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

var _ domain.Action = Step{}

// Step is a domain.Action assembled from functions.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	// Undo reverses Do. Nil means there is nothing to undo.
	Undo func(ctx context.Context) error
}

// Execute runs Do.
func (s Step) Execute(ctx context.Context) error {
	return s.Do(ctx)
}

// Rollback runs Undo, if set.
func (s Step) Rollback(ctx context.Context) error {
	if s.Undo == nil {
		return nil
	}
	return s.Undo(ctx)
}

// Description returns Name.
func (s Step) Description() string {
	return s.Name
}
