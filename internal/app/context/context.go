// Package appctx runs multi-step writes as a unit. Steps are queued on a
// RequestContext and executed in order by Commit; when one fails, the steps
// that already succeeded are rolled back in reverse order.
//
//	rc := appctx.New(ctx)
//	_ = rc.AddAction(upload) // rollback removes the uploaded object
//	_ = rc.AddAction(write)  // insert or update the row
//	if err := rc.Commit(ctx); err != nil {
//		// the upload has been removed again
//	}
package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction or
// Execute.
var ErrNilAction = errors.New("appctx: nil action")

// RequestContext queues the writes of one operation. Create one per
// operation; it cannot be reused after Commit.
type RequestContext struct {
	context.Context

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx}
}

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Len returns the number of queued actions.
func (rc *RequestContext) Len() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}

// Execute runs action immediately. It is not queued and is never rolled
// back, so it suits follow-up work such as removing a replaced file.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}

// Commit executes the queued actions in order. On the first failure the
// previously executed actions are rolled back in reverse order and the
// failing action's error is returned wrapped, so errors.As still finds typed
// errors such as *domain.UploadError.
//
// Rollbacks run on a context detached from ctx's cancellation: a client that
// hangs up mid-request must not leave an orphaned upload behind.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(context.WithoutCancel(ctx), items[:i], logger)
			return fmt.Errorf("%s: %w", action.Description(), err)
		}
	}
	return nil
}

func rollback(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
