package domain

import "context"

// Action is one step of a multi-step write that can be undone. Uploading a
// file and writing the row that references it are each an Action, so a
// failed row write can undo the upload.
type Action interface {
	// Execute performs the action.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is never called when
	// Execute failed.
	Rollback(ctx context.Context) error

	// Description names the action in logs, e.g.
	// "upload gallery-photos/1712-ab12cd34-ensaio.jpg".
	Description() string
}
