package ports

import (
	"context"

	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

// Repository is a typed view of one table. Implemented by repository.Table.
//
// Read failures are returned as *domain.FetchError and write failures as
// *domain.WriteError, both wrapping the store's error so errors.Is on the
// domain sentinels keeps working.
type Repository[T any] interface {
	// Resource returns the table name, used in errors and logs.
	Resource() string

	// List returns the entities matching q.
	List(ctx context.Context, q table.Query) ([]T, error)

	// Get returns one entity by id. Returns domain.ErrNotFound (inside a
	// FetchError) when it does not exist.
	Get(ctx context.Context, id string) (*T, error)

	// Insert stores a new entity and returns it with server-assigned fields.
	Insert(ctx context.Context, entity *T) (*T, error)

	// Update overwrites the stored entity with the same id.
	// Returns domain.ErrNotFound when no row has that id.
	Update(ctx context.Context, entity *T) (*T, error)

	// UpsertAll writes all entities in one bulk upsert keyed by id.
	UpsertAll(ctx context.Context, entities []T) ([]T, error)

	// Patch applies a partial update to the rows matching filters.
	Patch(ctx context.Context, patch table.Record, filters ...table.Filter) ([]T, error)

	// Delete removes the entity with the given id.
	Delete(ctx context.Context, id string) error
}
