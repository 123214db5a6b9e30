// Package repository provides typed repositories over a ports.TableStore.
// Each repository pairs a store with the record codec of one entity and
// wraps store failures in the domain's fetch and write errors.
package repository

import (
	"context"
	"fmt"

	"github.com/MiguelCav2025/sitecav/internal/adapters/clients/acl/records"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.Repository[content.Photo] = (*Table[content.Photo])(nil)

// Table is the repository of entity T stored in one table.
type Table[T content.Entity] struct {
	store ports.TableStore
	codec records.Codec[T]
}

// New creates a repository for codec's table on store.
func New[T content.Entity](store ports.TableStore, codec records.Codec[T]) *Table[T] {
	return &Table[T]{store: store, codec: codec}
}

// Resource returns the table name.
func (r *Table[T]) Resource() string {
	return r.codec.Table
}

// List returns the entities matching q.
func (r *Table[T]) List(ctx context.Context, q table.Query) ([]T, error) {
	rows, err := r.store.Select(ctx, r.codec.Table, q)
	if err != nil {
		return nil, &domain.FetchError{Resource: r.codec.Table, Err: err}
	}
	return r.codec.DecodeAll(rows), nil
}

// Get returns the entity with the given id.
func (r *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	rows, err := r.store.Select(ctx, r.codec.Table, table.Query{}.Where(table.Eq(table.ColumnID, id)).WithLimit(1))
	if err != nil {
		return nil, &domain.FetchError{Resource: r.codec.Table, Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.FetchError{
			Resource: r.codec.Table,
			Err:      fmt.Errorf("%w: %s %q", domain.ErrNotFound, r.codec.Table, id),
		}
	}
	entity := r.codec.Decode(rows[0])
	return &entity, nil
}

// Insert stores a new entity.
func (r *Table[T]) Insert(ctx context.Context, entity *T) (*T, error) {
	rows, err := r.store.Insert(ctx, r.codec.Table, r.codec.Encode(entity))
	if err != nil {
		return nil, r.writeErr(domain.OpInsert, err)
	}
	return r.first(domain.OpInsert, rows)
}

// Update overwrites the entity's writable columns.
func (r *Table[T]) Update(ctx context.Context, entity *T) (*T, error) {
	id := (*entity).Identifier()
	if id == "" {
		return nil, r.writeErr(domain.OpUpdate, domain.NewValidationError("id", "é obrigatório"))
	}

	patch := r.codec.Encode(entity).Without(table.ColumnID)
	rows, err := r.store.Update(ctx, r.codec.Table, patch, table.Eq(table.ColumnID, id))
	if err != nil {
		return nil, r.writeErr(domain.OpUpdate, err)
	}
	if len(rows) == 0 {
		return nil, r.writeErr(domain.OpUpdate, fmt.Errorf("%w: %s %q", domain.ErrNotFound, r.codec.Table, id))
	}
	return r.first(domain.OpUpdate, rows)
}

// UpsertAll writes every entity in one bulk upsert keyed by id.
func (r *Table[T]) UpsertAll(ctx context.Context, entities []T) ([]T, error) {
	if len(entities) == 0 {
		return nil, nil
	}
	rows := make([]table.Record, len(entities))
	for i := range entities {
		rows[i] = r.codec.Encode(&entities[i])
	}

	stored, err := r.store.Upsert(ctx, r.codec.Table, rows)
	if err != nil {
		return nil, r.writeErr(domain.OpUpsert, err)
	}
	return r.codec.DecodeAll(stored), nil
}

// Patch applies a partial update to the rows matching filters.
func (r *Table[T]) Patch(ctx context.Context, patch table.Record, filters ...table.Filter) ([]T, error) {
	rows, err := r.store.Update(ctx, r.codec.Table, patch, filters...)
	if err != nil {
		return nil, r.writeErr(domain.OpUpdate, err)
	}
	return r.codec.DecodeAll(rows), nil
}

// Delete removes the entity with the given id.
func (r *Table[T]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.codec.Table, table.Eq(table.ColumnID, id)); err != nil {
		return r.writeErr(domain.OpDelete, err)
	}
	return nil
}

func (r *Table[T]) first(op string, rows []table.Record) (*T, error) {
	if len(rows) == 0 {
		return nil, r.writeErr(op, fmt.Errorf("%s returned no rows", op))
	}
	entity := r.codec.Decode(rows[0])
	return &entity, nil
}

func (r *Table[T]) writeErr(op string, err error) error {
	return &domain.WriteError{Resource: r.codec.Table, Op: op, Err: err}
}
