package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/MiguelCav2025/sitecav/internal/app/reorder"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.OrderedCatalogService[content.Photo] = (*OrderedCatalog[content.Photo, *content.Photo])(nil)

// OrderableStorable is the pointer form of an ordered catalog entity.
type OrderableStorable[T any] interface {
	Storable[T]
	content.Orderable
}

// OrderedCatalog is a Catalog whose entities carry a manual position. New
// entities are appended at the end and the order is changed with Reorder,
// which drives a reorder.Collection through load, permute and commit.
type OrderedCatalog[T any, PT OrderableStorable[T]] struct {
	*Catalog[T, PT]
	orderColumn string
	metrics     *telemetry.Metrics
}

// NewOrderedCatalog creates an ordered catalog sorted by orderColumn.
// metrics may be nil.
func NewOrderedCatalog[T any, PT OrderableStorable[T]](repo ports.Repository[T], orderColumn string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...CatalogOption[T]) *OrderedCatalog[T, PT] {
	q := table.Query{}.OrderBy(table.Asc(orderColumn), table.Asc(table.ColumnID))
	return &OrderedCatalog[T, PT]{
		Catalog:     NewCatalog[T, PT](repo, q, logger, opts...),
		orderColumn: orderColumn,
		metrics:     metrics,
	}
}

// Collection returns a new, unloaded controller over the catalog's
// repository. Removing an item through it also removes its stored file.
func (c *OrderedCatalog[T, PT]) Collection() *reorder.Collection[T, PT] {
	opts := []reorder.Option[T]{
		reorder.WithLogger[T](c.logger),
		reorder.WithMetrics[T](c.metrics),
	}
	if c.media != nil && c.attacher != nil {
		opts = append(opts, reorder.WithFileRemover[T](c.removeFile))
	}
	return reorder.New[T, PT](c.repo, c.orderColumn, opts...)
}

// Save appends new entities at the end of the collection and otherwise
// behaves like Catalog.Save. Updates keep the stored position.
//
// Creates take their position from the controller but are written by
// Catalog.Save, which stages the upload and the row write together so a
// failed insert removes the uploaded file. Collection.Add inserts the row
// alone.
func (c *OrderedCatalog[T, PT]) Save(ctx context.Context, entity *T, file *ports.FileUpload) (*T, error) {
	if PT(entity).Identifier() == "" {
		coll := c.Collection()
		if err := coll.Load(ctx); err != nil {
			return nil, err
		}
		pos, err := coll.NextPosition()
		if err != nil {
			return nil, err
		}
		PT(entity).SetPosition(pos)
	} else {
		existing, err := c.repo.Get(ctx, PT(entity).Identifier())
		if err != nil {
			return nil, err
		}
		PT(entity).SetPosition(PT(existing).Position())
	}
	return c.Catalog.Save(ctx, entity, file)
}

// Delete removes the stored file and the row, then reloads the collection.
func (c *OrderedCatalog[T, PT]) Delete(ctx context.Context, id string) error {
	coll := c.Collection()
	if err := coll.Load(ctx); err != nil {
		return err
	}
	if err := coll.Remove(ctx, id); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete entity",
			slog.String("operation", "OrderedCatalog.Delete"),
			slog.String("resource", c.repo.Resource()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Reorder persists ids as the new order. ids must list every stored entity
// exactly once; otherwise domain.ErrConflict is returned and nothing is
// written. Positions become 0..n-1 in one bulk write.
func (c *OrderedCatalog[T, PT]) Reorder(ctx context.Context, ids []string) ([]T, error) {
	c.logger.InfoContext(ctx, "reordering collection",
		slog.String("resource", c.repo.Resource()),
		slog.Int("items", len(ids)),
	)

	coll := c.Collection()
	if err := coll.Load(ctx); err != nil {
		return nil, err
	}

	current := coll.Items()
	if err := checkPermutation[T, PT](current, ids); err != nil {
		return nil, err
	}

	for target, id := range ids {
		src := slices.IndexFunc(coll.Items(), func(item T) bool {
			return PT(&item).Identifier() == id
		})
		if err := coll.Reorder(src, target); err != nil {
			return nil, err
		}
	}

	if !coll.NeedsCommit() {
		return coll.Items(), nil
	}
	if err := coll.Commit(ctx); err != nil {
		return nil, err
	}
	return coll.Items(), nil
}

// checkPermutation reports domain.ErrConflict unless ids contains exactly
// the ids of items.
func checkPermutation[T any, PT OrderableStorable[T]](items []T, ids []string) error {
	if len(ids) != len(items) {
		return fmt.Errorf("%w: order lists %d items, collection has %d", domain.ErrConflict, len(ids), len(items))
	}
	known := make(map[string]bool, len(items))
	for i := range items {
		known[PT(&items[i]).Identifier()] = false
	}
	for _, id := range ids {
		seen, ok := known[id]
		if !ok {
			return fmt.Errorf("%w: unknown id %q", domain.ErrConflict, id)
		}
		if seen {
			return fmt.Errorf("%w: duplicate id %q", domain.ErrConflict, id)
		}
		known[id] = true
	}
	return nil
}
