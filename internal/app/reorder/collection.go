// Package reorder holds a manually ordered collection in memory, lets it be
// permuted locally and persists the order in one bulk write on Commit.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/MiguelCav2025/sitecav/internal/app/context"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
)

// Errors returned for operations the current state does not allow. The
// in-progress errors wrap domain.ErrConflict.
var (
	ErrNotLoaded        = errors.New("reorder: collection not loaded")
	ErrCommitInProgress = fmt.Errorf("reorder: commit in progress: %w", domain.ErrConflict)
	ErrLoadInProgress   = fmt.Errorf("reorder: load in progress: %w", domain.ErrConflict)
)

// State is the lifecycle state of a Collection.
type State int

// Collection states.
//
//	Unloaded -> Loading -> Clean <-> Dirty -> Committing -> Clean
//
// A failed load returns to Unloaded with an empty list; a failed commit
// returns to Dirty.
const (
	Unloaded State = iota
	Loading
	Clean
	Dirty
	Committing
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Committing:
		return "committing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Source is the persistence a Collection reads and writes. It is satisfied
// by ports.Repository.
type Source[T any] interface {
	Resource() string
	List(ctx context.Context, q table.Query) ([]T, error)
	Insert(ctx context.Context, entity *T) (*T, error)
	UpsertAll(ctx context.Context, entities []T) ([]T, error)
	Delete(ctx context.Context, id string) error
}

// FileRemover deletes the stored file referenced by item. It returns nil
// when the item references no file.
type FileRemover[T any] func(ctx context.Context, item T) error

type snapshot[T any] struct {
	state    State
	working  []T
	pristine []T
}

// Collection is the in-memory controller of one ordered collection. It is
// safe for concurrent use; operations that would interleave with a commit
// in flight are rejected with ErrCommitInProgress.
//
// PT is *T; the pointer carries SetPosition.
type Collection[T any, PT interface {
	*T
	content.Orderable
}] struct {
	source      Source[T]
	orderColumn string
	removeFile  FileRemover[T]
	metrics     *telemetry.Metrics
	logger      *slog.Logger

	snap *appctx.SafeRef[snapshot[T]]
}

// Option configures a Collection.
type Option[T any] func(*options[T])

type options[T any] struct {
	removeFile FileRemover[T]
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// WithFileRemover sets how Remove deletes an item's stored file.
func WithFileRemover[T any](fn FileRemover[T]) Option[T] {
	return func(o *options[T]) { o.removeFile = fn }
}

// WithMetrics records commit outcomes.
func WithMetrics[T any](m *telemetry.Metrics) Option[T] {
	return func(o *options[T]) { o.metrics = m }
}

// WithLogger sets the logger; the default discards.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) { o.logger = l }
}

// New creates an unloaded collection over source, ordered by orderColumn.
func New[T any, PT interface {
	*T
	content.Orderable
}](source Source[T], orderColumn string, opts ...Option[T]) *Collection[T, PT] {
	o := options[T]{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T, PT]{
		source:      source,
		orderColumn: orderColumn,
		removeFile:  o.removeFile,
		metrics:     o.metrics,
		logger:      o.logger,
		snap:        appctx.NewRef(snapshot[T]{}),
	}
}

// State returns the current state.
func (c *Collection[T, PT]) State() State {
	return c.snap.Get().state
}

// Items returns a copy of the working order.
func (c *Collection[T, PT]) Items() []T {
	return slices.Clone(c.snap.Get().working)
}

// Len returns the number of items in the working copy.
func (c *Collection[T, PT]) Len() int {
	return len(c.snap.Get().working)
}

// IsDirty reports whether the working copy differs from the last loaded or
// committed order. Every field is compared, in order.
func (c *Collection[T, PT]) IsDirty() bool {
	s := c.snap.Get()
	return !equal(s.working, s.pristine)
}

// Load fetches every item ordered by position and replaces both the working
// copy and the pristine snapshot. On failure the list is cleared and the
// collection returns to Unloaded.
func (c *Collection[T, PT]) Load(ctx context.Context) error {
	err := c.snap.TryUpdate(func(s *snapshot[T]) error {
		switch s.state {
		case Committing:
			return ErrCommitInProgress
		case Loading:
			return ErrLoadInProgress
		}
		s.state = Loading
		return nil
	})
	if err != nil {
		return err
	}

	items, err := c.source.List(ctx, table.Query{}.OrderBy(
		table.Asc(c.orderColumn),
		table.Asc(table.ColumnID),
	))
	if err != nil {
		c.snap.Set(snapshot[T]{state: Unloaded})
		c.logger.ErrorContext(ctx, "failed to load collection",
			slog.String("operation", "Collection.Load"),
			slog.String("collection", c.source.Resource()),
			slog.Any("error", err),
		)
		return asFetchError(c.source.Resource(), err)
	}

	c.snap.Set(snapshot[T]{
		state:    Clean,
		working:  items,
		pristine: slices.Clone(items),
	})
	return nil
}

// Reorder moves the item at src to dst in the working copy. Nothing is
// written until Commit. Equal indices are a no-op.
func (c *Collection[T, PT]) Reorder(src, dst int) error {
	return c.snap.TryUpdate(func(s *snapshot[T]) error {
		if err := s.editable(); err != nil {
			return err
		}
		n := len(s.working)
		if src < 0 || src >= n || dst < 0 || dst >= n {
			return domain.NewValidationError("index", fmt.Sprintf("deve estar entre 0 e %d", n-1))
		}
		if src == dst {
			return nil
		}

		working := slices.Clone(s.working)
		item := working[src]
		working = slices.Delete(working, src, src+1)
		working = slices.Insert(working, dst, item)

		s.working = working
		s.state = stateFor(working, s.pristine)
		return nil
	})
}

// Commit sets every item's position to its index in the working order and
// writes all items in one bulk upsert. On success the committed order
// becomes the pristine snapshot. On failure the working copy is kept, the
// collection stays dirty and a *domain.WriteError is returned.
func (c *Collection[T, PT]) Commit(ctx context.Context) error {
	var pending []T
	err := c.snap.TryUpdate(func(s *snapshot[T]) error {
		if err := s.editable(); err != nil {
			return err
		}
		pending = slices.Clone(s.working)
		s.state = Committing
		return nil
	})
	if err != nil {
		return err
	}

	for i := range pending {
		PT(&pending[i]).SetPosition(i)
	}

	_, err = c.source.UpsertAll(ctx, pending)
	c.recordCommit(ctx, err)
	if err != nil {
		c.snap.Update(func(s *snapshot[T]) {
			s.state = Dirty
		})
		c.logger.ErrorContext(ctx, "failed to commit order",
			slog.String("operation", "Collection.Commit"),
			slog.String("collection", c.source.Resource()),
			slog.Int("items", len(pending)),
			slog.Any("error", err),
		)
		return asWriteError(c.source.Resource(), domain.OpUpsert, err)
	}

	c.snap.Set(snapshot[T]{
		state:    Clean,
		working:  pending,
		pristine: slices.Clone(pending),
	})
	return nil
}

// NeedsCommit reports whether Commit would change stored positions: the
// working order is dirty or the loaded positions are not 0..n-1.
func (c *Collection[T, PT]) NeedsCommit() bool {
	s := c.snap.Get()
	return !equal(s.working, s.pristine) || !dense[T, PT](s.working)
}

// NextPosition returns the position a new item takes: one past the highest
// stored position, 0 when the collection is empty. Deletes leave gaps, so
// this is not always the length.
func (c *Collection[T, PT]) NextPosition() (int, error) {
	s := c.snap.Get()
	if err := s.editable(); err != nil {
		return 0, err
	}
	return nextPosition[T, PT](s.working), nil
}

// Add stores item at the end of the collection (see NextPosition) and
// appends it to both the working copy and the pristine snapshot.
func (c *Collection[T, PT]) Add(ctx context.Context, item T) (*T, error) {
	s := c.snap.Get()
	if err := s.editable(); err != nil {
		return nil, err
	}

	PT(&item).SetPosition(nextPosition[T, PT](s.working))
	stored, err := c.source.Insert(ctx, &item)
	if err != nil {
		return nil, asWriteError(c.source.Resource(), domain.OpInsert, err)
	}

	err = c.snap.TryUpdate(func(s *snapshot[T]) error {
		if err := s.editable(); err != nil {
			return err
		}
		s.working = append(slices.Clone(s.working), *stored)
		s.pristine = append(slices.Clone(s.pristine), *stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Remove deletes the item's stored file (when it has one), then its row,
// then reloads the collection. A failed file removal aborts before the row
// is touched.
func (c *Collection[T, PT]) Remove(ctx context.Context, id string) error {
	s := c.snap.Get()
	if err := s.editable(); err != nil {
		return err
	}

	idx := slices.IndexFunc(s.working, func(item T) bool {
		return PT(&item).Identifier() == id
	})
	if idx < 0 {
		return &domain.WriteError{
			Resource: c.source.Resource(),
			Op:       domain.OpDelete,
			Err:      fmt.Errorf("%w: %s %q", domain.ErrNotFound, c.source.Resource(), id),
		}
	}

	if c.removeFile != nil {
		if err := c.removeFile(ctx, s.working[idx]); err != nil {
			return asWriteError(c.source.Resource(), domain.OpRemoveFile, err)
		}
	}
	if err := c.source.Delete(ctx, id); err != nil {
		return asWriteError(c.source.Resource(), domain.OpDelete, err)
	}
	return c.Load(ctx)
}

func (c *Collection[T, PT]) recordCommit(ctx context.Context, err error) {
	if c.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	c.metrics.ReorderCommitTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCollection.String(c.source.Resource()),
		telemetry.AttrResult.String(result),
	))
}

// editable rejects operations outside the loaded states.
func (s snapshot[T]) editable() error {
	switch s.state {
	case Clean, Dirty:
		return nil
	case Committing:
		return ErrCommitInProgress
	case Loading:
		return ErrLoadInProgress
	default:
		return ErrNotLoaded
	}
}

func nextPosition[T any, PT interface {
	*T
	content.Orderable
}](items []T) int {
	next := 0
	for i := range items {
		if p := PT(&items[i]).Position(); p >= next {
			next = p + 1
		}
	}
	return next
}

func dense[T any, PT interface {
	*T
	content.Orderable
}](items []T) bool {
	for i := range items {
		if PT(&items[i]).Position() != i {
			return false
		}
	}
	return true
}

func stateFor[T any](working, pristine []T) State {
	if equal(working, pristine) {
		return Clean
	}
	return Dirty
}

// equal compares two lists element by element with reflect.DeepEqual.
func equal[T any](a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool {
		return reflect.DeepEqual(x, y)
	})
}

func asFetchError(resource string, err error) error {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return &domain.FetchError{Resource: resource, Err: err}
}

func asWriteError(resource, op string, err error) error {
	var writeErr *domain.WriteError
	if errors.As(err, &writeErr) {
		return err
	}
	return &domain.WriteError{Resource: resource, Op: op, Err: err}
}
