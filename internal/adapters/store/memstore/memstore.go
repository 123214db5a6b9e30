// Package memstore is an in-memory ports.TableStore for tests and local
// demos. Tables are created on first write; there is no schema.
package memstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.TableStore = (*Store)(nil)

const columnCreatedAt = "created_at"

// Store keeps each table as a slice of records in insertion order. Every
// method holds the lock for its whole duration, so a bulk upsert is applied
// all at once.
type Store struct {
	mu     sync.RWMutex
	tables map[string][]table.Record
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for created_at defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		tables: make(map[string][]table.Record),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns copies of the rows matching q.
func (s *Store) Select(ctx context.Context, tbl string, q table.Query) ([]table.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []table.Record
	for _, r := range s.tables[tbl] {
		if matches(r, q.Filters) {
			out = append(out, project(r, q.Columns))
		}
	}

	if len(q.Orders) > 0 {
		slices.SortStableFunc(out, func(a, b table.Record) int {
			return compareRecords(a, b, q.Orders)
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Insert appends rows. Rows without an id get a random UUID; a duplicate id
// fails the whole call with domain.ErrConflict.
func (s *Store) Insert(ctx context.Context, tbl string, rows ...table.Record) ([]table.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prepared := make([]table.Record, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		r := s.prepare(row)
		if seen[r.ID()] || s.indexOf(tbl, r.ID()) >= 0 {
			return nil, fmt.Errorf("%w: %s id %q already exists", domain.ErrConflict, tbl, r.ID())
		}
		seen[r.ID()] = true
		prepared[i] = r
	}

	out := make([]table.Record, len(prepared))
	for i, r := range prepared {
		s.tables[tbl] = append(s.tables[tbl], r)
		out[i] = r.Clone()
	}
	return out, nil
}

// Update merges patch into every row matching filters.
func (s *Store) Update(
	ctx context.Context, tbl string, patch table.Record, filters ...table.Filter,
) ([]table.Record, error) {
	if len(filters) == 0 {
		return nil, errors.New("memstore: update without filters")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []table.Record
	for i, r := range s.tables[tbl] {
		if !matches(r, filters) {
			continue
		}
		merged := r.Clone()
		for k, v := range patch {
			merged[k] = v
		}
		s.tables[tbl][i] = merged
		out = append(out, merged.Clone())
	}
	return out, nil
}

// Upsert merges rows into existing rows with the same id and appends the
// rest, all under one lock.
func (s *Store) Upsert(ctx context.Context, tbl string, rows []table.Record) ([]table.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]table.Record, 0, len(rows))
	for _, row := range rows {
		if i := s.indexOf(tbl, row.ID()); i >= 0 && row.ID() != "" {
			merged := s.tables[tbl][i].Clone()
			for k, v := range row {
				merged[k] = v
			}
			s.tables[tbl][i] = merged
			out = append(out, merged.Clone())
			continue
		}
		r := s.prepare(row)
		s.tables[tbl] = append(s.tables[tbl], r)
		out = append(out, r.Clone())
	}
	return out, nil
}

// Delete removes the rows matching filters.
func (s *Store) Delete(ctx context.Context, tbl string, filters ...table.Filter) error {
	if len(filters) == 0 {
		return errors.New("memstore: delete without filters")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[tbl] = slices.DeleteFunc(s.tables[tbl], func(r table.Record) bool {
		return matches(r, filters)
	})
	return nil
}

// Len returns the number of rows in tbl.
func (s *Store) Len(tbl string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[tbl])
}

// prepare copies row and fills id and created_at.
func (s *Store) prepare(row table.Record) table.Record {
	r := row.Clone()
	if r == nil {
		r = table.Record{}
	}
	if r.ID() == "" {
		r[table.ColumnID] = uuid.NewString()
	}
	if !r.Has(columnCreatedAt) {
		r[columnCreatedAt] = s.now().UTC()
	}
	return r
}

func (s *Store) indexOf(tbl, id string) int {
	return slices.IndexFunc(s.tables[tbl], func(r table.Record) bool {
		return r.ID() == id
	})
}

func matches(r table.Record, filters []table.Filter) bool {
	for _, f := range filters {
		if f.Value == nil {
			if r.Has(f.Column) {
				return false
			}
			continue
		}
		if !r.Has(f.Column) || compareValues(r[f.Column], f.Value) != 0 {
			return false
		}
	}
	return true
}

func project(r table.Record, columns []string) table.Record {
	if len(columns) == 0 {
		return r.Clone()
	}
	out := make(table.Record, len(columns))
	for _, c := range columns {
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out
}

// compareRecords orders by each term in turn. Nulls sort last ascending and
// first descending unless the term says otherwise, as in Postgres.
func compareRecords(a, b table.Record, orders []table.Order) int {
	for _, o := range orders {
		aNull, bNull := !a.Has(o.Column), !b.Has(o.Column)
		if aNull || bNull {
			if aNull == bNull {
				continue
			}
			nullsFirst := o.Nulls == table.NullsFirst || (o.Nulls == table.NullsDefault && o.Desc)
			if aNull == nullsFirst {
				return -1
			}
			return 1
		}

		c := compareValues(a[o.Column], b[o.Column])
		if o.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// compareValues compares two non-null column values of compatible kinds.
func compareValues(a, b any) int {
	switch av := normalize(a).(type) {
	case float64:
		if bv, ok := normalize(b).(float64); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := normalize(b).(bool); ok {
			return cmp.Compare(boolRank(av), boolRank(bv))
		}
	case time.Time:
		if bv, ok := normalize(b).(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case string:
		if t, err := time.Parse(time.RFC3339Nano, n); err == nil {
			return t
		}
		return n
	default:
		return v
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
