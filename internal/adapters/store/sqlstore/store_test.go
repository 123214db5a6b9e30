package sqlstore

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
)

// newTestStore opens a migrated in-memory SQLite database. A single
// connection keeps every statement on the same in-memory database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), config.DatabaseConfig{
		Driver:       DriverSQLite,
		DSN:          "file::memory:?_pragma=foreign_keys(1)",
		MaxOpenConns: 1,
		Migrate:      true,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func photo(id string, order int) table.Record {
	return table.Record{"id": id, "image_url": "https://cdn/" + id + ".jpg", "gallery_order": order}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "mysql"}, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestStore_InsertAssignsIDAndDefaults(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	rows, err := s.Insert(ctx, "banners", table.Record{"image_url": "https://cdn/a.jpg", "title": "Abertura", "is_active": true})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.NotEmpty(t, rows[0].ID())
	assert.Equal(t, "Abertura", rows[0].String("title"))
	assert.True(t, rows[0].Bool("is_active"))
	assert.False(t, rows[0].Time("created_at").IsZero(), "created_at should default")
}

func TestStore_SelectFiltersOrderAndLimit(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, "photo_gallery", photo("c", 2), photo("a", 0), photo("b", 1))
	require.NoError(t, err)

	rows, err := s.Select(ctx, "photo_gallery", table.Query{}.OrderBy(table.Asc("gallery_order")).WithLimit(2))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID())
	assert.Equal(t, "b", rows[1].ID())
	assert.Equal(t, 1, rows[1].Int("gallery_order"))

	rows, err = s.Select(ctx, "photo_gallery", table.Query{}.Where(table.Eq("id", "c")))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Int("gallery_order"))
}

func TestStore_SelectNullsLast(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, "projects",
		table.Record{"id": "unranked", "title": "Sem ordem", "is_featured": true, "featured_order": nil},
		table.Record{"id": "second", "title": "Segundo", "is_featured": true, "featured_order": 2},
		table.Record{"id": "first", "title": "Primeiro", "is_featured": true, "featured_order": 1},
	)
	require.NoError(t, err)

	rows, err := s.Select(ctx, "projects", table.Query{}.OrderBy(table.Asc("featured_order").NullsLast()))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"first", "second", "unranked"}, []string{rows[0].ID(), rows[1].ID(), rows[2].ID()})
	assert.Nil(t, rows[2].IntPtr("featured_order"))
}

func TestStore_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, "photo_gallery", photo("a", 0), photo("b", 1))
	require.NoError(t, err)

	updated, err := s.Update(ctx, "photo_gallery", table.Record{"title": "Bastidores"}, table.Eq("id", "b"))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "Bastidores", updated[0].String("title"))

	none, err := s.Update(ctx, "photo_gallery", table.Record{"title": "x"}, table.Eq("id", "missing"))
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, s.Delete(ctx, "photo_gallery", table.Eq("id", "a")))
	rows, err := s.Select(ctx, "photo_gallery", table.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "b", rows[0].ID())
}

func TestStore_RefusesUnfilteredWrites(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Update(ctx, "photo_gallery", table.Record{"title": "x"})
	require.Error(t, err)
	require.Error(t, s.Delete(ctx, "photo_gallery"))
}

func TestStore_UpsertMergesByID(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, "photo_gallery", photo("a", 0), photo("b", 1), photo("c", 2))
	require.NoError(t, err)

	// [A,B,C] moved to [B,C,A].
	out, err := s.Upsert(ctx, "photo_gallery", []table.Record{photo("b", 0), photo("c", 1), photo("a", 2)})
	require.NoError(t, err)
	require.Len(t, out, 3)

	rows, err := s.Select(ctx, "photo_gallery", table.Query{}.OrderBy(table.Asc("gallery_order")))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{rows[0].ID(), rows[1].ID(), rows[2].ID()})
}

func TestStore_UpsertIsAllOrNothing(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, "photo_gallery", photo("a", 0), photo("b", 1))
	require.NoError(t, err)

	// The second row violates NOT NULL on image_url, so the first row's
	// new position must not survive either.
	_, err = s.Upsert(ctx, "photo_gallery", []table.Record{
		photo("a", 1),
		{"id": "b", "image_url": nil, "gallery_order": 0},
	})
	require.Error(t, err)

	rows, err := s.Select(ctx, "photo_gallery", table.Query{}.OrderBy(table.Asc("gallery_order")))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID())
	assert.Equal(t, 0, rows[0].Int("gallery_order"))
}

func TestStore_DuplicateIDIsConflict(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, "photo_gallery", photo("a", 0))
	require.NoError(t, err)

	_, err = s.Insert(ctx, "photo_gallery", photo("a", 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict), "got %v", err)
}

func TestStore_InvalidIdentifier(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, err := s.Select(context.Background(), "photo_gallery; DROP TABLE banners", table.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier")
}

func TestStore_MigrationStatus(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	statuses, err := s.Status(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	for _, st := range statuses {
		assert.True(t, st.Applied, "migration %d not applied", st.Version)
	}

	n, err := s.Migrate(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	assert.Equal(t, "database", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))
}
