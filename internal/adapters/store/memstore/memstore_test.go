package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

func ids(rows []table.Record) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID()
	}
	return out
}

func TestStore_InsertFillsIDAndCreatedAt(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }))

	rows, err := s.Insert(context.Background(), "banners", table.Record{"image_url": "u"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].ID())
	assert.Equal(t, at, rows[0].Time("created_at"))
}

func TestStore_InsertDuplicateIsConflict(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	_, err := s.Insert(ctx, "t", table.Record{"id": "a"})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "t", table.Record{"id": "b"}, table.Record{"id": "a"})
	require.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, 1, s.Len("t"), "a failed insert must not write any row")
}

func TestStore_SelectOrdering(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	_, err := s.Insert(ctx, "projects",
		table.Record{"id": "plain", "is_featured": false, "featured_order": nil, "created_at": "2025-01-03T00:00:00Z"},
		table.Record{"id": "f2", "is_featured": true, "featured_order": 2, "created_at": "2025-01-01T00:00:00Z"},
		table.Record{"id": "f-null", "is_featured": true, "featured_order": nil, "created_at": "2025-01-02T00:00:00Z"},
		table.Record{"id": "f1", "is_featured": true, "featured_order": int64(1), "created_at": "2025-01-01T00:00:00Z"},
	)
	require.NoError(t, err)

	rows, err := s.Select(ctx, "projects", table.Query{}.OrderBy(
		table.Desc("is_featured"),
		table.Asc("featured_order").NullsLast(),
		table.Desc("created_at"),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2", "f-null", "plain"}, ids(rows))

	rows, err = s.Select(ctx, "projects", table.Query{}.Where(table.Eq("is_featured", true)).WithLimit(2).
		OrderBy(table.Desc("created_at")))
	require.NoError(t, err)
	assert.Equal(t, []string{"f-null", "f2"}, ids(rows))
}

func TestStore_FilterNull(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	_, err := s.Insert(ctx, "t", table.Record{"id": "a", "x": nil}, table.Record{"id": "b", "x": 1})
	require.NoError(t, err)

	rows, err := s.Select(ctx, "t", table.Query{}.Where(table.Eq("x", nil)))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(rows))
}

func TestStore_UpsertMergesAndAppends(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	_, err := s.Insert(ctx, "photo_gallery",
		table.Record{"id": "a", "image_url": "ua", "gallery_order": 0},
		table.Record{"id": "b", "image_url": "ub", "gallery_order": 1},
	)
	require.NoError(t, err)

	_, err = s.Upsert(ctx, "photo_gallery", []table.Record{
		{"id": "b", "gallery_order": 0},
		{"id": "a", "gallery_order": 1},
		{"id": "c", "image_url": "uc", "gallery_order": 2},
	})
	require.NoError(t, err)

	rows, err := s.Select(ctx, "photo_gallery", table.Query{}.OrderBy(table.Asc("gallery_order")))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(rows))
	assert.Equal(t, "ub", rows[0].String("image_url"), "merge keeps unspecified columns")
}

func TestStore_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	_, err := s.Insert(ctx, "process_data",
		table.Record{"id": "old", "is_active": true},
		table.Record{"id": "older", "is_active": true},
		table.Record{"id": "off", "is_active": false},
	)
	require.NoError(t, err)

	updated, err := s.Update(ctx, "process_data", table.Record{"is_active": false}, table.Eq("is_active", true))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"old", "older"}, ids(updated))

	require.NoError(t, s.Delete(ctx, "process_data", table.Eq("id", "off")))
	assert.Equal(t, 2, s.Len("process_data"))

	_, err = s.Update(ctx, "process_data", table.Record{"is_active": true})
	require.Error(t, err)
	require.Error(t, s.Delete(ctx, "process_data"))
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	rows, err := s.Insert(ctx, "t", table.Record{"id": "a", "title": "x"})
	require.NoError(t, err)
	rows[0]["title"] = "mutated"

	got, err := s.Select(ctx, "t", table.Query{})
	require.NoError(t, err)
	assert.Equal(t, "x", got[0].String("title"))
}
