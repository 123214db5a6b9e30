package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/app/reorder"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
)

func seedGallery(t *testing.T, f *fixture, titles ...string) []content.Photo {
	t.Helper()
	out := make([]content.Photo, 0, len(titles))
	for _, title := range titles {
		p, err := f.svc.Photos.Save(context.Background(), &content.Photo{Title: title}, upload(title+".jpg", "image/jpeg", title))
		require.NoError(t, err)
		out = append(out, *p)
	}
	return out
}

func photoTitles(items []content.Photo) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func TestOrderedCatalog_SaveAppends(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	photos := seedGallery(t, f, "A", "B", "C")

	for i, p := range photos {
		assert.Equal(t, i, p.GalleryOrder)
	}
}

func TestOrderedCatalog_UpdateKeepsPosition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	photos := seedGallery(t, f, "A", "B")

	edit := content.Photo{ID: photos[1].ID, Title: "B2", GalleryOrder: 0}
	updated, err := f.svc.Photos.Save(ctx, &edit, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.GalleryOrder)
	assert.Equal(t, photos[1].ImageURL, updated.ImageURL)
}

func TestOrderedCatalog_Reorder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	photos := seedGallery(t, f, "A", "B", "C")

	got, err := f.svc.Photos.Reorder(ctx, []string{photos[1].ID, photos[2].ID, photos[0].ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, photoTitles(got))

	list, err := f.svc.Photos.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, photoTitles(list))
	for i, p := range list {
		assert.Equal(t, i, p.GalleryOrder)
	}
}

func TestOrderedCatalog_ReorderRejectsNonPermutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	photos := seedGallery(t, f, "A", "B")

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "missing item", ids: []string{photos[0].ID}},
		{name: "unknown id", ids: []string{photos[0].ID, "other"}},
		{name: "duplicate", ids: []string{photos[0].ID, photos[0].ID}},
		{name: "extra item", ids: []string{photos[1].ID, photos[0].ID, "other"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Photos.Reorder(ctx, tt.ids)
			assert.ErrorIs(t, err, domain.ErrConflict)
		})
	}

	list, err := f.svc.Photos.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, photoTitles(list))
}

func TestOrderedCatalog_DeleteRemovesFileAndRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	photos := seedGallery(t, f, "A", "B")

	require.NoError(t, f.svc.Photos.Delete(ctx, photos[0].ID))

	assert.Equal(t, 1, f.storage.Len())
	list, err := f.svc.Photos.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, photoTitles(list))
}

func TestOrderedCatalog_CreateAfterDeleteAppendsLast(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	photos := seedGallery(t, f, "A", "B", "C")
	require.NoError(t, f.svc.Photos.Delete(ctx, photos[0].ID))

	created := seedGallery(t, f, "D", "E")
	assert.Equal(t, 3, created[0].GalleryOrder)
	assert.Equal(t, 4, created[1].GalleryOrder)

	list, err := f.svc.Photos.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D", "E"}, photoTitles(list))
	positions := make(map[int]bool, len(list))
	for _, p := range list {
		assert.False(t, positions[p.GalleryOrder], "position %d used twice", p.GalleryOrder)
		positions[p.GalleryOrder] = true
	}
}

func TestOrderedCatalog_ReorderRenumbersGaps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	photos := seedGallery(t, f, "A", "B", "C")
	require.NoError(t, f.svc.Photos.Delete(ctx, photos[1].ID))

	got, err := f.svc.Photos.Reorder(ctx, []string{photos[0].ID, photos[2].ID})
	require.NoError(t, err)

	assert.Equal(t, 0, got[0].GalleryOrder)
	assert.Equal(t, 1, got[1].GalleryOrder)
}

func TestOrderedCatalog_Collection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	seedGallery(t, f, "A", "B")

	coll := f.svc.Photos.Collection()
	assert.Equal(t, reorder.Unloaded, coll.State())
	require.NoError(t, coll.Load(ctx))
	assert.Equal(t, 2, coll.Len())
}
