package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/repository"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstore"
	"github.com/MiguelCav2025/sitecav/internal/app"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

func seedPhotos(t *testing.T, titles ...string) *repository.Repositories {
	t.Helper()
	repos := repository.NewRepositories(memstore.New())
	for i, title := range titles {
		_, err := repos.Photos.Insert(context.Background(), &content.Photo{
			Title:        title,
			ImageURL:     "https://cdn.test/" + title + ".jpg",
			GalleryOrder: i,
		})
		require.NoError(t, err)
	}
	return repos
}

func storedTitles(t *testing.T, repos *repository.Repositories) []string {
	t.Helper()
	items, err := repos.Photos.List(context.Background(), table.Query{}.OrderBy(table.Asc(app.ColumnGalleryOrder)))
	require.NoError(t, err)
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func runSession(t *testing.T, repos *repository.Repositories, input string) string {
	t.Helper()
	var out bytes.Buffer
	s, err := orderSession("gallery", repos, strings.NewReader(input), &out, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestSession_MoveAndSave(t *testing.T) {
	t.Parallel()
	repos := seedPhotos(t, "A", "B", "C")

	out := runSession(t, repos, "move 2 0\nstatus\nsave\nstatus\nquit\n")

	assert.Equal(t, []string{"C", "A", "B"}, storedTitles(t, repos))
	assert.Contains(t, out, "gallery: dirty, unsaved changes")
	assert.Contains(t, out, "order saved")
	assert.Contains(t, out, "gallery: clean, no unsaved changes")
}

func TestSession_QuitWithoutSaving(t *testing.T) {
	t.Parallel()
	repos := seedPhotos(t, "A", "B")

	out := runSession(t, repos, "move 0 1\nquit\nquit\n")

	assert.Equal(t, []string{"A", "B"}, storedTitles(t, repos))
	assert.Contains(t, out, "quit again to discard")
}

func TestSession_QuitWarningResetsAfterOtherCommand(t *testing.T) {
	t.Parallel()
	repos := seedPhotos(t, "A", "B")

	out := runSession(t, repos, "move 0 1\nquit\nstatus\nquit\nsave\nquit\n")

	assert.Equal(t, []string{"B", "A"}, storedTitles(t, repos))
	assert.Equal(t, 2, strings.Count(out, "quit again to discard"))
}

func TestSession_Reload(t *testing.T) {
	t.Parallel()
	repos := seedPhotos(t, "A", "B")

	out := runSession(t, repos, "move 1 0\nreload\nsave\n")

	assert.Equal(t, []string{"A", "B"}, storedTitles(t, repos))
	assert.Contains(t, out, "unsaved changes discarded")
	assert.Contains(t, out, "nothing to save")
}

func TestSession_SaveRenumbersGaps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := repository.NewRepositories(memstore.New())
	for _, p := range []content.Photo{
		{Title: "A", ImageURL: "https://cdn.test/A.jpg", GalleryOrder: 1},
		{Title: "B", ImageURL: "https://cdn.test/B.jpg", GalleryOrder: 4},
		{Title: "C", ImageURL: "https://cdn.test/C.jpg", GalleryOrder: 7},
	} {
		_, err := repos.Photos.Insert(ctx, &p)
		require.NoError(t, err)
	}

	out := runSession(t, repos, "status\nsave\nstatus\n")

	assert.Contains(t, out, "stored positions have gaps")
	assert.Contains(t, out, "order saved")
	assert.NotContains(t, out, "nothing to save")
	assert.Contains(t, out, "gallery: clean, no unsaved changes\n")

	items, err := repos.Photos.List(ctx, table.Query{}.OrderBy(table.Asc(app.ColumnGalleryOrder)))
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, p := range items {
		assert.Equal(t, i, p.GalleryOrder, "position of %s", p.Title)
	}
	assert.Equal(t, []string{"A", "B", "C"}, storedTitles(t, repos))
}

func TestSession_CommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unknown command", input: "shuffle\n", want: `error: unknown command "shuffle"`},
		{name: "missing arguments", input: "move 1\n", want: "error: usage: move <from> <to>"},
		{name: "non numeric index", input: "move a 1\n", want: `error: invalid index "a"`},
		{name: "index out of range", input: "move 0 5\n", want: "error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repos := seedPhotos(t, "A", "B")

			out := runSession(t, repos, tt.input)

			assert.Contains(t, out, tt.want)
			assert.Equal(t, []string{"A", "B"}, storedTitles(t, repos))
		})
	}
}

func TestSession_ListShowsIndexAndLabel(t *testing.T) {
	t.Parallel()
	repos := seedPhotos(t, "A")

	out := runSession(t, repos, "")

	assert.Regexp(t, `(?m)^\s+0  A  \(.+\)$`, out)
}

func TestSession_EmptyCollection(t *testing.T) {
	t.Parallel()
	repos := repository.NewRepositories(memstore.New())

	out := runSession(t, repos, "list\n")

	assert.Contains(t, out, "gallery is empty")
}

func TestOrderSession_UnknownCollection(t *testing.T) {
	t.Parallel()

	_, err := orderSession("banners", repository.NewRepositories(memstore.New()), strings.NewReader(""), &bytes.Buffer{}, slog.New(slog.DiscardHandler))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "institutional-projects or gallery")
}

func TestOrderSession_InstitutionalProjects(t *testing.T) {
	t.Parallel()
	repos := repository.NewRepositories(memstore.New())
	for i, title := range []string{"Curta", "Documentário"} {
		_, err := repos.InstitutionalProjects.Insert(context.Background(), &content.InstitutionalProject{
			Title:         title,
			OrderPosition: i,
		})
		require.NoError(t, err)
	}

	var out bytes.Buffer
	s, err := orderSession("institutional-projects", repos, strings.NewReader("move 1 0\nsave\n"), &out, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	items, err := repos.InstitutionalProjects.List(context.Background(), table.Query{}.OrderBy(table.Asc(app.ColumnOrderPosition)))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Documentário", items[0].Title)
	assert.Equal(t, 0, items[0].OrderPosition)
	assert.Equal(t, 1, items[1].OrderPosition)
}

func TestPhotoLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Set", photoLabel(content.Photo{Title: "Set", ImageURL: "u"}))
	assert.Equal(t, "u", photoLabel(content.Photo{ImageURL: "u"}))
}
