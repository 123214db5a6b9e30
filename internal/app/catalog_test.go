package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstorage"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/mocks"
)

func TestCatalog_CreateWithFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	banner, err := f.svc.Banners.Save(ctx, &content.Banner{IsActive: true}, upload("Abertura.png", "image/png", "png-bytes"))
	require.NoError(t, err)

	assert.NotEmpty(t, banner.ID)
	assert.Equal(t, "Abertura.png", banner.Title, "title defaults to the file name")
	p := objectPath(t, f.storage, "site-assets", banner.ImageURL)
	assert.Regexp(t, `^banners/\d+-[0-9a-f]{8}-abertura\.png$`, p)
	assert.True(t, f.storage.Exists("site-assets", p))

	stored, err := f.repos.Banners.Get(ctx, banner.ID)
	require.NoError(t, err)
	assert.Equal(t, banner.ImageURL, stored.ImageURL)
}

func TestCatalog_CreateRequiresFile(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	_, err := f.svc.Photos.Save(context.Background(), &content.Photo{Title: "sem arquivo"}, nil)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "file")
	assert.Equal(t, 0, f.storage.Len())
}

func TestCatalog_CreateWithoutRequiredFile(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	project, err := f.svc.StudentProjects.Save(context.Background(), &content.StudentProject{Title: "Curta"}, nil)
	require.NoError(t, err)
	assert.Empty(t, project.ThumbnailURL)
}

func TestCatalog_UpdateWithoutFileKeepsReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	created, err := f.svc.Downloads.Save(ctx, &content.Download{Title: "Edital"}, upload("edital.pdf", "application/pdf", "%PDF"))
	require.NoError(t, err)

	edit := &content.Download{ID: created.ID, Title: "Edital 2025", Subtitle: "2º semestre"}
	updated, err := f.svc.Downloads.Save(ctx, edit, nil)
	require.NoError(t, err)

	assert.Equal(t, "Edital 2025", updated.Title)
	assert.Equal(t, "2º semestre", updated.Subtitle)
	assert.Equal(t, created.FileURL, updated.FileURL)
	assert.Equal(t, created.FileName, updated.FileName)
	assert.Equal(t, created.FileSize, updated.FileSize)
	assert.Equal(t, created.FileType, updated.FileType)
	assert.True(t, updated.IsActive)
	assert.Equal(t, 1, f.storage.Len())
}

func TestCatalog_UpdateWithFileReplacesReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	created, err := f.svc.InstitutionalProjects.Save(ctx,
		&content.InstitutionalProject{Title: "Cineclube", Description: "Sessões"},
		upload("a.jpg", "image/jpeg", "a"))
	require.NoError(t, err)
	oldPath := objectPath(t, f.storage, "project_images", created.ImageURL)

	edit := *created
	updated, err := f.svc.InstitutionalProjects.Save(ctx, &edit, upload("b.jpg", "image/jpeg", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.OrderPosition, updated.OrderPosition)

	assert.False(t, f.storage.Exists("project_images", oldPath), "replaced file is removed")
	assert.True(t, f.storage.Exists("project_images", objectPath(t, f.storage, "project_images", updated.ImageURL)))
}

func TestCatalog_UploadFailureWritesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	storage := mocks.NewMockObjectStorage(t)
	storage.EXPECT().Upload(mock.Anything, "gallery-photos", mock.Anything, mock.Anything, "image/jpeg").
		Return("", domain.ErrUnavailable)
	repo := mocks.NewMockRepository[content.Photo](t)
	repo.EXPECT().Resource().Return("photo_gallery").Maybe()

	c := NewCatalog[content.Photo, *content.Photo](repo, table.Query{}, discardLogger(),
		WithMedia[content.Photo](content.PhotoMedia, NewMediaAttacher(storage, 0, nil, nil)))

	_, err := c.Save(ctx, &content.Photo{Title: "x"}, upload("x.jpg", "image/jpeg", "x"))

	var uploadErr *domain.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "gallery-photos", uploadErr.Bucket)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCatalog_WriteFailureRemovesUpload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	storage := memstorage.New(filesURL)
	repo := mocks.NewMockRepository[content.Photo](t)
	repo.EXPECT().Resource().Return("photo_gallery").Maybe()
	repo.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(nil, &domain.WriteError{Resource: "photo_gallery", Op: domain.OpInsert, Err: domain.ErrUnavailable})

	c := NewCatalog[content.Photo, *content.Photo](repo, table.Query{}, discardLogger(),
		WithMedia[content.Photo](content.PhotoMedia, NewMediaAttacher(storage, 0, nil, nil)))

	_, err := c.Save(ctx, &content.Photo{Title: "x"}, upload("x.jpg", "image/jpeg", "x"))

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, domain.OpInsert, writeErr.Op)
	assert.Equal(t, 0, storage.Len(), "no orphan upload")
}

func TestCatalog_RejectsDisallowedFileType(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	_, err := f.svc.Banners.Save(context.Background(), &content.Banner{}, upload("doc.pdf", "application/pdf", "%PDF"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, f.storage.Len())
}

func TestCatalog_ValidationRunsBeforeUpload(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	_, err := f.svc.Downloads.Save(context.Background(), &content.Download{Title: "   "}, upload("a.pdf", "application/pdf", "x"))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Equal(t, 0, f.storage.Len())
}

func TestCatalog_DeleteRemovesFileThenRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	created, err := f.svc.Downloads.Save(ctx, &content.Download{Title: "Manual"}, upload("manual.pdf", "application/pdf", "x"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Downloads.Delete(ctx, created.ID))

	assert.Equal(t, 0, f.storage.Len())
	_, err = f.svc.Downloads.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_DeleteFileFailureKeepsRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	url := filesURL + "/downloads/manual.pdf"

	storage := mocks.NewMockObjectStorage(t)
	storage.EXPECT().ObjectPath("downloads", url).Return("manual.pdf", true)
	storage.EXPECT().Remove(mock.Anything, "downloads", "manual.pdf").Return(errors.New("storage down"))
	repo := mocks.NewMockRepository[content.Download](t)
	repo.EXPECT().Resource().Return("downloads").Maybe()
	repo.EXPECT().Get(mock.Anything, "d1").Return(&content.Download{ID: "d1", FileURL: url}, nil)

	c := NewCatalog[content.Download, *content.Download](repo, table.Query{}, discardLogger(),
		WithMedia[content.Download](content.DownloadMedia, NewMediaAttacher(storage, 0, nil, nil)))

	err := c.Delete(ctx, "d1")

	var writeErr *domain.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, domain.OpRemoveFile, writeErr.Op)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalog_WithoutMedia(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	_, err := f.svc.Bibliographies.Save(ctx, &content.Bibliography{
		Title: "A linguagem do cinema", URL: "https://biblio.test/1", Course: "Teatro",
	}, nil)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "course")

	saved, err := f.svc.Bibliographies.Save(ctx, &content.Bibliography{
		Title: "A linguagem do cinema", URL: "https://biblio.test/1", Course: content.CourseCineTV,
	}, nil)
	require.NoError(t, err)

	list, err := f.svc.Bibliographies.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)

	require.NoError(t, f.svc.Bibliographies.Delete(ctx, saved.ID))
}

func TestCatalog_UpdateMissingEntity(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	_, err := f.svc.Banners.Save(context.Background(), &content.Banner{ID: "missing"}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
