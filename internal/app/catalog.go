package app

import (
	"context"
	"log/slog"

	appctx "github.com/MiguelCav2025/sitecav/internal/app/context"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var (
	_ ports.CatalogService[content.Banner]       = (*Catalog[content.Banner, *content.Banner])(nil)
	_ ports.CatalogService[content.Bibliography] = (*Catalog[content.Bibliography, *content.Bibliography])(nil)
)

// Storable is the pointer form of a catalog entity.
type Storable[T any] interface {
	*T
	content.Entity
	Validate() error
}

// CatalogOption configures a Catalog.
type CatalogOption[T any] func(*catalogOptions[T])

type catalogOptions[T any] struct {
	media    *content.MediaLocation
	attacher *MediaAttacher
	defaults func(*T)
}

// WithMedia stores the entity's files in loc through attacher. Entities of
// a catalog with media must implement content.Attachable.
func WithMedia[T any](loc content.MediaLocation, attacher *MediaAttacher) CatalogOption[T] {
	return func(o *catalogOptions[T]) {
		o.media = &loc
		o.attacher = attacher
	}
}

// WithDefaults runs fn on every entity before it is validated and saved.
func WithDefaults[T any](fn func(*T)) CatalogOption[T] {
	return func(o *catalogOptions[T]) { o.defaults = fn }
}

// Catalog implements ports.CatalogService for one entity type on top of its
// repository. Saving an entity with a file runs the upload and the row write
// as one staged operation.
type Catalog[T any, PT Storable[T]] struct {
	repo      ports.Repository[T]
	listQuery table.Query
	media     *content.MediaLocation
	attacher  *MediaAttacher
	defaults  func(*T)
	logger    *slog.Logger
}

// NewCatalog creates a catalog listing entities in listQuery's order.
func NewCatalog[T any, PT Storable[T]](repo ports.Repository[T], listQuery table.Query, logger *slog.Logger, opts ...CatalogOption[T]) *Catalog[T, PT] {
	var o catalogOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Catalog[T, PT]{
		repo:      repo,
		listQuery: listQuery,
		media:     o.media,
		attacher:  o.attacher,
		defaults:  o.defaults,
		logger:    discardIfNil(logger),
	}
}

// List returns the whole collection in admin order.
func (c *Catalog[T, PT]) List(ctx context.Context) ([]T, error) {
	items, err := c.repo.List(ctx, c.listQuery)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to list entities",
			slog.String("operation", "Catalog.List"),
			slog.String("resource", c.repo.Resource()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return items, nil
}

// Get returns one entity.
func (c *Catalog[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	entity, err := c.repo.Get(ctx, id)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch entity",
			slog.String("operation", "Catalog.Get"),
			slog.String("resource", c.repo.Resource()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return entity, nil
}

// Save creates entity when it has no id and updates it otherwise. With a
// file, the file is uploaded first and entity points at it; if the row write
// then fails, the upload is removed. Without a file, an update keeps the
// stored file reference. A replaced file is removed after the write
// succeeds.
func (c *Catalog[T, PT]) Save(ctx context.Context, entity *T, file *ports.FileUpload) (*T, error) {
	id := PT(entity).Identifier()
	isNew := id == ""
	c.logger.InfoContext(ctx, "saving entity",
		slog.String("resource", c.repo.Resource()),
		slog.String("id", id),
		slog.Bool("with_file", file != nil),
	)

	if c.defaults != nil {
		c.defaults(entity)
	}

	var previous content.StoredFile
	attachable, hasMedia := c.attachable(entity)
	if hasMedia && !isNew {
		existing, err := c.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		previous = any(PT(existing)).(content.Attachable).Attachment()
		if file == nil {
			attachable.Attach(previous)
		}
	}

	if err := PT(entity).Validate(); err != nil {
		return nil, err
	}
	if hasMedia && isNew && file == nil && c.media.RequiredOnCreate {
		return nil, domain.NewValidationError("file", "é obrigatório")
	}

	rc := appctx.New(ctx)
	if hasMedia && file != nil {
		if err := c.attacher.StageUpload(rc, *c.media, attachable, file); err != nil {
			return nil, err
		}
	}

	var saved *T
	op := domain.OpUpdate
	if isNew {
		op = domain.OpInsert
	}
	err := rc.AddAction(appctx.Step{
		Name: op + " " + c.repo.Resource(),
		Do: func(ctx context.Context) error {
			var err error
			if isNew {
				saved, err = c.repo.Insert(ctx, entity)
			} else {
				saved, err = c.repo.Update(ctx, entity)
			}
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		c.logger.ErrorContext(ctx, "failed to save entity",
			slog.String("operation", "Catalog.Save"),
			slog.String("resource", c.repo.Resource()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if file != nil && previous.URL != "" && previous.URL != attachable.Attachment().URL {
		c.removeReplaced(rc, previous.URL)
	}
	return saved, nil
}

// Delete removes the entity's stored file, then its row. A failed file
// removal leaves the row in place.
func (c *Catalog[T, PT]) Delete(ctx context.Context, id string) error {
	c.logger.InfoContext(ctx, "deleting entity",
		slog.String("resource", c.repo.Resource()),
		slog.String("id", id),
	)

	if c.media != nil {
		entity, err := c.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := c.removeFile(ctx, *entity); err != nil {
			c.logger.ErrorContext(ctx, "failed to remove stored file",
				slog.String("operation", "Catalog.Delete"),
				slog.String("resource", c.repo.Resource()),
				slog.String("id", id),
				slog.Any("error", err),
			)
			return &domain.WriteError{Resource: c.repo.Resource(), Op: domain.OpRemoveFile, Err: err}
		}
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete entity",
			slog.String("operation", "Catalog.Delete"),
			slog.String("resource", c.repo.Resource()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// removeFile deletes the file entity references, if it has one.
func (c *Catalog[T, PT]) removeFile(ctx context.Context, entity T) error {
	attachable, ok := c.attachable(&entity)
	if !ok {
		return nil
	}
	return c.attacher.RemoveFile(ctx, *c.media, attachable.AttachmentURL())
}

// removeReplaced deletes a file that an update no longer references.
// Failures are logged only; the row already points at the new file.
func (c *Catalog[T, PT]) removeReplaced(rc *appctx.RequestContext, url string) {
	err := rc.Execute(appctx.Step{
		Name: "remove replaced file",
		Do: func(ctx context.Context) error {
			return c.attacher.RemoveFile(ctx, *c.media, url)
		},
	})
	if err != nil {
		c.logger.WarnContext(rc, "failed to remove replaced file",
			slog.String("resource", c.repo.Resource()),
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}

func (c *Catalog[T, PT]) attachable(entity *T) (content.Attachable, bool) {
	if c.media == nil || c.attacher == nil {
		return nil, false
	}
	a, ok := any(PT(entity)).(content.Attachable)
	return a, ok
}
