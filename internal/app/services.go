package app

import (
	"log/slog"

	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Services holds every application service of the site.
type Services struct {
	Banners               *Catalog[content.Banner, *content.Banner]
	StudentProjects       *Catalog[content.StudentProject, *content.StudentProject]
	InstitutionalProjects *OrderedCatalog[content.InstitutionalProject, *content.InstitutionalProject]
	Photos                *OrderedCatalog[content.Photo, *content.Photo]
	Downloads             *Catalog[content.Download, *content.Download]
	Bibliographies        *Catalog[content.Bibliography, *content.Bibliography]
	Videos                *Catalog[content.ReferenceVideo, *content.ReferenceVideo]
	Process               *ProcessService
	Pages                 *PageService
	Contact               *ContactService
}

// Dependencies are the ports the services are built on.
type Dependencies struct {
	Sources       PageSources
	ProcessData   ports.Repository[content.ProcessData]
	Storage       ports.ObjectStorage
	Mailer        ports.Mailer
	MaxUploadSize int64
	// Metrics may be nil.
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// NewServices builds the services with the admin ordering of each
// collection.
func NewServices(deps Dependencies) *Services {
	media := NewMediaAttacher(deps.Storage, deps.MaxUploadSize, deps.Metrics, deps.Logger)
	src := deps.Sources
	process := NewProcessService(deps.ProcessData, deps.Logger)

	return &Services{
		Banners: NewCatalog[content.Banner, *content.Banner](
			src.Banners,
			table.Query{}.OrderBy(table.Asc(colCreatedAt)),
			deps.Logger,
			WithMedia[content.Banner](content.BannerMedia, media),
		),
		StudentProjects: NewCatalog[content.StudentProject, *content.StudentProject](
			src.StudentProjects,
			table.Query{}.OrderBy(
				table.Desc(colIsFeatured),
				table.Asc(colFeaturedOrder).NullsLast(),
				table.Desc(colCreatedAt),
			),
			deps.Logger,
			WithMedia[content.StudentProject](content.StudentProjectMedia, media),
		),
		InstitutionalProjects: NewOrderedCatalog[content.InstitutionalProject, *content.InstitutionalProject](
			src.InstitutionalProjects,
			ColumnOrderPosition,
			deps.Metrics,
			deps.Logger,
			WithMedia[content.InstitutionalProject](content.InstitutionalProjectMedia, media),
		),
		Photos: NewOrderedCatalog[content.Photo, *content.Photo](
			src.Photos,
			ColumnGalleryOrder,
			deps.Metrics,
			deps.Logger,
			WithMedia[content.Photo](content.PhotoMedia, media),
		),
		Downloads: NewCatalog[content.Download, *content.Download](
			src.Downloads,
			table.Query{}.OrderBy(table.Desc(colCreatedAt)),
			deps.Logger,
			WithMedia[content.Download](content.DownloadMedia, media),
			WithDefaults(func(d *content.Download) { d.IsActive = true }),
		),
		Bibliographies: NewCatalog[content.Bibliography, *content.Bibliography](
			src.Bibliographies,
			table.Query{}.OrderBy(table.Desc(colCreatedAt)),
			deps.Logger,
		),
		Videos: NewCatalog[content.ReferenceVideo, *content.ReferenceVideo](
			src.Videos,
			table.Query{}.OrderBy(table.Desc(colCreatedAt)),
			deps.Logger,
		),
		Process: process,
		Pages:   NewPageService(src, process, deps.Logger),
		Contact: NewContactService(deps.Mailer, deps.Logger),
	}
}
