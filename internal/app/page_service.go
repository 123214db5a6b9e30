package app

import (
	"context"
	"log/slog"

	"github.com/MiguelCav2025/sitecav/internal/app/fanout"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.PageService = (*PageService)(nil)

// pageWorkers caps the section fetches one page runs at once.
const pageWorkers = 4

// PageSources are the repositories the public pages read from.
type PageSources struct {
	Banners               ports.Repository[content.Banner]
	StudentProjects       ports.Repository[content.StudentProject]
	InstitutionalProjects ports.Repository[content.InstitutionalProject]
	Photos                ports.Repository[content.Photo]
	Downloads             ports.Repository[content.Download]
	Bibliographies        ports.Repository[content.Bibliography]
	Videos                ports.Repository[content.ReferenceVideo]
}

// PageService implements ports.PageService. Aggregate pages fetch their
// sections concurrently; a failing section is reported on the section and
// does not fail the page.
type PageService struct {
	src     PageSources
	process ports.ProcessService
	logger  *slog.Logger
}

// NewPageService creates a PageService.
func NewPageService(src PageSources, process ports.ProcessService, logger *slog.Logger) *PageService {
	return &PageService{src: src, process: process, logger: discardIfNil(logger)}
}

// Home returns the active banners, the featured student projects and the
// first gallery photos.
func (s *PageService) Home(ctx context.Context) ports.HomePage {
	var page ports.HomePage
	errs := fanout.All(ctx, pageWorkers,
		func(ctx context.Context) error {
			page.Banners = section(s.ActiveBanners(ctx))
			return page.Banners.Err
		},
		func(ctx context.Context) error {
			page.FeaturedProjects = section(s.src.StudentProjects.List(ctx, featuredProjectsQuery()))
			return page.FeaturedProjects.Err
		},
		func(ctx context.Context) error {
			page.Gallery = section(s.Gallery(ctx, content.HomeGalleryLimit))
			return page.Gallery.Err
		},
	)
	settle(&page.Banners, errs[0])
	settle(&page.FeaturedProjects, errs[1])
	settle(&page.Gallery, errs[2])
	s.logSections(ctx, "PageService.Home", errs...)
	return page
}

// CandidateArea returns the reference videos and bibliographies of every
// course and the active process data.
func (s *PageService) CandidateArea(ctx context.Context) ports.CandidateArea {
	courses := content.Courses()
	area := ports.CandidateArea{Courses: make([]ports.CourseReferences, len(courses))}

	tasks := []fanout.Task{
		func(ctx context.Context) error {
			area.Process = s.process.Active(ctx)
			return nil
		},
	}
	for i, course := range courses {
		refs := &area.Courses[i]
		refs.Course = course
		tasks = append(tasks,
			func(ctx context.Context) error {
				refs.Videos = section(s.src.Videos.List(ctx, courseQuery(course)))
				return refs.Videos.Err
			},
			func(ctx context.Context) error {
				refs.Bibliographies = section(s.src.Bibliographies.List(ctx, courseQuery(course)))
				return refs.Bibliographies.Err
			},
		)
	}

	errs := fanout.All(ctx, pageWorkers, tasks...)
	if errs[0] != nil {
		area.Process = ports.ActiveProcess{Data: content.DefaultProcessData(), Fallback: true}
	}
	for i := range area.Courses {
		settle(&area.Courses[i].Videos, errs[1+2*i])
		settle(&area.Courses[i].Bibliographies, errs[2+2*i])
	}
	s.logSections(ctx, "PageService.CandidateArea", errs...)
	return area
}

// ActiveBanners returns banners flagged active.
func (s *PageService) ActiveBanners(ctx context.Context) ([]content.Banner, error) {
	return s.src.Banners.List(ctx, table.Query{}.
		Where(table.Eq(colIsActive, true)).
		OrderBy(table.Asc(colCreatedAt)))
}

// Portfolio returns student projects, newest first.
func (s *PageService) Portfolio(ctx context.Context) ([]content.StudentProject, error) {
	return s.src.StudentProjects.List(ctx, table.Query{}.OrderBy(table.Desc(colCreatedAt)))
}

// PortfolioProject returns one student project.
func (s *PageService) PortfolioProject(ctx context.Context, id string) (*content.StudentProject, error) {
	return s.src.StudentProjects.Get(ctx, id)
}

// InstitutionalProjects returns institutional projects in manual order.
func (s *PageService) InstitutionalProjects(ctx context.Context) ([]content.InstitutionalProject, error) {
	return s.src.InstitutionalProjects.List(ctx, table.Query{}.
		OrderBy(table.Asc(ColumnOrderPosition), table.Asc(table.ColumnID)))
}

// Gallery returns gallery photos in manual order, at most limit of them
// when limit > 0. Photos without a position come last.
func (s *PageService) Gallery(ctx context.Context, limit int) ([]content.Photo, error) {
	q := table.Query{}.OrderBy(table.Asc(ColumnGalleryOrder).NullsLast(), table.Asc(table.ColumnID))
	if limit > 0 {
		q = q.WithLimit(limit)
	}
	return s.src.Photos.List(ctx, q)
}

// ActiveDownloads returns downloads flagged active, newest first.
func (s *PageService) ActiveDownloads(ctx context.Context) ([]content.Download, error) {
	return s.src.Downloads.List(ctx, table.Query{}.
		Where(table.Eq(colIsActive, true)).
		OrderBy(table.Desc(colCreatedAt)))
}

func (s *PageService) logSections(ctx context.Context, operation string, errs ...error) {
	for _, err := range errs {
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load page section",
				slog.String("operation", operation),
				slog.Any("error", err),
			)
		}
	}
}

// settle marks a section whose task never ran, such as one still waiting
// for a worker when the request was canceled, with the task's error.
func settle[T any](sec *ports.Section[T], err error) {
	if err != nil && sec.Err == nil {
		*sec = ports.Section[T]{Items: []T{}, Err: err}
	}
}

func section[T any](items []T, err error) ports.Section[T] {
	if err != nil {
		return ports.Section[T]{Items: []T{}, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return ports.Section[T]{Items: items}
}

func featuredProjectsQuery() table.Query {
	return table.Query{}.
		Where(table.Eq(colIsFeatured, true)).
		OrderBy(table.Asc(colFeaturedOrder).NullsLast(), table.Desc(colCreatedAt))
}

func courseQuery(course content.Course) table.Query {
	return table.Query{}.
		Where(table.Eq(colCourse, string(course))).
		OrderBy(table.Asc(colCreatedAt))
}
