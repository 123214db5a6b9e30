package ports

import (
	"context"
	"io"

	"github.com/MiguelCav2025/sitecav/internal/domain/content"
)

// FileUpload is a file submitted alongside a form. Body is read once.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CatalogService manages one admin collection. Implemented by app.Catalog
// and app.OrderedCatalog; called by the admin handlers.
type CatalogService[T any] interface {
	// List returns the collection in its admin order.
	List(ctx context.Context) ([]T, error)

	// Get returns a single entity.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*T, error)

	// Save creates the entity when it has no id and updates it otherwise.
	// When file is non-nil it is uploaded first and the entity is pointed at
	// it; an upload failure returns *domain.UploadError and writes nothing.
	// Without a file an update keeps the stored reference.
	Save(ctx context.Context, entity *T, file *FileUpload) (*T, error)

	// Delete removes the entity's stored file, if any, then its row.
	Delete(ctx context.Context, id string) error
}

// OrderedCatalogService is a CatalogService whose items have a manual order.
type OrderedCatalogService[T any] interface {
	CatalogService[T]

	// Reorder persists a new order given as the complete list of ids.
	// Returns domain.ErrConflict if ids is not a permutation of the stored
	// collection.
	Reorder(ctx context.Context, ids []string) ([]T, error)
}

// ActiveProcess is the process data to display and whether it is the
// built-in fallback.
type ActiveProcess struct {
	Data     content.ProcessData
	Fallback bool
}

// ProcessService manages the selection-process data.
type ProcessService interface {
	// Active returns the latest active process data, or the default when
	// there is none or it cannot be read.
	Active(ctx context.Context) ActiveProcess

	// Publish replaces the active process data.
	// Returns domain.ErrValidation when a field is missing or malformed.
	Publish(ctx context.Context, data *content.ProcessData) (*content.ProcessData, error)
}

// Section is one independently fetched block of a page. Err is set when the
// block could not be loaded; Items is then empty.
type Section[T any] struct {
	Items []T
	Err   error
}

// HomePage aggregates the blocks of the home page.
type HomePage struct {
	Banners          Section[content.Banner]
	FeaturedProjects Section[content.StudentProject]
	Gallery          Section[content.Photo]
}

// CourseReferences holds the reference material for one course.
type CourseReferences struct {
	Course         content.Course
	Videos         Section[content.ReferenceVideo]
	Bibliographies Section[content.Bibliography]
}

// CandidateArea aggregates the candidate-area page.
type CandidateArea struct {
	Process ActiveProcess
	Courses []CourseReferences
}

// PageService serves the public pages.
type PageService interface {
	// Home returns the home page blocks, fetched concurrently.
	Home(ctx context.Context) HomePage

	// CandidateArea returns the candidate-area page, fetched concurrently.
	CandidateArea(ctx context.Context) CandidateArea

	// ActiveBanners returns banners flagged active.
	ActiveBanners(ctx context.Context) ([]content.Banner, error)

	// Portfolio returns student projects, newest first.
	Portfolio(ctx context.Context) ([]content.StudentProject, error)

	// PortfolioProject returns one student project.
	// Returns domain.ErrNotFound if it does not exist.
	PortfolioProject(ctx context.Context, id string) (*content.StudentProject, error)

	// InstitutionalProjects returns institutional projects in manual order.
	InstitutionalProjects(ctx context.Context) ([]content.InstitutionalProject, error)

	// Gallery returns gallery photos in manual order, at most limit when
	// limit > 0.
	Gallery(ctx context.Context, limit int) ([]content.Photo, error)

	// ActiveDownloads returns downloads flagged active, newest first.
	ActiveDownloads(ctx context.Context) ([]content.Download, error)
}

// ContactService forwards contact-form messages.
type ContactService interface {
	// Send validates and delivers the message.
	// Returns domain.ErrValidation for invalid input and domain.ErrUnavailable
	// when mail delivery is disabled.
	Send(ctx context.Context, msg *content.ContactMessage) error
}
