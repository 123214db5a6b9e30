// Package records translates between table rows and domain entities. Each
// entity has one Codec naming its table and the columns it writes.
package records

import (
	"time"

	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

// Table names.
const (
	TableBanners               = "banners"
	TableProjects              = "projects"
	TableInstitutionalProjects = "institutional_projects"
	TablePhotoGallery          = "photo_gallery"
	TableDownloads             = "downloads"
	TableBibliographies        = "reference_bibliographies"
	TableVideos                = "reference_videos"
	TableProcessData           = "process_data"
)

// Shared column names.
const (
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnIsActive  = "is_active"
	ColumnCourse    = "course"
)

// Codec converts one entity type to and from table records.
type Codec[T any] struct {
	Table string
	// Decode builds an entity from a stored row.
	Decode func(r table.Record) T
	// Encode returns the writable columns of e. The id column is included
	// only when e has one; created_at is never written.
	Encode func(e *T) table.Record
}

// DecodeAll decodes every row.
func (c Codec[T]) DecodeAll(rows []table.Record) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = c.Decode(r)
	}
	return out
}

// withID adds the id column when id is set.
func withID(r table.Record, id string) table.Record {
	if id != "" {
		r[table.ColumnID] = id
	}
	return r
}

// nullable stores empty optional text as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableInt stores a nil pointer as NULL.
func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// nullableTime stores the zero time as NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}
