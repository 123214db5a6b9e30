package content

import "time"

// StudentProject is a portfolio entry produced by students (table "projects").
type StudentProject struct {
	ID             string    `json:"id"`
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description"`
	ThumbnailURL   string    `json:"thumbnail_url" validate:"omitempty,url"`
	VideoURL       string    `json:"video_url" validate:"omitempty,url"`
	CourseCategory string    `json:"course_category"`
	IsFeatured     bool      `json:"is_featured"`
	FeaturedOrder  *int      `json:"featured_order" validate:"omitempty,min=0"`
	CreatedAt      time.Time `json:"created_at"`
}

// Identifier implements Entity.
func (p StudentProject) Identifier() string { return p.ID }

// AttachmentURL implements Attachable.
func (p StudentProject) AttachmentURL() string { return p.ThumbnailURL }

// Attachment implements Attachable.
func (p StudentProject) Attachment() StoredFile { return StoredFile{URL: p.ThumbnailURL} }

// Attach implements Attachable.
func (p *StudentProject) Attach(f StoredFile) { p.ThumbnailURL = f.URL }

// Validate checks the project's fields.
func (p *StudentProject) Validate() error {
	return ValidateEntity(p)
}
