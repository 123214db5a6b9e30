package content

import "time"

// Banner is a home-page carousel image.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"max=200"`
	ImageURL  string    `json:"image_url" validate:"omitempty,url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Identifier implements Entity.
func (b Banner) Identifier() string { return b.ID }

// AttachmentURL implements Attachable.
func (b Banner) AttachmentURL() string { return b.ImageURL }

// Attachment implements Attachable.
func (b Banner) Attachment() StoredFile { return StoredFile{URL: b.ImageURL} }

// Attach implements Attachable. A banner without a title takes the uploaded
// file's name.
func (b *Banner) Attach(f StoredFile) {
	b.ImageURL = f.URL
	if b.Title == "" {
		b.Title = f.Name
	}
}

// Validate checks the banner's fields.
func (b *Banner) Validate() error {
	return ValidateEntity(b)
}
