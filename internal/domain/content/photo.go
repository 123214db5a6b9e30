package content

import "time"

// Photo is an image of the home-page gallery.
type Photo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"max=200"`
	ImageURL     string    `json:"image_url" validate:"omitempty,url"`
	GalleryOrder int       `json:"gallery_order" validate:"min=0"`
	CreatedAt    time.Time `json:"created_at"`
}

// HomeGalleryLimit is how many photos the home page shows.
const HomeGalleryLimit = 12

// Identifier implements Entity.
func (p Photo) Identifier() string { return p.ID }

// Position implements Orderable.
func (p Photo) Position() int { return p.GalleryOrder }

// SetPosition implements Orderable.
func (p *Photo) SetPosition(pos int) { p.GalleryOrder = pos }

// AttachmentURL implements Attachable.
func (p Photo) AttachmentURL() string { return p.ImageURL }

// Attachment implements Attachable.
func (p Photo) Attachment() StoredFile { return StoredFile{URL: p.ImageURL} }

// Attach implements Attachable.
func (p *Photo) Attach(f StoredFile) { p.ImageURL = f.URL }

// Validate checks the photo's fields.
func (p *Photo) Validate() error {
	return ValidateEntity(p)
}
