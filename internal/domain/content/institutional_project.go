package content

import "time"

// InstitutionalProject is a project run by the center itself, shown on the
// projects page in manual order.
type InstitutionalProject struct {
	ID            string    `json:"id"`
	Title         string    `json:"title" validate:"required,max=200"`
	Subtitle      string    `json:"subtitle" validate:"max=300"`
	Description   string    `json:"description"`
	LinkURL       string    `json:"link_url" validate:"omitempty,url"`
	ImageURL      string    `json:"image_url" validate:"omitempty,url"`
	OrderPosition int       `json:"order_position" validate:"min=0"`
	CreatedAt     time.Time `json:"created_at"`
}

// Identifier implements Entity.
func (p InstitutionalProject) Identifier() string { return p.ID }

// Position implements Orderable.
func (p InstitutionalProject) Position() int { return p.OrderPosition }

// SetPosition implements Orderable.
func (p *InstitutionalProject) SetPosition(pos int) { p.OrderPosition = pos }

// AttachmentURL implements Attachable.
func (p InstitutionalProject) AttachmentURL() string { return p.ImageURL }

// Attachment implements Attachable.
func (p InstitutionalProject) Attachment() StoredFile { return StoredFile{URL: p.ImageURL} }

// Attach implements Attachable.
func (p *InstitutionalProject) Attach(f StoredFile) { p.ImageURL = f.URL }

// Validate checks the project's fields.
func (p *InstitutionalProject) Validate() error {
	return ValidateEntity(p)
}
