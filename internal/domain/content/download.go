package content

import "time"

// Download is a downloadable document (edital, manual, form) listed in the
// downloads area.
type Download struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required,max=200"`
	Subtitle  string    `json:"subtitle" validate:"max=300"`
	FileURL   string    `json:"file_url" validate:"omitempty,url"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size" validate:"min=0"`
	FileType  string    `json:"file_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Identifier implements Entity.
func (d Download) Identifier() string { return d.ID }

// AttachmentURL implements Attachable.
func (d Download) AttachmentURL() string { return d.FileURL }

// Attachment implements Attachable.
func (d Download) Attachment() StoredFile {
	return StoredFile{URL: d.FileURL, Name: d.FileName, ContentType: d.FileType, Size: d.FileSize}
}

// Attach implements Attachable. The original file name, size and type are
// kept alongside the URL.
func (d *Download) Attach(f StoredFile) {
	d.FileURL = f.URL
	d.FileName = f.Name
	d.FileSize = f.Size
	d.FileType = f.ContentType
}

// Validate checks the download's fields.
func (d *Download) Validate() error {
	return ValidateEntity(d)
}
