package content

import "strings"

// StoredFile describes a file already uploaded to object storage.
type StoredFile struct {
	URL         string
	Name        string
	ContentType string
	Size        int64
}

// Attachable is implemented by entities that reference a stored file.
type Attachable interface {
	Entity
	// AttachmentURL returns the public URL of the referenced file, or "".
	AttachmentURL() string
	// Attachment returns the stored file the entity references, as far as
	// the entity records it. URL is empty when there is none.
	Attachment() StoredFile
	// Attach points the entity at a stored file.
	Attach(f StoredFile)
}

// MediaLocation is where an entity type keeps its files and which files it
// accepts.
type MediaLocation struct {
	Bucket string
	// Prefix is prepended to generated object names (e.g. "banners/").
	Prefix string
	// Accept lists allowed MIME types; a trailing "/*" matches a family.
	// Empty accepts anything.
	Accept []string
	// RequiredOnCreate rejects creates that carry no file.
	RequiredOnCreate bool
}

var imageTypes = []string{"image/*"}

// Storage locations per entity type.
var (
	BannerMedia = MediaLocation{
		Bucket: "site-assets", Prefix: "banners/", Accept: imageTypes, RequiredOnCreate: true,
	}
	StudentProjectMedia = MediaLocation{
		Bucket: "site-assets", Prefix: "projects/", Accept: imageTypes,
	}
	InstitutionalProjectMedia = MediaLocation{
		Bucket: "project_images", Accept: imageTypes,
	}
	PhotoMedia = MediaLocation{
		Bucket: "gallery-photos", Accept: imageTypes, RequiredOnCreate: true,
	}
	DownloadMedia = MediaLocation{
		Bucket: "downloads", RequiredOnCreate: true,
	}
)

// Accepts reports whether a file with the given MIME type may be stored here.
func (m MediaLocation) Accepts(contentType string) bool {
	if len(m.Accept) == 0 {
		return true
	}
	base := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, allowed := range m.Accept {
		if family, ok := strings.CutSuffix(allowed, "/*"); ok {
			if strings.HasPrefix(base, family+"/") {
				return true
			}
			continue
		}
		if base == allowed {
			return true
		}
	}
	return false
}
