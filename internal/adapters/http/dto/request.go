package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
)

const (
	msgRequired  = "é obrigatório"
	msgNotBool   = "deve ser true ou false"
	msgNotNumber = "deve ser um número inteiro"
)

// BannerRequest is the body of a banner create or update. Multipart forms
// carry the same fields plus the image under "file".
type BannerRequest struct {
	Title string `json:"title"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active,omitempty"`
}

// BindForm reads the request from multipart form values.
func (r *BannerRequest) BindForm(form url.Values) error {
	fields := make(map[string]string)
	r.Title = form.Get("title")
	r.IsActive = formBool(form, "is_active", fields)
	return fieldErrors(fields)
}

// ToEntity builds the banner with the given id ("" for a create).
func (r *BannerRequest) ToEntity(id string) *content.Banner {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &content.Banner{ID: id, Title: strings.TrimSpace(r.Title), IsActive: active}
}

// StudentProjectRequest is the body of a student project create or update.
type StudentProjectRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	VideoURL       string `json:"video_url"`
	CourseCategory string `json:"course_category"`
	IsFeatured     bool   `json:"is_featured"`
	FeaturedOrder  *int   `json:"featured_order,omitempty"`
}

// BindForm reads the request from multipart form values.
func (r *StudentProjectRequest) BindForm(form url.Values) error {
	fields := make(map[string]string)
	r.Title = form.Get("title")
	r.Description = form.Get("description")
	r.VideoURL = form.Get("video_url")
	r.CourseCategory = form.Get("course_category")
	if featured := formBool(form, "is_featured", fields); featured != nil {
		r.IsFeatured = *featured
	}
	r.FeaturedOrder = formInt(form, "featured_order", fields)
	return fieldErrors(fields)
}

// ToEntity builds the project with the given id ("" for a create). A
// project that is not featured has no featured order.
func (r *StudentProjectRequest) ToEntity(id string) *content.StudentProject {
	p := &content.StudentProject{
		ID:             id,
		Title:          strings.TrimSpace(r.Title),
		Description:    r.Description,
		VideoURL:       strings.TrimSpace(r.VideoURL),
		CourseCategory: r.CourseCategory,
		IsFeatured:     r.IsFeatured,
	}
	if r.IsFeatured {
		p.FeaturedOrder = r.FeaturedOrder
	}
	return p
}

// InstitutionalProjectRequest is the body of an institutional project
// create or update. The position is managed by the order endpoint.
type InstitutionalProjectRequest struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url"`
}

// BindForm reads the request from multipart form values.
func (r *InstitutionalProjectRequest) BindForm(form url.Values) error {
	r.Title = form.Get("title")
	r.Subtitle = form.Get("subtitle")
	r.Description = form.Get("description")
	r.LinkURL = form.Get("link_url")
	return nil
}

// ToEntity builds the project with the given id ("" for a create).
func (r *InstitutionalProjectRequest) ToEntity(id string) *content.InstitutionalProject {
	return &content.InstitutionalProject{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		Subtitle:    r.Subtitle,
		Description: r.Description,
		LinkURL:     strings.TrimSpace(r.LinkURL),
	}
}

// PhotoRequest is the body of a gallery photo create or update.
type PhotoRequest struct {
	Title string `json:"title"`
}

// BindForm reads the request from multipart form values.
func (r *PhotoRequest) BindForm(form url.Values) error {
	r.Title = form.Get("title")
	return nil
}

// ToEntity builds the photo with the given id ("" for a create).
func (r *PhotoRequest) ToEntity(id string) *content.Photo {
	return &content.Photo{ID: id, Title: strings.TrimSpace(r.Title)}
}

// DownloadRequest is the body of a download create or update.
type DownloadRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// BindForm reads the request from multipart form values.
func (r *DownloadRequest) BindForm(form url.Values) error {
	r.Title = form.Get("title")
	r.Subtitle = form.Get("subtitle")
	return nil
}

// ToEntity builds the download with the given id ("" for a create).
func (r *DownloadRequest) ToEntity(id string) *content.Download {
	return &content.Download{ID: id, Title: strings.TrimSpace(r.Title), Subtitle: r.Subtitle}
}

// BibliographyRequest is the JSON body of a reference bibliography.
type BibliographyRequest struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Course string `json:"course"`
}

// ToEntity builds the bibliography with the given id ("" for a create).
func (r *BibliographyRequest) ToEntity(id string) *content.Bibliography {
	return &content.Bibliography{
		ID:     id,
		Title:  strings.TrimSpace(r.Title),
		URL:    strings.TrimSpace(r.URL),
		Course: content.Course(r.Course),
	}
}

// VideoRequest is the JSON body of a reference video.
type VideoRequest struct {
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
	Course   string `json:"course"`
}

// ToEntity builds the video with the given id ("" for a create).
func (r *VideoRequest) ToEntity(id string) *content.ReferenceVideo {
	return &content.ReferenceVideo{
		ID:       id,
		Title:    strings.TrimSpace(r.Title),
		VideoURL: strings.TrimSpace(r.VideoURL),
		Course:   content.Course(r.Course),
	}
}

// ProcessDataRequest is the JSON body that publishes new process data.
type ProcessDataRequest struct {
	InscriptionStartDate string `json:"inscription_start_date"`
	InscriptionEndDate   string `json:"inscription_end_date"`
	Semester             string `json:"semester"`
	ExamDate             string `json:"exam_date"`
	ExamTime             string `json:"exam_time"`
	ExamLocation         string `json:"exam_location"`
	ResultDate           string `json:"result_date"`
	InscriptionLink      string `json:"inscription_link"`
}

// ToEntity builds the process data to publish.
func (r *ProcessDataRequest) ToEntity() *content.ProcessData {
	return &content.ProcessData{
		InscriptionStartDate: r.InscriptionStartDate,
		InscriptionEndDate:   r.InscriptionEndDate,
		Semester:             r.Semester,
		ExamDate:             r.ExamDate,
		ExamTime:             r.ExamTime,
		ExamLocation:         r.ExamLocation,
		ResultDate:           r.ResultDate,
		InscriptionLink:      strings.TrimSpace(r.InscriptionLink),
	}
}

// ContactRequest is the JSON body of the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ToEntity builds the contact message.
func (r *ContactRequest) ToEntity() *content.ContactMessage {
	return &content.ContactMessage{
		Name:    r.Name,
		Email:   strings.TrimSpace(r.Email),
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// OrderRequest is the JSON body of PUT .../order: every id of the
// collection in the desired order.
type OrderRequest struct {
	IDs []string `json:"ids"`
}

// Validate checks that ids is present and has no blank entries.
// Returns a *domain.ValidationError if any checks fail.
func (r *OrderRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.IDs) == 0 {
		fields["ids"] = msgRequired
	}
	for i, id := range r.IDs {
		if strings.TrimSpace(id) == "" {
			fields[fmt.Sprintf("ids[%d]", i)] = msgRequired
		}
	}

	return fieldErrors(fields)
}

// formBool parses an optional boolean form field. Checkbox values "on" and
// "1" count as true.
func formBool(form url.Values, key string, fields map[string]string) *bool {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return nil
	}
	if raw == "on" {
		v := true
		return &v
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		fields[key] = msgNotBool
		return nil
	}
	return &v
}

// formInt parses an optional integer form field.
func formInt(form url.Values, key string, fields map[string]string) *int {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[key] = msgNotNumber
		return nil
	}
	return &v
}

func fieldErrors(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
