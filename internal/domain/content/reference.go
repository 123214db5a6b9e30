package content

import (
	"time"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

const msgUnknownCourse = "deve ser Animação ou Cine/TV"

// Bibliography is a reading reference recommended to candidates of a course.
type Bibliography struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required,max=300"`
	URL       string    `json:"url" validate:"required,url"`
	Course    Course    `json:"course" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Identifier implements Entity.
func (b Bibliography) Identifier() string { return b.ID }

// Validate checks the bibliography's fields and course.
func (b *Bibliography) Validate() error {
	return validateCourse(ValidateEntity(b), b.Course)
}

// ReferenceVideo is a video recommended to candidates of a course.
type ReferenceVideo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required,max=300"`
	VideoURL  string    `json:"video_url" validate:"required,url"`
	Course    Course    `json:"course" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Identifier implements Entity.
func (v ReferenceVideo) Identifier() string { return v.ID }

// Validate checks the video's fields and course.
func (v *ReferenceVideo) Validate() error {
	return validateCourse(ValidateEntity(v), v.Course)
}

func validateCourse(err error, c Course) error {
	if c == "" || c.IsValid() {
		return err
	}
	verr := (*domain.ValidationError)(nil).Merge(err)
	if verr == nil {
		verr = &domain.ValidationError{Fields: map[string]string{}}
	}
	verr.Fields["course"] = msgUnknownCourse
	return verr
}
