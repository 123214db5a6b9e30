// Package content defines the entities managed by the site: banners, student
// projects, institutional projects, gallery photos, downloads, candidate-area
// references and selection-process data.
package content

// Entity is implemented by every stored entity.
type Entity interface {
	// Identifier returns the row ID; empty for entities not yet stored.
	Identifier() string
}

// Orderable is an entity with an integer position that determines display
// order within its collection. Positions are dense and zero-based after a
// committed reorder.
type Orderable interface {
	Entity
	Position() int
	SetPosition(p int)
}

// Course identifies one of the two courses offered by the center.
type Course string

// Known courses. The values are stored verbatim in the course columns.
const (
	CourseAnimation Course = "Animação"
	CourseCineTV    Course = "Cine/TV"
)

// Courses returns the known courses in display order.
func Courses() []Course {
	return []Course{CourseAnimation, CourseCineTV}
}

// IsValid reports whether c is a known course.
func (c Course) IsValid() bool {
	return c == CourseAnimation || c == CourseCineTV
}
