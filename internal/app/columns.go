package app

// Columns the services filter and sort on.
const (
	colCreatedAt     = "created_at"
	colUpdatedAt     = "updated_at"
	colIsActive      = "is_active"
	colIsFeatured    = "is_featured"
	colFeaturedOrder = "featured_order"
	colCourse        = "course"

	// ColumnOrderPosition orders institutional projects.
	ColumnOrderPosition = "order_position"
	// ColumnGalleryOrder orders gallery photos.
	ColumnGalleryOrder = "gallery_order"
)
