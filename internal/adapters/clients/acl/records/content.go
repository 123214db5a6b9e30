package records

import (
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/domain/table"
)

// Banners maps table "banners".
var Banners = Codec[content.Banner]{
	Table: TableBanners,
	Decode: func(r table.Record) content.Banner {
		return content.Banner{
			ID:        r.ID(),
			Title:     r.String("title"),
			ImageURL:  r.String("image_url"),
			IsActive:  r.Bool(ColumnIsActive),
			CreatedAt: r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(b *content.Banner) table.Record {
		return withID(table.Record{
			"title":        nullable(b.Title),
			"image_url":    b.ImageURL,
			ColumnIsActive: b.IsActive,
		}, b.ID)
	},
}

// StudentProjects maps table "projects".
var StudentProjects = Codec[content.StudentProject]{
	Table: TableProjects,
	Decode: func(r table.Record) content.StudentProject {
		return content.StudentProject{
			ID:             r.ID(),
			Title:          r.String("title"),
			Description:    r.String("description"),
			ThumbnailURL:   r.String("thumbnail_url"),
			VideoURL:       r.String("video_url"),
			CourseCategory: r.String("course_category"),
			IsFeatured:     r.Bool("is_featured"),
			FeaturedOrder:  r.IntPtr("featured_order"),
			CreatedAt:      r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(p *content.StudentProject) table.Record {
		return withID(table.Record{
			"title":           p.Title,
			"description":     nullable(p.Description),
			"thumbnail_url":   nullable(p.ThumbnailURL),
			"video_url":       nullable(p.VideoURL),
			"course_category": nullable(p.CourseCategory),
			"is_featured":     p.IsFeatured,
			"featured_order":  nullableInt(p.FeaturedOrder),
		}, p.ID)
	},
}

// InstitutionalProjects maps table "institutional_projects".
var InstitutionalProjects = Codec[content.InstitutionalProject]{
	Table: TableInstitutionalProjects,
	Decode: func(r table.Record) content.InstitutionalProject {
		return content.InstitutionalProject{
			ID:            r.ID(),
			Title:         r.String("title"),
			Subtitle:      r.String("subtitle"),
			Description:   r.String("description"),
			LinkURL:       r.String("link_url"),
			ImageURL:      r.String("image_url"),
			OrderPosition: r.Int(ColumnOrderPosition),
			CreatedAt:     r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(p *content.InstitutionalProject) table.Record {
		return withID(table.Record{
			"title":             p.Title,
			"subtitle":          nullable(p.Subtitle),
			"description":       nullable(p.Description),
			"link_url":          nullable(p.LinkURL),
			"image_url":         nullable(p.ImageURL),
			ColumnOrderPosition: p.OrderPosition,
		}, p.ID)
	},
}

// Photos maps table "photo_gallery".
var Photos = Codec[content.Photo]{
	Table: TablePhotoGallery,
	Decode: func(r table.Record) content.Photo {
		return content.Photo{
			ID:           r.ID(),
			Title:        r.String("title"),
			ImageURL:     r.String("image_url"),
			GalleryOrder: r.Int(ColumnGalleryOrder),
			CreatedAt:    r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(p *content.Photo) table.Record {
		return withID(table.Record{
			"title":            nullable(p.Title),
			"image_url":        p.ImageURL,
			ColumnGalleryOrder: p.GalleryOrder,
		}, p.ID)
	},
}

// Downloads maps table "downloads".
var Downloads = Codec[content.Download]{
	Table: TableDownloads,
	Decode: func(r table.Record) content.Download {
		return content.Download{
			ID:        r.ID(),
			Title:     r.String("title"),
			Subtitle:  r.String("subtitle"),
			FileURL:   r.String("file_url"),
			FileName:  r.String("file_name"),
			FileSize:  r.Int64("file_size"),
			FileType:  r.String("file_type"),
			IsActive:  r.Bool(ColumnIsActive),
			CreatedAt: r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(d *content.Download) table.Record {
		return withID(table.Record{
			"title":        d.Title,
			"subtitle":     nullable(d.Subtitle),
			"file_url":     d.FileURL,
			"file_name":    nullable(d.FileName),
			"file_size":    d.FileSize,
			"file_type":    nullable(d.FileType),
			ColumnIsActive: d.IsActive,
		}, d.ID)
	},
}

// Bibliographies maps table "reference_bibliographies".
var Bibliographies = Codec[content.Bibliography]{
	Table: TableBibliographies,
	Decode: func(r table.Record) content.Bibliography {
		return content.Bibliography{
			ID:        r.ID(),
			Title:     r.String("title"),
			URL:       r.String("url"),
			Course:    content.Course(r.String(ColumnCourse)),
			CreatedAt: r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(b *content.Bibliography) table.Record {
		return withID(table.Record{
			"title":      b.Title,
			"url":        b.URL,
			ColumnCourse: string(b.Course),
		}, b.ID)
	},
}

// Videos maps table "reference_videos".
var Videos = Codec[content.ReferenceVideo]{
	Table: TableVideos,
	Decode: func(r table.Record) content.ReferenceVideo {
		return content.ReferenceVideo{
			ID:        r.ID(),
			Title:     r.String("title"),
			VideoURL:  r.String("video_url"),
			Course:    content.Course(r.String(ColumnCourse)),
			CreatedAt: r.Time(ColumnCreatedAt),
		}
	},
	Encode: func(v *content.ReferenceVideo) table.Record {
		return withID(table.Record{
			"title":      v.Title,
			"video_url":  v.VideoURL,
			ColumnCourse: string(v.Course),
		}, v.ID)
	},
}

// ProcessData maps table "process_data".
var ProcessData = Codec[content.ProcessData]{
	Table: TableProcessData,
	Decode: func(r table.Record) content.ProcessData {
		return content.ProcessData{
			ID:                   r.ID(),
			InscriptionStartDate: r.String("inscription_start_date"),
			InscriptionEndDate:   r.String("inscription_end_date"),
			Semester:             r.String("semester"),
			ExamDate:             r.String("exam_date"),
			ExamTime:             r.String("exam_time"),
			ExamLocation:         r.String("exam_location"),
			ResultDate:           r.String("result_date"),
			InscriptionLink:      r.String("inscription_link"),
			IsActive:             r.Bool(ColumnIsActive),
			CreatedAt:            r.Time(ColumnCreatedAt),
			UpdatedAt:            r.Time(ColumnUpdatedAt),
		}
	},
	Encode: func(p *content.ProcessData) table.Record {
		return withID(table.Record{
			"inscription_start_date": p.InscriptionStartDate,
			"inscription_end_date":   p.InscriptionEndDate,
			"semester":               p.Semester,
			"exam_date":              p.ExamDate,
			"exam_time":              p.ExamTime,
			"exam_location":          p.ExamLocation,
			"result_date":            p.ResultDate,
			"inscription_link":       p.InscriptionLink,
			ColumnIsActive:           p.IsActive,
			ColumnUpdatedAt:          nullableTime(p.UpdatedAt),
		}, p.ID)
	},
}

// Ordering columns of the manually ordered collections.
const (
	ColumnOrderPosition = "order_position"
	ColumnGalleryOrder  = "gallery_order"
)
