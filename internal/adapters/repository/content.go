package repository

import (
	"github.com/MiguelCav2025/sitecav/internal/adapters/clients/acl/records"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Repositories groups the typed repositories of every content table.
type Repositories struct {
	Banners               ports.Repository[content.Banner]
	StudentProjects       ports.Repository[content.StudentProject]
	InstitutionalProjects ports.Repository[content.InstitutionalProject]
	Photos                ports.Repository[content.Photo]
	Downloads             ports.Repository[content.Download]
	Bibliographies        ports.Repository[content.Bibliography]
	Videos                ports.Repository[content.ReferenceVideo]
	ProcessData           ports.Repository[content.ProcessData]
}

// NewRepositories builds every content repository on store.
func NewRepositories(store ports.TableStore) *Repositories {
	return &Repositories{
		Banners:               New[content.Banner](store, records.Banners),
		StudentProjects:       New[content.StudentProject](store, records.StudentProjects),
		InstitutionalProjects: New[content.InstitutionalProject](store, records.InstitutionalProjects),
		Photos:                New[content.Photo](store, records.Photos),
		Downloads:             New[content.Download](store, records.Downloads),
		Bibliographies:        New[content.Bibliography](store, records.Bibliographies),
		Videos:                New[content.ReferenceVideo](store, records.Videos),
		ProcessData:           New[content.ProcessData](store, records.ProcessData),
	}
}
