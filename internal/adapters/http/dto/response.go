// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// ListResponse wraps a list of entities in HTTP responses.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// ToListResponse wraps items. A nil slice is sent as an empty list.
func ToListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// SectionResponse is one block of an aggregate page. Error carries the
// inline message shown in place of a block that failed to load.
type SectionResponse[T any] struct {
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

// ToSectionResponse converts a page section.
func ToSectionResponse[T any](s ports.Section[T]) SectionResponse[T] {
	resp := SectionResponse[T]{Items: s.Items}
	if resp.Items == nil {
		resp.Items = []T{}
	}
	if s.Err != nil {
		resp.Error = sectionMessage
	}
	return resp
}

// sectionMessage replaces backend error details on public pages.
const sectionMessage = "Não foi possível carregar este conteúdo."

// HomeResponse is the body of GET /home.
type HomeResponse struct {
	Banners          SectionResponse[content.Banner]         `json:"banners"`
	FeaturedProjects SectionResponse[content.StudentProject] `json:"featured_projects"`
	Gallery          SectionResponse[content.Photo]          `json:"gallery"`
}

// ToHomeResponse converts the home page.
func ToHomeResponse(p ports.HomePage) HomeResponse {
	return HomeResponse{
		Banners:          ToSectionResponse(p.Banners),
		FeaturedProjects: ToSectionResponse(p.FeaturedProjects),
		Gallery:          ToSectionResponse(p.Gallery),
	}
}

// ProcessResponse is the active process data. Fallback is true when the
// built-in default is shown.
type ProcessResponse struct {
	content.ProcessData
	Fallback bool `json:"fallback"`
}

// ToProcessResponse converts the active process.
func ToProcessResponse(p ports.ActiveProcess) ProcessResponse {
	return ProcessResponse{ProcessData: p.Data, Fallback: p.Fallback}
}

// CourseReferencesResponse holds the references of one course.
type CourseReferencesResponse struct {
	Course         string                                  `json:"course"`
	Videos         SectionResponse[content.ReferenceVideo] `json:"videos"`
	Bibliographies SectionResponse[content.Bibliography]   `json:"bibliographies"`
}

// CandidateAreaResponse is the body of GET /candidate-area.
type CandidateAreaResponse struct {
	Process ProcessResponse            `json:"process"`
	Courses []CourseReferencesResponse `json:"courses"`
}

// ToCandidateAreaResponse converts the candidate area page.
func ToCandidateAreaResponse(a ports.CandidateArea) CandidateAreaResponse {
	courses := make([]CourseReferencesResponse, len(a.Courses))
	for i, c := range a.Courses {
		courses[i] = CourseReferencesResponse{
			Course:         string(c.Course),
			Videos:         ToSectionResponse(c.Videos),
			Bibliographies: ToSectionResponse(c.Bibliographies),
		}
	}
	return CandidateAreaResponse{
		Process: ToProcessResponse(a.Process),
		Courses: courses,
	}
}
