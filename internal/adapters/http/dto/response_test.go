package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

func TestToListResponse(t *testing.T) {
	t.Parallel()

	empty := dto.ToListResponse[content.Photo](nil)
	if empty.Items == nil || empty.Count != 0 {
		t.Errorf("empty = %+v, want non-nil empty items", empty)
	}

	got := dto.ToListResponse([]content.Photo{{ID: "a"}, {ID: "b"}})
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
}

func TestToSectionResponse_HidesErrorDetails(t *testing.T) {
	t.Parallel()

	got := dto.ToSectionResponse(ports.Section[content.Banner]{Err: errors.New("pq: password authentication failed")})

	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("Items = %v, want empty", got.Items)
	}
	if got.Error == "" {
		t.Fatal("Error is empty")
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if msg, _ := decoded["error"].(string); msg == "" || msg == "pq: password authentication failed" {
		t.Errorf("error = %q, want generic message", msg)
	}
}

func TestToProcessResponse_FlattensData(t *testing.T) {
	t.Parallel()

	resp := dto.ToProcessResponse(ports.ActiveProcess{Data: content.DefaultProcessData(), Fallback: true})

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["semester"] != "2º. Semestre de 2025" {
		t.Errorf("semester = %v", decoded["semester"])
	}
	if decoded["fallback"] != true {
		t.Errorf("fallback = %v, want true", decoded["fallback"])
	}
}

func TestToCandidateAreaResponse(t *testing.T) {
	t.Parallel()

	area := ports.CandidateArea{
		Process: ports.ActiveProcess{Data: content.ProcessData{Semester: "1º"}},
		Courses: []ports.CourseReferences{
			{
				Course: content.CourseAnimation,
				Videos: ports.Section[content.ReferenceVideo]{Items: []content.ReferenceVideo{{Title: "v"}}},
			},
			{
				Course:         content.CourseCineTV,
				Bibliographies: ports.Section[content.Bibliography]{Err: errors.New("boom")},
			},
		},
	}

	got := dto.ToCandidateAreaResponse(area)

	if len(got.Courses) != 2 {
		t.Fatalf("len(Courses) = %d, want 2", len(got.Courses))
	}
	if got.Courses[0].Course != "Animação" || len(got.Courses[0].Videos.Items) != 1 {
		t.Errorf("Courses[0] = %+v", got.Courses[0])
	}
	if got.Courses[1].Bibliographies.Error == "" {
		t.Error("Courses[1].Bibliographies.Error is empty")
	}
	if got.Process.Semester != "1º" || got.Process.Fallback {
		t.Errorf("Process = %+v", got.Process)
	}
}

func TestToHomeResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToHomeResponse(ports.HomePage{
		Banners: ports.Section[content.Banner]{Items: []content.Banner{{Title: "a"}}},
	})

	if len(got.Banners.Items) != 1 {
		t.Errorf("Banners = %+v", got.Banners)
	}
	if got.Gallery.Items == nil {
		t.Error("Gallery.Items is nil, want empty")
	}
}
