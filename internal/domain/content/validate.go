package content

import (
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/domain"
)

// msgRequired is the message for mandatory fields that are present but blank.
const msgRequired = "é obrigatório"

// ValidateEntity runs the struct tags through domain.ValidateStruct and also
// rejects whitespace-only values in required string fields, which the
// validator accepts.
func ValidateEntity(v any) error {
	err := domain.ValidateStruct(v)
	blank := blankRequired(v)
	if len(blank) == 0 {
		return err
	}

	verr := (*domain.ValidationError)(nil).Merge(err)
	if verr == nil {
		verr = &domain.ValidationError{Fields: make(map[string]string, len(blank))}
	}
	for _, field := range blank {
		if _, exists := verr.Fields[field]; !exists {
			verr.Fields[field] = msgRequired
		}
	}
	return verr
}

// blankRequired lists the json names of required fields holding only
// whitespace.
func blankRequired(v any) []string {
	var fields []string
	check := func(name, value string) {
		if value != "" && strings.TrimSpace(value) == "" {
			fields = append(fields, name)
		}
	}

	switch e := v.(type) {
	case *StudentProject:
		check("title", e.Title)
	case *InstitutionalProject:
		check("title", e.Title)
	case *Download:
		check("title", e.Title)
	case *Bibliography:
		check("title", e.Title)
	case *ReferenceVideo:
		check("title", e.Title)
	case *ProcessData:
		check("inscription_start_date", e.InscriptionStartDate)
		check("inscription_end_date", e.InscriptionEndDate)
		check("semester", e.Semester)
		check("exam_date", e.ExamDate)
		check("exam_time", e.ExamTime)
		check("exam_location", e.ExamLocation)
		check("result_date", e.ResultDate)
	case *ContactMessage:
		check("name", e.Name)
		check("subject", e.Subject)
		check("message", e.Message)
	}
	return fields
}
