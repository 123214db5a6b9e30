package content

import "time"

// ProcessData describes the current selection process shown in the
// candidate area. Exactly one row is active at a time; publishing a new one
// deactivates the previous.
type ProcessData struct {
	ID                   string    `json:"id"`
	InscriptionStartDate string    `json:"inscription_start_date" validate:"required"`
	InscriptionEndDate   string    `json:"inscription_end_date" validate:"required"`
	Semester             string    `json:"semester" validate:"required"`
	ExamDate             string    `json:"exam_date" validate:"required"`
	ExamTime             string    `json:"exam_time" validate:"required"`
	ExamLocation         string    `json:"exam_location" validate:"required"`
	ResultDate           string    `json:"result_date" validate:"required"`
	InscriptionLink      string    `json:"inscription_link" validate:"required,url"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Identifier implements Entity.
func (p ProcessData) Identifier() string { return p.ID }

// Validate requires every field and a well-formed inscription link.
func (p *ProcessData) Validate() error {
	return ValidateEntity(p)
}

// DefaultProcessData is shown when no active process has been published or
// the stored one cannot be read.
func DefaultProcessData() ProcessData {
	return ProcessData{
		InscriptionStartDate: "19 de Maio de 2025",
		InscriptionEndDate:   "29 de Maio de 2025",
		Semester:             "2º. Semestre de 2025",
		ExamDate:             "05/07/2025 – Sábado",
		ExamTime:             "09h00 as 12h00",
		ExamLocation:         "Teatro Lauro Gomes",
		ResultDate:           "15/07/2025",
		InscriptionLink:      "https://docs.google.com/forms/d/e/1FAIpQLSd6XwvynaGJdXNBBhEArUk4PeylH3s2UXVyVm0nNRe7MVzW2Q/viewform",
		IsActive:             true,
	}
}
