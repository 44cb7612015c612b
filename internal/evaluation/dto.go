package evaluation

import (
	"github.com/FelixFel1x/Notendashboard/internal/term"
)

// TermReport is a stored term together with its derived annotation.
type TermReport struct {
	term.Term
	TermAnnotation
}

type ProgramReport struct {
	TargetDate  string  `json:"target_date"`
	TargetGrade float64 `json:"target_grade"`
	ProgramAnnotation
}

type DashboardResponse struct {
	Terms          []TermReport   `json:"terms"`
	OverallAverage *float64       `json:"overall_average"`
	Program        ProgramReport  `json:"program"`
	Notifications  []Notification `json:"notifications"`
}
