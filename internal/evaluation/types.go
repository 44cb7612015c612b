package evaluation

import (
	"time"

	"github.com/google/uuid"
)

// The engine works on plain records built at the boundary, not on stored
// entities. Dates arrive parsed exactly once: a raw value that does not
// parse is carried as an explicit marker so the engine can report it
// instead of assuming upstream validation was perfect.

type Unit struct {
	ID      uuid.UUID
	Name    string
	Credits int
	Grade   *float64
}

type Term struct {
	ID          uuid.UUID
	Name        string
	TargetDate  Date
	TargetGrade float64
	Units       []Unit
}

type ProgramGoal struct {
	TargetDate  Date
	TargetGrade float64
}

// Date is a target date in one of three states: absent (zero value), valid,
// or malformed (a raw value was present but did not parse).
type Date struct {
	Time      time.Time
	Valid     bool
	Malformed bool
}

func ParseDate(s string) Date {
	if s == "" {
		return Date{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{Malformed: true}
	}
	return Date{Time: t, Valid: true}
}
