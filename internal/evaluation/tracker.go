package evaluation

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/FelixFel1x/Notendashboard/internal/config"
)

// A term still counts as completed up to this long after its target date
// has passed.
const completionTolerance = 30 * 24 * time.Hour

// FlagStore persists the per-term completion marker. Keys are stable across
// evaluations for the same term identity.
type FlagStore interface {
	Get(termID uuid.UUID) (bool, error)
	Set(termID uuid.UUID, completed bool) error
}

// Notification is raised exactly once per term, the first time the term is
// observed to be completed.
type Notification struct {
	TermID   uuid.UUID `json:"term_id"`
	TermName string    `json:"term_name"`
	Average  float64   `json:"average"`
}

type Tracker struct {
	flags FlagStore
}

func NewTracker(flags FlagStore) *Tracker {
	return &Tracker{flags: flags}
}

// Check reports whether the term has just transitioned to completed: the
// target date plus tolerance has passed, or every unit carries a grade.
// The stored flag is terminal, so a term that once notified never notifies
// again, regardless of later edits to its units.
func (t *Tracker) Check(ctx context.Context, term Term, average *float64, now time.Time) (*Notification, error) {
	if average == nil {
		return nil, nil
	}

	done, err := t.flags.Get(term.ID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}

	if term.TargetDate.Malformed {
		config.WithContext(ctx).WithFields(map[string]interface{}{
			"term_id":   term.ID,
			"term_name": term.Name,
		}).Warn("Invalid target date format, skipping completion check")
		return nil, nil
	}

	completed := false
	if term.TargetDate.Valid && now.After(term.TargetDate.Time.Add(completionTolerance)) {
		completed = true
	} else if allGraded(term.Units) {
		completed = true
	}
	if !completed {
		return nil, nil
	}

	if err := t.flags.Set(term.ID, true); err != nil {
		return nil, err
	}

	return &Notification{
		TermID:   term.ID,
		TermName: term.Name,
		Average:  math.Round(*average*100) / 100,
	}, nil
}

func allGraded(units []Unit) bool {
	for _, u := range units {
		if u.Grade == nil {
			return false
		}
	}
	return true
}
