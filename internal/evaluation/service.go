package evaluation

import (
	"context"
	"time"

	"github.com/FelixFel1x/Notendashboard/internal/config"
	"github.com/FelixFel1x/Notendashboard/internal/programgoal"
	"github.com/FelixFel1x/Notendashboard/internal/term"
)

type Service interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
}

type service struct {
	termRepo    term.Repository
	goalService programgoal.Service
	tracker     *Tracker
	now         func() time.Time
}

func NewService(termRepo term.Repository, goalService programgoal.Service, tracker *Tracker) Service {
	return &service{
		termRepo:    termRepo,
		goalService: goalService,
		tracker:     tracker,
		now:         time.Now,
	}
}

// Dashboard runs one full evaluation pass: per-term verdicts, the overall
// average across every unit, the program verdict and any newly observed
// term completions.
func (s *service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	log := config.WithContext(ctx)

	terms, err := s.termRepo.FindAll()
	if err != nil {
		return nil, err
	}

	goal, err := s.goalService.GetOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reports := make([]TermReport, 0, len(terms))
	notifications := make([]Notification, 0)
	var allUnits []Unit

	for _, t := range terms {
		record := toRecord(t)
		average := WeightedAverage(record.Units)

		reports = append(reports, TermReport{
			Term:           t,
			TermAnnotation: EvaluateTerm(record, average, now),
		})
		allUnits = append(allUnits, record.Units...)

		notification, err := s.tracker.Check(ctx, record, average, now)
		if err != nil {
			// A flag-store failure must not take down the whole dashboard;
			// the notification is simply retried on the next evaluation.
			log.WithError(err).WithField("term_id", t.ID).
				Error("Failed to run completion check")
			continue
		}
		if notification != nil {
			log.WithFields(map[string]interface{}{
				"term_id":   notification.TermID,
				"term_name": notification.TermName,
				"average":   notification.Average,
			}).Info("Term completed")
			notifications = append(notifications, *notification)
		}
	}

	overall := WeightedAverage(allUnits)

	return &DashboardResponse{
		Terms:          reports,
		OverallAverage: overall,
		Program: ProgramReport{
			TargetDate:  goal.TargetDate,
			TargetGrade: goal.TargetGrade,
			ProgramAnnotation: EvaluateProgram(ProgramGoal{
				TargetDate:  ParseDate(goal.TargetDate),
				TargetGrade: goal.TargetGrade,
			}, overall, now),
		},
		Notifications: notifications,
	}, nil
}

func toRecord(t term.Term) Term {
	units := make([]Unit, 0, len(t.Units))
	for _, u := range t.Units {
		units = append(units, Unit{
			ID:      u.ID,
			Name:    u.Name,
			Credits: u.Credits,
			Grade:   u.Grade,
		})
	}

	return Term{
		ID:          t.ID,
		Name:        t.Name,
		TargetDate:  ParseDate(t.TargetDate),
		TargetGrade: t.TargetGrade,
		Units:       units,
	}
}
