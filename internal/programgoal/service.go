package programgoal

import (
	"context"
	"errors"
	"time"

	"github.com/FelixFel1x/Notendashboard/internal/config"
	"github.com/FelixFel1x/Notendashboard/internal/unit"
)

var ErrInvalidTargetGrade = errors.New("target grade is outside the grade scale")

// Defaults used while the student has not set a program goal: three years
// out, aiming for a 2.0.
const (
	DefaultTargetGrade  = 2.0
	defaultTargetOffset = 3 * 365 * 24 * time.Hour
)

type Service interface {
	GetOrDefault(ctx context.Context) (*ProgramGoal, error)
	Update(ctx context.Context, dto UpdateProgramGoalDTO) (*ProgramGoal, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOrDefault(ctx context.Context) (*ProgramGoal, error) {
	goal, err := s.repo.Find()
	if err != nil {
		return nil, err
	}
	if goal != nil {
		return goal, nil
	}

	// Default is answered, not persisted, until the student saves a goal.
	return &ProgramGoal{
		TargetDate:  time.Now().Add(defaultTargetOffset).Format("2006-01-02"),
		TargetGrade: DefaultTargetGrade,
	}, nil
}

func (s *service) Update(ctx context.Context, dto UpdateProgramGoalDTO) (*ProgramGoal, error) {
	if dto.TargetGrade < unit.GradeBest || dto.TargetGrade > unit.GradeWorst {
		return nil, ErrInvalidTargetGrade
	}

	if _, parseErr := time.Parse("2006-01-02", dto.TargetDate); parseErr != nil {
		config.WithContext(ctx).WithField("target_date", dto.TargetDate).
			Warn("Storing program target date that does not parse as YYYY-MM-DD")
	}

	goal, err := s.repo.Find()
	if err != nil {
		return nil, err
	}
	if goal == nil {
		goal = &ProgramGoal{}
	}

	goal.TargetDate = dto.TargetDate
	goal.TargetGrade = dto.TargetGrade

	if err := s.repo.Save(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
