package term

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/FelixFel1x/Notendashboard/internal/config"
	"github.com/FelixFel1x/Notendashboard/internal/unit"
)

var (
	ErrTermNotFound       = errors.New("term not found")
	ErrNameRequired       = errors.New("term name is required")
	ErrInvalidTargetGrade = errors.New("target grade is outside the grade scale")
	ErrInvalidID          = errors.New("invalid id format")
)

const (
	defaultTargetGrade  = 2.5
	defaultTargetOffset = 180 * 24 * time.Hour
)

// CompletionFlags clears the persisted completion marker of a deleted term.
type CompletionFlags interface {
	Clear(termID uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, dto CreateTermDTO) (*Term, error)
	List(ctx context.Context) ([]Term, error)
	Get(ctx context.Context, id string) (*Term, error)
	Update(ctx context.Context, id string, dto UpdateTermDTO) (*Term, error)
	UpdateTargets(ctx context.Context, id string, dto UpdateTermTargetsDTO) (*Term, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	flags CompletionFlags
}

func NewService(repo Repository, flags CompletionFlags) Service {
	return &service{repo: repo, flags: flags}
}

func (s *service) Create(ctx context.Context, dto CreateTermDTO) (*Term, error) {
	if dto.Name == "" {
		return nil, ErrNameRequired
	}

	t := Term{
		Name:        dto.Name,
		StartDate:   dto.StartDate,
		TargetDate:  time.Now().Add(defaultTargetOffset).Format("2006-01-02"),
		TargetGrade: defaultTargetGrade,
	}
	if dto.TargetDate != nil {
		t.TargetDate = *dto.TargetDate
	}
	if dto.TargetGrade != nil {
		if err := validateTargetGrade(*dto.TargetGrade); err != nil {
			return nil, err
		}
		t.TargetGrade = *dto.TargetGrade
	}

	if err := s.repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) List(ctx context.Context) ([]Term, error) {
	return s.repo.FindAll()
}

func (s *service) Get(ctx context.Context, id string) (*Term, error) {
	termID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.repo.FindByID(termID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTermNotFound
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateTermDTO) (*Term, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		if *dto.Name == "" {
			return nil, ErrNameRequired
		}
		t.Name = *dto.Name
	}
	if dto.StartDate != nil {
		t.StartDate = dto.StartDate
	}

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) UpdateTargets(ctx context.Context, id string, dto UpdateTermTargetsDTO) (*Term, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateTargetGrade(dto.TargetGrade); err != nil {
		return nil, err
	}

	// The raw string is stored as-is; a malformed date is surfaced by the
	// evaluation pass rather than rejected here.
	if _, parseErr := time.Parse("2006-01-02", dto.TargetDate); parseErr != nil {
		config.WithContext(ctx).WithFields(map[string]interface{}{
			"term_id":     t.ID,
			"target_date": dto.TargetDate,
		}).Warn("Storing target date that does not parse as YYYY-MM-DD")
	}

	t.TargetDate = dto.TargetDate
	t.TargetGrade = dto.TargetGrade

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(t.ID); err != nil {
		return err
	}

	if err := s.flags.Clear(t.ID); err != nil {
		config.WithContext(ctx).WithError(err).WithField("term_id", t.ID).
			Error("Failed to clear completion flag for deleted term")
	}
	return nil
}

func validateTargetGrade(grade float64) error {
	if grade < unit.GradeBest || grade > unit.GradeWorst {
		return ErrInvalidTargetGrade
	}
	return nil
}
