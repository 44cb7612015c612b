package unit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/FelixFel1x/Notendashboard/internal/config"
)

var (
	ErrUnitNotFound    = errors.New("unit not found")
	ErrTermNotFound    = errors.New("term not found")
	ErrNameRequired    = errors.New("unit name is required")
	ErrInvalidCredits  = errors.New("credits must be greater than zero")
	ErrGradeOutOfScale = errors.New("grade is outside the grade scale")
	ErrInvalidID       = errors.New("invalid id format")
)

// TermSource reports whether a parent term exists. Declared here so the unit
// package does not depend on the term package, which embeds Unit.
type TermSource interface {
	Exists(id uuid.UUID) (bool, error)
}

type Service interface {
	Create(ctx context.Context, termID string, dto CreateUnitDTO) (*Unit, error)
	ListByTerm(ctx context.Context, termID string) ([]Unit, error)
	Update(ctx context.Context, id string, dto UpdateUnitDTO) (*Unit, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	terms TermSource
}

func NewService(repo Repository, terms TermSource) Service {
	return &service{repo: repo, terms: terms}
}

func (s *service) Create(ctx context.Context, termID string, dto CreateUnitDTO) (*Unit, error) {
	parentID, err := s.resolveTerm(ctx, termID)
	if err != nil {
		return nil, err
	}

	if dto.Name == "" {
		return nil, ErrNameRequired
	}
	if dto.Credits <= 0 {
		return nil, ErrInvalidCredits
	}
	if err := validateGrade(dto.Grade); err != nil {
		return nil, err
	}

	u := Unit{
		TermID:      parentID,
		Name:        dto.Name,
		Credits:     dto.Credits,
		Grade:       dto.Grade,
		CompletedOn: dto.CompletedOn,
	}

	if err := s.repo.Create(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) ListByTerm(ctx context.Context, termID string) ([]Unit, error) {
	parentID, err := s.resolveTerm(ctx, termID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAllByTermID(parentID)
}

func (s *service) Update(ctx context.Context, id string, dto UpdateUnitDTO) (*Unit, error) {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	u, err := s.repo.FindByID(unitID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnitNotFound
	}

	if dto.Name != nil {
		if *dto.Name == "" {
			return nil, ErrNameRequired
		}
		u.Name = *dto.Name
	}
	if dto.Credits != nil {
		if *dto.Credits <= 0 {
			return nil, ErrInvalidCredits
		}
		u.Credits = *dto.Credits
	}
	if dto.ClearGrade {
		u.Grade = nil
	} else if dto.Grade != nil {
		if err := validateGrade(dto.Grade); err != nil {
			return nil, err
		}
		u.Grade = dto.Grade
	}
	if dto.CompletedOn != nil {
		u.CompletedOn = dto.CompletedOn
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	u, err := s.repo.FindByID(unitID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUnitNotFound
	}

	return s.repo.Delete(unitID)
}

func (s *service) resolveTerm(ctx context.Context, termID string) (uuid.UUID, error) {
	parentID, err := uuid.Parse(termID)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}

	exists, err := s.terms.Exists(parentID)
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		config.WithContext(ctx).WithField("term_id", termID).Warn("Term not found for unit operation")
		return uuid.Nil, ErrTermNotFound
	}
	return parentID, nil
}

func validateGrade(grade *float64) error {
	if grade == nil {
		return nil
	}
	if *grade < GradeBest || *grade > GradeWorst {
		return ErrGradeOutOfScale
	}
	return nil
}
