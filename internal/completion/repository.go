package completion

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Get(termID uuid.UUID) (bool, error)
	Set(termID uuid.UUID, completed bool) error
	Clear(termID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(termID uuid.UUID) (bool, error) {
	var flag TermCompletion
	if err := r.db.First(&flag, "term_id = ?", termID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return flag.Completed, nil
}

func (r *repository) Set(termID uuid.UUID, completed bool) error {
	flag := TermCompletion{TermID: termID, Completed: completed}
	if completed {
		now := time.Now()
		flag.CompletedAt = &now
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "term_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
	}).Create(&flag).Error
}

func (r *repository) Clear(termID uuid.UUID) error {
	return r.db.Delete(&TermCompletion{}, "term_id = ?", termID).Error
}
