package programgoal

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Find() (*ProgramGoal, error)
	Save(goal *ProgramGoal) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Find() (*ProgramGoal, error) {
	var goal ProgramGoal
	if err := r.db.First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Save(goal *ProgramGoal) error {
	return r.db.Save(goal).Error
}
