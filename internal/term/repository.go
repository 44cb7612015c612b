package term

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(t *Term) error
	FindAll() ([]Term, error)
	FindByID(id uuid.UUID) (*Term, error)
	Exists(id uuid.UUID) (bool, error)
	Update(t *Term) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(t *Term) error {
	return r.db.Create(t).Error
}

func (r *repository) FindAll() ([]Term, error) {
	var terms []Term
	if err := r.db.
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at ASC").
		Find(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Term, error) {
	var t Term
	if err := r.db.
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&Term{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(t *Term) error {
	return r.db.Save(t).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Term{}, "id = ?", id).Error
}
