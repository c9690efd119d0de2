package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

type ParishRepository interface {
	GetByID(id uuid.UUID) (*models.Parish, error)
	Create(parish *models.Parish) error
}

type parishRepository struct {
	db *gorm.DB
}

func NewParishRepository(db *gorm.DB) ParishRepository {
	return &parishRepository{db: db}
}

func (r *parishRepository) GetByID(id uuid.UUID) (*models.Parish, error) {
	var parish models.Parish
	if err := r.db.First(&parish, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &parish, nil
}

func (r *parishRepository) Create(parish *models.Parish) error {
	return r.db.Create(parish).Error
}
