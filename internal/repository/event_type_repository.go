package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

type EventTypeRepository interface {
	Create(eventType *models.EventType) error
	GetByID(id uuid.UUID) (*models.EventType, error)
	GetAll(parishID uuid.UUID) ([]models.EventType, error)
}

type eventTypeRepository struct {
	db *gorm.DB
}

func NewEventTypeRepository(db *gorm.DB) EventTypeRepository {
	return &eventTypeRepository{db: db}
}

func (r *eventTypeRepository) Create(eventType *models.EventType) error {
	return r.db.Create(eventType).Error
}

func (r *eventTypeRepository) GetByID(id uuid.UUID) (*models.EventType, error) {
	var eventType models.EventType
	if err := r.db.First(&eventType, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &eventType, nil
}

func (r *eventTypeRepository) GetAll(parishID uuid.UUID) ([]models.EventType, error) {
	var eventTypes []models.EventType
	err := r.db.Where("parish_id = ?", parishID).Order("name ASC").Find(&eventTypes).Error
	return eventTypes, err
}
