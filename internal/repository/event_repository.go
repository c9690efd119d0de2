package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	UpdateFieldValues(id uuid.UUID, values models.JSONMap) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create inserts the event together with its calendar events.
func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.
		Preload("EventType").
		Preload("CalendarEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC").Order("start_time ASC")
		}).
		Preload("CalendarEvents.Location").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *eventRepository) UpdateFieldValues(id uuid.UUID, values models.JSONMap) error {
	result := r.db.Model(&models.Event{}).Where("id = ?", id).Update("field_values", values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
