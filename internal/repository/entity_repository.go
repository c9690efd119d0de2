package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

// EntityRepository loads the records that event field values point at.
type EntityRepository interface {
	People(ids []uuid.UUID) ([]models.Person, error)
	Locations(ids []uuid.UUID) ([]models.Location, error)
	Groups(ids []uuid.UUID) ([]models.Group, error)
	ListItems(ids []uuid.UUID) ([]models.ListItem, error)
	Documents(ids []uuid.UUID) ([]models.Document, error)
	Contents(ids []uuid.UUID) ([]models.Content, error)
	Petitions(ids []uuid.UUID) ([]models.Petition, error)
	Events(ids []uuid.UUID) ([]models.Event, error)
	CalendarEvents(ids []uuid.UUID) ([]models.CalendarEvent, error)
}

type entityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) EntityRepository {
	return &entityRepository{db: db}
}

func (r *entityRepository) People(ids []uuid.UUID) ([]models.Person, error) {
	return findByIDs[models.Person](r.db, ids)
}

func (r *entityRepository) Locations(ids []uuid.UUID) ([]models.Location, error) {
	return findByIDs[models.Location](r.db, ids)
}

func (r *entityRepository) Groups(ids []uuid.UUID) ([]models.Group, error) {
	return findByIDs[models.Group](r.db, ids)
}

func (r *entityRepository) ListItems(ids []uuid.UUID) ([]models.ListItem, error) {
	return findByIDs[models.ListItem](r.db, ids)
}

func (r *entityRepository) Documents(ids []uuid.UUID) ([]models.Document, error) {
	return findByIDs[models.Document](r.db, ids)
}

func (r *entityRepository) Contents(ids []uuid.UUID) ([]models.Content, error) {
	return findByIDs[models.Content](r.db, ids)
}

func (r *entityRepository) Petitions(ids []uuid.UUID) ([]models.Petition, error) {
	return findByIDs[models.Petition](r.db, ids)
}

func (r *entityRepository) Events(ids []uuid.UUID) ([]models.Event, error) {
	return findByIDs[models.Event](r.db, ids)
}

func (r *entityRepository) CalendarEvents(ids []uuid.UUID) ([]models.CalendarEvent, error) {
	return findByIDs[models.CalendarEvent](r.db, ids, "Location")
}
