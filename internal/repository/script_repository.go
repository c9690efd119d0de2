package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

type ScriptRepository interface {
	GetByID(id uuid.UUID) (*models.Script, error)
	ListByEventType(eventTypeID uuid.UUID) ([]models.Script, error)
	Create(script *models.Script) error

	GetSection(id uuid.UUID) (*models.Section, error)
	CreateSection(section *models.Section) error
	UpdateSection(section *models.Section) error
	DeleteSection(id uuid.UUID) error
	ReorderSections(scriptID uuid.UUID, sectionIDs []uuid.UUID) error
	NextSectionOrder(scriptID uuid.UUID) (int, error)
}

type scriptRepository struct {
	db *gorm.DB
}

func NewScriptRepository(db *gorm.DB) ScriptRepository {
	return &scriptRepository{db: db}
}

func orderedSections(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at ASC")
}

func (r *scriptRepository) GetByID(id uuid.UUID) (*models.Script, error) {
	var script models.Script
	err := r.db.Preload("Sections", orderedSections).First(&script, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &script, nil
}

func (r *scriptRepository) ListByEventType(eventTypeID uuid.UUID) ([]models.Script, error) {
	var scripts []models.Script
	err := r.db.Where("event_type_id = ?", eventTypeID).Order("name ASC").Find(&scripts).Error
	return scripts, err
}

func (r *scriptRepository) Create(script *models.Script) error {
	return r.db.Create(script).Error
}

func (r *scriptRepository) GetSection(id uuid.UUID) (*models.Section, error) {
	var section models.Section
	if err := r.db.First(&section, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &section, nil
}

func (r *scriptRepository) CreateSection(section *models.Section) error {
	return r.db.Create(section).Error
}

func (r *scriptRepository) UpdateSection(section *models.Section) error {
	return r.db.Save(section).Error
}

func (r *scriptRepository) DeleteSection(id uuid.UUID) error {
	result := r.db.Delete(&models.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderSections assigns sort_order by position in sectionIDs. Every id must
// belong to the script.
func (r *scriptRepository) ReorderSections(scriptID uuid.UUID, sectionIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range sectionIDs {
			result := tx.Model(&models.Section{}).
				Where("id = ? AND script_id = ?", id, scriptID).
				Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("section %s: %w", id, ErrNotFound)
			}
		}
		return nil
	})
}

func (r *scriptRepository) NextSectionOrder(scriptID uuid.UUID) (int, error) {
	var maxOrder *int
	err := r.db.Model(&models.Section{}).
		Where("script_id = ?", scriptID).
		Select("MAX(sort_order)").
		Scan(&maxOrder).Error
	if err != nil || maxOrder == nil {
		return 0, err
	}
	return *maxOrder + 1, nil
}
