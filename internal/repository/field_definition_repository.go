package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

type FieldDefinitionRepository interface {
	Create(definition *models.InputFieldDefinition) error
	GetByID(id uuid.UUID) (*models.InputFieldDefinition, error)
	ListByEventType(eventTypeID uuid.UUID) ([]models.InputFieldDefinition, error)
	Update(definition *models.InputFieldDefinition) error
	Delete(id uuid.UUID) error
	ExistsByPropertyName(eventTypeID uuid.UUID, propertyName string) (bool, error)
	NextOrder(eventTypeID uuid.UUID) (int, error)
}

type fieldDefinitionRepository struct {
	db *gorm.DB
}

func NewFieldDefinitionRepository(db *gorm.DB) FieldDefinitionRepository {
	return &fieldDefinitionRepository{db: db}
}

func (r *fieldDefinitionRepository) Create(definition *models.InputFieldDefinition) error {
	return r.db.Create(definition).Error
}

func (r *fieldDefinitionRepository) GetByID(id uuid.UUID) (*models.InputFieldDefinition, error) {
	var definition models.InputFieldDefinition
	if err := r.db.First(&definition, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &definition, nil
}

// ListByEventType returns active definitions in display order.
func (r *fieldDefinitionRepository) ListByEventType(eventTypeID uuid.UUID) ([]models.InputFieldDefinition, error) {
	var definitions []models.InputFieldDefinition
	err := r.db.Where("event_type_id = ?", eventTypeID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&definitions).Error
	return definitions, err
}

func (r *fieldDefinitionRepository) Update(definition *models.InputFieldDefinition) error {
	return r.db.Save(definition).Error
}

// Delete soft-deletes the definition; stored event values are left untouched.
func (r *fieldDefinitionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.InputFieldDefinition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *fieldDefinitionRepository) ExistsByPropertyName(eventTypeID uuid.UUID, propertyName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.InputFieldDefinition{}).
		Where("event_type_id = ? AND property_name = ?", eventTypeID, propertyName).
		Count(&count).Error
	return count > 0, err
}

func (r *fieldDefinitionRepository) NextOrder(eventTypeID uuid.UUID) (int, error) {
	var maxOrder *int
	err := r.db.Model(&models.InputFieldDefinition{}).
		Where("event_type_id = ?", eventTypeID).
		Select("MAX(sort_order)").
		Scan(&maxOrder).Error
	if err != nil || maxOrder == nil {
		return 0, err
	}
	return *maxOrder + 1, nil
}
