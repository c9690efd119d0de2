package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/repository"
	"parish-liturgy-backend/internal/sanitizer"
	"parish-liturgy-backend/pkg/cache"
	"parish-liturgy-backend/pkg/logger"
	"parish-liturgy-backend/pkg/validator"
)

type FieldDefinitionService struct {
	eventTypeRepo repository.EventTypeRepository
	fieldRepo     repository.FieldDefinitionRepository
	cache         *cache.Cache
	cacheTTL      time.Duration
}

func NewFieldDefinitionService(eventTypeRepo repository.EventTypeRepository, fieldRepo repository.FieldDefinitionRepository, cacheService *cache.Cache, cacheTTL time.Duration) *FieldDefinitionService {
	return &FieldDefinitionService{
		eventTypeRepo: eventTypeRepo,
		fieldRepo:     fieldRepo,
		cache:         cacheService,
		cacheTTL:      cacheTTL,
	}
}

// List returns the event type's definitions in display order.
func (s *FieldDefinitionService) List(eventTypeID uuid.UUID) ([]models.InputFieldDefinition, error) {
	if s.cache.Enabled() {
		var cached []models.InputFieldDefinition
		if err := s.cache.GetCachedFieldDefinitions(eventTypeID, &cached); err == nil {
			return cached, nil
		}
	}

	definitions, err := s.fieldRepo.ListByEventType(eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load field definitions: %w", err)
	}

	if s.cache.Enabled() {
		if err := s.cache.CacheFieldDefinitions(eventTypeID, definitions, s.cacheTTL); err != nil {
			logger.Warn("Failed to cache field definitions", map[string]interface{}{
				"event_type_id": eventTypeID.String(),
				"error":         err.Error(),
			})
		}
	}

	return definitions, nil
}

func (s *FieldDefinitionService) Create(eventTypeID uuid.UUID, req models.CreateFieldDefinitionRequest) (*models.InputFieldDefinition, error) {
	if _, err := s.eventTypeRepo.GetByID(eventTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}

	fieldType, ok := constants.NormaliseFieldType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFieldType, req.Type)
	}

	propertyName := strings.ToLower(strings.TrimSpace(req.PropertyName))
	if !validator.ValidPropertyName(propertyName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPropertyName, req.PropertyName)
	}

	exists, err := s.fieldRepo.ExistsByPropertyName(eventTypeID, propertyName)
	if err != nil {
		return nil, fmt.Errorf("failed to check property name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateProperty
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else if order, err = s.fieldRepo.NextOrder(eventTypeID); err != nil {
		return nil, fmt.Errorf("failed to compute field order: %w", err)
	}

	definition := &models.InputFieldDefinition{
		EventTypeID:        eventTypeID,
		Name:               validator.NormalizeSpaces(sanitizer.TextInput(req.Name)),
		PropertyName:       propertyName,
		Type:               fieldType,
		Required:           req.Required && fieldType != constants.FieldTypeSpacer,
		ListID:             req.ListID,
		IsKeyPerson:        req.IsKeyPerson && fieldType == constants.FieldTypePerson,
		IsPrimary:          req.IsPrimary && fieldType == constants.FieldTypeCalendarEvent,
		IsPerCalendarEvent: req.IsPerCalendarEvent,
		FilterTags:         models.StringList(cleanTags(req.FilterTags)),
		Order:              order,
	}

	if err := s.fieldRepo.Create(definition); err != nil {
		return nil, fmt.Errorf("failed to create field definition: %w", err)
	}

	s.invalidate(eventTypeID)
	return definition, nil
}

func (s *FieldDefinitionService) Update(id uuid.UUID, req models.UpdateFieldDefinitionRequest) (*models.InputFieldDefinition, error) {
	definition, err := s.fieldRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, fmt.Errorf("failed to load field definition: %w", err)
	}

	if req.Name != nil {
		definition.Name = validator.NormalizeSpaces(sanitizer.TextInput(*req.Name))
	}
	if req.Required != nil {
		definition.Required = *req.Required && definition.Type != constants.FieldTypeSpacer
	}
	if req.IsKeyPerson != nil {
		definition.IsKeyPerson = *req.IsKeyPerson && definition.Type == constants.FieldTypePerson
	}
	if req.IsPrimary != nil {
		definition.IsPrimary = *req.IsPrimary && definition.Type == constants.FieldTypeCalendarEvent
	}
	if req.IsPerCalendarEvent != nil {
		definition.IsPerCalendarEvent = *req.IsPerCalendarEvent
	}
	if req.FilterTags != nil {
		definition.FilterTags = models.StringList(cleanTags(*req.FilterTags))
	}
	if req.Order != nil {
		definition.Order = *req.Order
	}

	if err := s.fieldRepo.Update(definition); err != nil {
		return nil, fmt.Errorf("failed to update field definition: %w", err)
	}

	s.invalidate(definition.EventTypeID)
	return definition, nil
}

// Delete soft-deletes the definition. Values already stored on events stay
// in place and are treated as undeclared text.
func (s *FieldDefinitionService) Delete(id uuid.UUID) error {
	definition, err := s.fieldRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFieldNotFound
		}
		return fmt.Errorf("failed to load field definition: %w", err)
	}

	if err := s.fieldRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFieldNotFound
		}
		return fmt.Errorf("failed to delete field definition: %w", err)
	}

	s.invalidate(definition.EventTypeID)
	return nil
}

func (s *FieldDefinitionService) invalidate(eventTypeID uuid.UUID) {
	if err := s.cache.InvalidateFieldDefinitions(eventTypeID); err != nil {
		logger.Warn("Failed to invalidate field definition cache", map[string]interface{}{
			"event_type_id": eventTypeID.String(),
			"error":         err.Error(),
		})
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(sanitizer.TextInput(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
