package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/repository"
	"parish-liturgy-backend/internal/sanitizer"
)

type EventService struct {
	eventRepo       repository.EventRepository
	eventTypeRepo   repository.EventTypeRepository
	fields          FieldDefinitionUseCase
	defaultLanguage string
}

func NewEventService(eventRepo repository.EventRepository, eventTypeRepo repository.EventTypeRepository, fields FieldDefinitionUseCase, defaultLanguage string) *EventService {
	return &EventService{
		eventRepo:       eventRepo,
		eventTypeRepo:   eventTypeRepo,
		fields:          fields,
		defaultLanguage: constants.NormaliseLanguage(defaultLanguage),
	}
}

func (s *EventService) Create(req models.CreateEventRequest) (*models.Event, error) {
	eventType, err := s.eventTypeRepo.GetByID(req.EventTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}

	definitions, err := s.fields.List(eventType.ID)
	if err != nil {
		return nil, err
	}

	language := s.defaultLanguage
	if strings.TrimSpace(req.Language) != "" {
		language = constants.NormaliseLanguage(req.Language)
	}

	parishID := req.ParishID
	if parishID == uuid.Nil {
		parishID = eventType.ParishID
	}

	event := &models.Event{
		ParishID:    parishID,
		EventTypeID: eventType.ID,
		Name:        sanitizer.TextInput(req.Name),
		Language:    language,
		FieldValues: models.JSONMap(sanitizer.FieldValues(req.FieldValues, definitions)),
	}

	primarySet := false
	for _, occurrence := range req.CalendarEvents {
		calendarEvent := models.CalendarEvent{
			Name:       sanitizer.TextInput(occurrence.Name),
			StartDate:  strings.TrimSpace(occurrence.StartDate),
			StartTime:  strings.TrimSpace(occurrence.StartTime),
			LocationID: occurrence.LocationID,
			IsPrimary:  occurrence.IsPrimary && !primarySet,
		}
		primarySet = primarySet || calendarEvent.IsPrimary
		event.CalendarEvents = append(event.CalendarEvents, calendarEvent)
	}
	if !primarySet && len(event.CalendarEvents) > 0 {
		event.CalendarEvents[0].IsPrimary = true
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.GetByID(event.ID)
}

func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return event, nil
}

// UpdateFieldValues merges req into the stored values. A null value removes
// the key.
func (s *EventService) UpdateFieldValues(id uuid.UUID, req models.UpdateFieldValuesRequest) (*models.Event, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	definitions, err := s.fields.List(event.EventTypeID)
	if err != nil {
		return nil, err
	}

	merged := make(models.JSONMap, len(event.FieldValues)+len(req.FieldValues))
	for key, value := range event.FieldValues {
		merged[key] = value
	}
	for key, value := range sanitizer.FieldValues(req.FieldValues, definitions) {
		if value == nil {
			delete(merged, key)
			continue
		}
		merged[key] = value
	}

	if err := s.eventRepo.UpdateFieldValues(id, merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update field values: %w", err)
	}

	event.FieldValues = merged
	return event, nil
}
