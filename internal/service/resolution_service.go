package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
	"parish-liturgy-backend/internal/repository"
	"parish-liturgy-backend/pkg/logger"
)

// ResolutionService turns an event's stored field values into the resolved
// field map used by the placeholder resolver. All store access happens here;
// rendering itself never touches the database.
type ResolutionService struct {
	entityRepo repository.EntityRepository
	parishRepo repository.ParishRepository
}

func NewResolutionService(entityRepo repository.EntityRepository, parishRepo repository.ParishRepository) *ResolutionService {
	return &ResolutionService{entityRepo: entityRepo, parishRepo: parishRepo}
}

// Resolve builds the render context for event. Every declared field gets an
// entry; references that point at missing records resolve to nil. Stored
// values without a definition are exposed as text.
func (s *ResolutionService) Resolve(event *models.Event, definitions []models.InputFieldDefinition) (*placeholders.Context, error) {
	if event == nil {
		return nil, ErrEventNotFound
	}

	ids := make(map[string][]uuid.UUID)
	declared := make(map[string]struct{}, len(definitions))
	for _, def := range definitions {
		declared[def.PropertyName] = struct{}{}
		if !constants.IsReferenceFieldType(def.Type) {
			continue
		}
		if id, ok := referenceID(event.FieldValues[def.PropertyName]); ok {
			ids[def.Type] = append(ids[def.Type], id)
		}
	}

	records, err := s.loadRecords(ids)
	if err != nil {
		return nil, err
	}

	fields := make(placeholders.ResolvedFields, len(definitions)+len(event.FieldValues))
	for _, def := range definitions {
		if def.Type == constants.FieldTypeSpacer {
			continue
		}
		raw := event.FieldValues[def.PropertyName]
		field := placeholders.ResolvedField{FieldType: def.Type, RawValue: raw}
		if constants.IsReferenceFieldType(def.Type) {
			if id, ok := referenceID(raw); ok {
				if record, found := records[def.Type][id]; found {
					field.ResolvedValue = record
				} else {
					logger.Debug("Unresolved field reference", map[string]interface{}{
						"event_id": event.ID.String(),
						"field":    def.PropertyName,
						"type":     def.Type,
					})
				}
			}
		}
		fields[def.PropertyName] = field
	}

	for key, raw := range event.FieldValues {
		if _, ok := declared[key]; ok {
			continue
		}
		fields[key] = placeholders.ResolvedField{FieldType: constants.FieldTypeText, RawValue: raw}
	}

	ctx := &placeholders.Context{
		Fields:   fields,
		Language: constants.NormaliseLanguage(event.Language),
	}

	parish, err := s.parish(event.ParishID)
	if err != nil {
		return nil, err
	}
	ctx.Parish = parish

	return ctx, nil
}

func (s *ResolutionService) parish(id uuid.UUID) (*placeholders.Parish, error) {
	if id == uuid.Nil || s.parishRepo == nil {
		return nil, nil
	}
	parish, err := s.parishRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load parish: %w", err)
	}
	return &placeholders.Parish{Name: parish.Name, City: parish.City, State: parish.State}, nil
}

// loadRecords batch-loads referenced records, one query per field type.
func (s *ResolutionService) loadRecords(ids map[string][]uuid.UUID) (map[string]map[uuid.UUID]interface{}, error) {
	out := make(map[string]map[uuid.UUID]interface{}, len(ids))
	for fieldType, list := range ids {
		byID := make(map[uuid.UUID]interface{}, len(list))
		var err error

		switch fieldType {
		case constants.FieldTypePerson:
			err = collect(s.entityRepo.People, list, byID, func(r *models.Person) uuid.UUID { return r.ID })
		case constants.FieldTypeLocation:
			err = collect(s.entityRepo.Locations, list, byID, func(r *models.Location) uuid.UUID { return r.ID })
		case constants.FieldTypeGroup:
			err = collect(s.entityRepo.Groups, list, byID, func(r *models.Group) uuid.UUID { return r.ID })
		case constants.FieldTypeListItem:
			err = collect(s.entityRepo.ListItems, list, byID, func(r *models.ListItem) uuid.UUID { return r.ID })
		case constants.FieldTypeDocument:
			err = collect(s.entityRepo.Documents, list, byID, func(r *models.Document) uuid.UUID { return r.ID })
		case constants.FieldTypeContent:
			err = collect(s.entityRepo.Contents, list, byID, func(r *models.Content) uuid.UUID { return r.ID })
		case constants.FieldTypePetition:
			err = collect(s.entityRepo.Petitions, list, byID, func(r *models.Petition) uuid.UUID { return r.ID })
		case constants.FieldTypeEventLink:
			err = collect(s.entityRepo.Events, list, byID, func(r *models.Event) uuid.UUID { return r.ID })
		case constants.FieldTypeCalendarEvent:
			err = collect(s.entityRepo.CalendarEvents, list, byID, func(r *models.CalendarEvent) uuid.UUID { return r.ID })
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s references: %w", fieldType, err)
		}
		out[fieldType] = byID
	}
	return out, nil
}

func collect[T any](load func([]uuid.UUID) ([]T, error), ids []uuid.UUID, into map[uuid.UUID]interface{}, key func(*T) uuid.UUID) error {
	rows, err := load(ids)
	if err != nil {
		return err
	}
	for i := range rows {
		record := &rows[i]
		into[key(record)] = record
	}
	return nil
}

func referenceID(value interface{}) (uuid.UUID, bool) {
	text, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(text))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
