package service

import (
	"sort"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/repository"
)

type fakeEventTypeRepo struct {
	items map[uuid.UUID]*models.EventType
}

func newFakeEventTypeRepo(types ...*models.EventType) *fakeEventTypeRepo {
	repo := &fakeEventTypeRepo{items: map[uuid.UUID]*models.EventType{}}
	for _, eventType := range types {
		repo.items[eventType.ID] = eventType
	}
	return repo
}

func (r *fakeEventTypeRepo) Create(eventType *models.EventType) error {
	if eventType.ID == uuid.Nil {
		eventType.ID = uuid.New()
	}
	r.items[eventType.ID] = eventType
	return nil
}

func (r *fakeEventTypeRepo) GetByID(id uuid.UUID) (*models.EventType, error) {
	if eventType, ok := r.items[id]; ok {
		return eventType, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeEventTypeRepo) GetAll(parishID uuid.UUID) ([]models.EventType, error) {
	var out []models.EventType
	for _, eventType := range r.items {
		if eventType.ParishID == parishID {
			out = append(out, *eventType)
		}
	}
	return out, nil
}

type fakeFieldRepo struct {
	items map[uuid.UUID]*models.InputFieldDefinition
}

func newFakeFieldRepo(defs ...models.InputFieldDefinition) *fakeFieldRepo {
	repo := &fakeFieldRepo{items: map[uuid.UUID]*models.InputFieldDefinition{}}
	for i := range defs {
		def := defs[i]
		if def.ID == uuid.Nil {
			def.ID = uuid.New()
		}
		repo.items[def.ID] = &def
	}
	return repo
}

func (r *fakeFieldRepo) Create(def *models.InputFieldDefinition) error {
	if def.ID == uuid.Nil {
		def.ID = uuid.New()
	}
	copied := *def
	r.items[def.ID] = &copied
	return nil
}

func (r *fakeFieldRepo) GetByID(id uuid.UUID) (*models.InputFieldDefinition, error) {
	if def, ok := r.items[id]; ok {
		copied := *def
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeFieldRepo) ListByEventType(eventTypeID uuid.UUID) ([]models.InputFieldDefinition, error) {
	var out []models.InputFieldDefinition
	for _, def := range r.items {
		if def.EventTypeID == eventTypeID {
			out = append(out, *def)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeFieldRepo) Update(def *models.InputFieldDefinition) error {
	copied := *def
	r.items[def.ID] = &copied
	return nil
}

func (r *fakeFieldRepo) Delete(id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeFieldRepo) ExistsByPropertyName(eventTypeID uuid.UUID, propertyName string) (bool, error) {
	for _, def := range r.items {
		if def.EventTypeID == eventTypeID && def.PropertyName == propertyName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFieldRepo) NextOrder(eventTypeID uuid.UUID) (int, error) {
	next := 0
	for _, def := range r.items {
		if def.EventTypeID == eventTypeID && def.Order >= next {
			next = def.Order + 1
		}
	}
	return next, nil
}

type fakeScriptRepo struct {
	scripts  map[uuid.UUID]*models.Script
	sections map[uuid.UUID]*models.Section
}

func newFakeScriptRepo() *fakeScriptRepo {
	return &fakeScriptRepo{
		scripts:  map[uuid.UUID]*models.Script{},
		sections: map[uuid.UUID]*models.Section{},
	}
}

func (r *fakeScriptRepo) GetByID(id uuid.UUID) (*models.Script, error) {
	stored, ok := r.scripts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *stored
	copied.Sections = nil
	for _, section := range r.sections {
		if section.ScriptID == id {
			copied.Sections = append(copied.Sections, *section)
		}
	}
	sort.SliceStable(copied.Sections, func(i, j int) bool {
		return copied.Sections[i].Order < copied.Sections[j].Order
	})
	return &copied, nil
}

func (r *fakeScriptRepo) ListByEventType(eventTypeID uuid.UUID) ([]models.Script, error) {
	var out []models.Script
	for _, stored := range r.scripts {
		if stored.EventTypeID == eventTypeID {
			out = append(out, *stored)
		}
	}
	return out, nil
}

func (r *fakeScriptRepo) Create(s *models.Script) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	copied := *s
	copied.Sections = nil
	r.scripts[s.ID] = &copied
	for i := range s.Sections {
		s.Sections[i].ScriptID = s.ID
		_ = r.CreateSection(&s.Sections[i])
	}
	return nil
}

func (r *fakeScriptRepo) GetSection(id uuid.UUID) (*models.Section, error) {
	if section, ok := r.sections[id]; ok {
		copied := *section
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeScriptRepo) CreateSection(section *models.Section) error {
	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}
	copied := *section
	r.sections[section.ID] = &copied
	return nil
}

func (r *fakeScriptRepo) UpdateSection(section *models.Section) error {
	copied := *section
	r.sections[section.ID] = &copied
	return nil
}

func (r *fakeScriptRepo) DeleteSection(id uuid.UUID) error {
	if _, ok := r.sections[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sections, id)
	return nil
}

func (r *fakeScriptRepo) ReorderSections(scriptID uuid.UUID, ids []uuid.UUID) error {
	for idx, id := range ids {
		section, ok := r.sections[id]
		if !ok || section.ScriptID != scriptID {
			return repository.ErrNotFound
		}
		section.Order = idx
	}
	return nil
}

func (r *fakeScriptRepo) NextSectionOrder(scriptID uuid.UUID) (int, error) {
	next := 0
	for _, section := range r.sections {
		if section.ScriptID == scriptID && section.Order >= next {
			next = section.Order + 1
		}
	}
	return next, nil
}

type fakeEventRepo struct {
	items map[uuid.UUID]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{items: map[uuid.UUID]*models.Event{}}
}

func (r *fakeEventRepo) Create(event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	for i := range event.CalendarEvents {
		event.CalendarEvents[i].EventID = event.ID
	}
	copied := *event
	r.items[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) GetByID(id uuid.UUID) (*models.Event, error) {
	if event, ok := r.items[id]; ok {
		copied := *event
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeEventRepo) UpdateFieldValues(id uuid.UUID, values models.JSONMap) error {
	event, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	event.FieldValues = values
	return nil
}

type fakeEntityRepo struct {
	people    []models.Person
	locations []models.Location
	contents  []models.Content
	petitions []models.Petition
	calendar  []models.CalendarEvent
}

func pick[T any](rows []T, ids []uuid.UUID, id func(T) uuid.UUID) []T {
	wanted := map[uuid.UUID]struct{}{}
	for _, value := range ids {
		wanted[value] = struct{}{}
	}
	var out []T
	for _, row := range rows {
		if _, ok := wanted[id(row)]; ok {
			out = append(out, row)
		}
	}
	return out
}

func (r *fakeEntityRepo) People(ids []uuid.UUID) ([]models.Person, error) {
	return pick(r.people, ids, func(p models.Person) uuid.UUID { return p.ID }), nil
}

func (r *fakeEntityRepo) Locations(ids []uuid.UUID) ([]models.Location, error) {
	return pick(r.locations, ids, func(l models.Location) uuid.UUID { return l.ID }), nil
}

func (r *fakeEntityRepo) Groups([]uuid.UUID) ([]models.Group, error) { return nil, nil }

func (r *fakeEntityRepo) ListItems([]uuid.UUID) ([]models.ListItem, error) { return nil, nil }

func (r *fakeEntityRepo) Documents([]uuid.UUID) ([]models.Document, error) { return nil, nil }

func (r *fakeEntityRepo) Contents(ids []uuid.UUID) ([]models.Content, error) {
	return pick(r.contents, ids, func(c models.Content) uuid.UUID { return c.ID }), nil
}

func (r *fakeEntityRepo) Petitions(ids []uuid.UUID) ([]models.Petition, error) {
	return pick(r.petitions, ids, func(p models.Petition) uuid.UUID { return p.ID }), nil
}

func (r *fakeEntityRepo) Events([]uuid.UUID) ([]models.Event, error) { return nil, nil }

func (r *fakeEntityRepo) CalendarEvents(ids []uuid.UUID) ([]models.CalendarEvent, error) {
	return pick(r.calendar, ids, func(c models.CalendarEvent) uuid.UUID { return c.ID }), nil
}

type fakeParishRepo struct {
	parish *models.Parish
}

func (r *fakeParishRepo) GetByID(id uuid.UUID) (*models.Parish, error) {
	if r.parish != nil && r.parish.ID == id {
		return r.parish, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeParishRepo) Create(parish *models.Parish) error {
	r.parish = parish
	return nil
}

// fixture wires every service over in-memory repositories.
type fixture struct {
	eventTypes *fakeEventTypeRepo
	fieldRepo  *fakeFieldRepo
	scriptRepo *fakeScriptRepo
	eventRepo  *fakeEventRepo
	entities   *fakeEntityRepo
	parishes   *fakeParishRepo

	fields   *FieldDefinitionService
	scripts  *ScriptService
	events   *EventService
	resolver *ResolutionService
	render   *RenderService

	eventType *models.EventType
	groom     models.Person
}

func newFixture() *fixture {
	parish := &models.Parish{ID: uuid.New(), Name: "St. Mary", City: "Austin", State: "TX"}
	eventType := &models.EventType{ID: uuid.New(), ParishID: parish.ID, Name: "Wedding"}
	groom := models.Person{ID: uuid.New(), FirstName: "John", LastName: "Smith", Sex: "MALE"}

	f := &fixture{
		eventTypes: newFakeEventTypeRepo(eventType),
		fieldRepo: newFakeFieldRepo(
			models.InputFieldDefinition{EventTypeID: eventType.ID, Name: "Groom", PropertyName: "groom", Type: "person", Order: 0},
			models.InputFieldDefinition{EventTypeID: eventType.ID, Name: "Notes", PropertyName: "notes", Type: "rich_text", Order: 1},
			models.InputFieldDefinition{EventTypeID: eventType.ID, Name: "Gap", PropertyName: "gap", Type: "spacer", Order: 2},
			models.InputFieldDefinition{EventTypeID: eventType.ID, Name: "Music", PropertyName: "has_music", Type: "yes_no", Order: 3},
		),
		scriptRepo: newFakeScriptRepo(),
		eventRepo:  newFakeEventRepo(),
		entities:   &fakeEntityRepo{people: []models.Person{groom}},
		parishes:   &fakeParishRepo{parish: parish},
		eventType:  eventType,
		groom:      groom,
	}

	f.fields = NewFieldDefinitionService(f.eventTypes, f.fieldRepo, nil, 0)
	f.scripts = NewScriptService(f.scriptRepo, nil)
	f.events = NewEventService(f.eventRepo, f.eventTypes, f.fields, "en")
	f.resolver = NewResolutionService(f.entities, f.parishes)
	f.render = NewRenderService(f.events, f.scripts, f.fields, f.resolver, nil)
	return f
}
