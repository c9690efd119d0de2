package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/formatters"
	"parish-liturgy-backend/internal/liturgy"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
	"parish-liturgy-backend/pkg/logger"
)

type LiturgyService struct {
	catalog  *liturgy.Catalog
	html     *liturgy.HTMLRenderer
	text     *liturgy.TextRenderer
	avatars  *AvatarService
	events   EventUseCase
	fields   FieldDefinitionUseCase
	resolver *ResolutionService
}

func NewLiturgyService(catalog *liturgy.Catalog, html *liturgy.HTMLRenderer, text *liturgy.TextRenderer, avatars *AvatarService, events EventUseCase, fields FieldDefinitionUseCase, resolver *ResolutionService) *LiturgyService {
	initRenderMetrics()

	if catalog == nil {
		catalog = liturgy.NewCatalog()
	}
	if html == nil {
		html = liturgy.NewHTMLRenderer(nil, nil)
	}
	if text == nil {
		text = liturgy.NewTextRenderer(0)
	}
	return &LiturgyService{
		catalog:  catalog,
		html:     html,
		text:     text,
		avatars:  avatars,
		events:   events,
		fields:   fields,
		resolver: resolver,
	}
}

func (s *LiturgyService) Templates(module string) ([]liturgy.TemplateInfo, error) {
	templates, ok := s.catalog.Templates(strings.ToLower(strings.TrimSpace(module)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}
	return templates, nil
}

// Build decodes payload into the module's view and runs the selected
// template. An empty templateID falls back to the id carried in the payload,
// then to the module default.
func (s *LiturgyService) Build(module, templateID string, payload []byte) (doc *liturgy.Document, err error) {
	start := time.Now()
	defer func() { observeRender(renderTargetLiturgy, start, err) }()

	module = strings.ToLower(strings.TrimSpace(module))
	templateID = strings.TrimSpace(templateID)

	switch module {
	case constants.ModuleWedding:
		var view liturgy.WeddingView
		if err := decodeView(payload, &view); err != nil {
			return nil, err
		}
		doc = s.catalog.Weddings.Build(&view, firstNonEmpty(templateID, view.TemplateID))
	case constants.ModuleFuneral:
		var view liturgy.FuneralView
		if err := decodeView(payload, &view); err != nil {
			return nil, err
		}
		doc = s.catalog.Funerals.Build(&view, firstNonEmpty(templateID, view.TemplateID))
	case constants.ModuleGroupBaptism:
		var view liturgy.GroupBaptismView
		if err := decodeView(payload, &view); err != nil {
			return nil, err
		}
		doc = s.catalog.GroupBaptisms.Build(&view, firstNonEmpty(templateID, view.TemplateID))
	case constants.ModuleMassRoster:
		var view liturgy.MassRosterView
		if err := decodeView(payload, &view); err != nil {
			return nil, err
		}
		doc = s.catalog.MassRosters.Build(&view, firstNonEmpty(templateID, view.TemplateID))
	case constants.ModuleEvent:
		var view liturgy.EventScriptView
		if err := decodeView(payload, &view); err != nil {
			return nil, err
		}
		doc = s.catalog.EventScripts.Build(&view, templateID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}

	s.fillAvatars(doc)
	return doc, nil
}

// EventDocument builds the simple event script for a stored event, walking
// its event type's field definitions in order.
func (s *LiturgyService) EventDocument(eventID uuid.UUID, templateID string) (doc *liturgy.Document, err error) {
	start := time.Now()
	defer func() { observeRender(renderTargetLiturgy, start, err) }()

	event, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	definitions, err := s.fields.List(event.EventTypeID)
	if err != nil {
		return nil, err
	}
	ctx, err := s.resolver.Resolve(event, definitions)
	if err != nil {
		return nil, err
	}

	doc = s.catalog.EventScripts.Build(EventScriptViewOf(event, definitions, ctx), templateID)
	s.fillAvatars(doc)
	return doc, nil
}

func (s *LiturgyService) RenderHTML(doc *liturgy.Document) string {
	return s.html.Render(doc)
}

func (s *LiturgyService) RenderText(doc *liturgy.Document) string {
	return s.text.Render(doc)
}

func (s *LiturgyService) fillAvatars(doc *liturgy.Document) {
	if s.avatars == nil {
		return
	}
	if err := s.avatars.FillAvatars(doc); err != nil {
		logger.Warn("Failed to generate placeholder avatars", map[string]interface{}{
			"document": doc.ID,
			"error":    err.Error(),
		})
	}
}

// EventScriptViewOf maps a stored event onto the simple event script view.
func EventScriptViewOf(event *models.Event, definitions []models.InputFieldDefinition, ctx *placeholders.Context) *liturgy.EventScriptView {
	language := constants.NormaliseLanguage(event.Language)
	view := &liturgy.EventScriptView{
		ID:       event.ID.String(),
		Name:     event.Name,
		Language: language,
		Fields:   make([]liturgy.EventFieldView, 0, len(definitions)),
	}
	if event.EventType != nil {
		view.EventType = event.EventType.Name
	}
	if primary := event.PrimaryCalendarEvent(); primary != nil {
		view.Event = &liturgy.EventView{Date: primary.StartDate, Time: primary.StartTime}
		if primary.Location != nil {
			view.Event.LocationName = primary.Location.Name
		}
	}

	for _, def := range definitions {
		view.Fields = append(view.Fields, liturgy.EventFieldView{
			Name:  def.Name,
			Type:  def.Type,
			Order: def.Order,
			Value: displayValue(def, event.FieldValues[def.PropertyName], ctx, language),
		})
	}
	return view
}

func displayValue(def models.InputFieldDefinition, raw interface{}, ctx *placeholders.Context, language string) string {
	switch def.Type {
	case constants.FieldTypeSpacer:
		return ""
	case constants.FieldTypeYesNo:
		if raw == nil || raw == "" {
			return ""
		}
		return formatters.YesNo(raw, language)
	case constants.FieldTypeTime:
		if text, ok := raw.(string); ok {
			return formatters.Time(text)
		}
	}
	return placeholders.Value(ctx, def.PropertyName)
}

func decodeView(payload []byte, dest interface{}) error {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
