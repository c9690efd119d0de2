package liturgy

import (
	"sort"
	"strings"

	"parish-liturgy-backend/internal/constants"
)

// NewEventScriptRegistry holds the generic script used by event types that
// have no dedicated module.
func NewEventScriptRegistry() *TemplateRegistry[*EventScriptView] {
	return MustTemplateRegistry(constants.ModuleEvent, constants.SimpleEventScriptTemplateID,
		Template[*EventScriptView]{
			ID:                 constants.SimpleEventScriptTemplateID,
			Name:               "Simple Event Script",
			Description:        "Cover page followed by every configured field in order.",
			SupportedLanguages: []string{constants.LanguageEnglish, constants.LanguageSpanish},
			Build:              buildEventScript,
		},
	)
}

func buildEventScript(e *EventScriptView) *Document {
	if e == nil {
		e = &EventScriptView{}
	}
	language := constants.NormaliseLanguage(e.Language)

	title := strings.TrimSpace(e.Name)
	if title == "" {
		title = strings.TrimSpace(e.EventType)
	}

	doc := &Document{
		ID:       e.ID,
		Language: language,
		Title:    title,
		Subtitle: strings.TrimSpace(e.EventType),
	}
	if doc.Subtitle == doc.Title {
		doc.Subtitle = ""
	}

	cover := newSection(language, "cover-page", "").
		eventTitle(title).
		eventRows("", e.Event)
	if !cover.empty() {
		cover.spacer(SpacerLarge)
	}
	appendSection(doc, cover)

	fields := make([]EventFieldView, len(e.Fields))
	copy(fields, e.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	details := newSection(language, "custom-fields", label(language, "details"))
	for _, field := range fields {
		switch field.Type {
		case constants.FieldTypeSpacer:
			details.spacer(SpacerMedium)
		case constants.FieldTypeCalendarEvent:
			continue
		default:
			details.rawRow(field.Name, field.Value)
		}
	}
	if hasRows(details) {
		appendSection(doc, details)
	}

	return doc
}

func hasRows(b *sectionBuilder) bool {
	for _, element := range b.section.Elements {
		if element.ElementType() != ElementSpacer {
			return true
		}
	}
	return false
}
