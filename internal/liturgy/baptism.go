package liturgy

import (
	"strings"

	"parish-liturgy-backend/internal/constants"
)

const GroupBaptismTemplateSpanish = "group-baptism-summary-spanish"

func NewGroupBaptismRegistry() *TemplateRegistry[*GroupBaptismView] {
	return MustTemplateRegistry(constants.ModuleGroupBaptism, constants.DefaultGroupBaptismTemplateID,
		Template[*GroupBaptismView]{
			ID:                 constants.DefaultGroupBaptismTemplateID,
			Name:               "Group Baptism Summary (English)",
			Description:        "One entry per child with parents and godparents.",
			SupportedLanguages: []string{constants.LanguageEnglish},
			Build:              groupBaptismBuilder(constants.LanguageEnglish),
		},
		Template[*GroupBaptismView]{
			ID:                 GroupBaptismTemplateSpanish,
			Name:               "Resumen de Bautismo Comunitario (Español)",
			Description:        "Una entrada por niño con padres y padrinos.",
			SupportedLanguages: []string{constants.LanguageSpanish},
			Build:              groupBaptismBuilder(constants.LanguageSpanish),
		},
	)
}

func groupBaptismBuilder(language string) Builder[*GroupBaptismView] {
	return func(g *GroupBaptismView) *Document {
		if g == nil {
			g = &GroupBaptismView{}
		}

		title := strings.TrimSpace(g.Name)
		if title == "" {
			title = label(language, "group_baptism")
		}

		doc := &Document{
			ID:       g.ID,
			Language: language,
			Title:    title,
		}

		summary := newSection(language, "group-baptism-summary", label(language, "summary")).
			eventTitle(title).
			eventDateTime(g.Event).
			person("presider", g.Presider).
			row("location", g.Event.location())
		if g.Notes != "" {
			summary.row("notes", g.Notes)
		}
		appendSection(doc, summary)

		baptisms := newSection(language, "group-baptism-baptisms", label(language, "baptisms")).
			title(label(language, "baptisms"))
		entries := 0
		for _, baptism := range g.Baptisms {
			entry := newSection(language, "", "")
			entry.avatar("child", baptism.Child).
				person("mother", baptism.Mother).
				person("father", baptism.Father).
				person("godparent", baptism.Sponsor1).
				person("godparent", baptism.Sponsor2).
				row("notes", baptism.Notes)
			if entry.empty() {
				continue
			}
			if entries > 0 {
				baptisms.spacer(SpacerMedium)
			}
			for _, element := range entry.section.Elements {
				baptisms.add(element)
			}
			entries++
		}
		if entries > 0 {
			appendSection(doc, baptisms)
		}

		return doc
	}
}
