package liturgy

import (
	"strings"

	"parish-liturgy-backend/internal/constants"
)

const MassRosterTemplateSpanish = "mass-roster-spanish"

func NewMassRosterRegistry() *TemplateRegistry[*MassRosterView] {
	return MustTemplateRegistry(constants.ModuleMassRoster, constants.DefaultMassRosterTemplateID,
		Template[*MassRosterView]{
			ID:                 constants.DefaultMassRosterTemplateID,
			Name:               "Mass Roster (English)",
			Description:        "Ministers scheduled for a Mass with the intention.",
			SupportedLanguages: []string{constants.LanguageEnglish},
			Build:              massRosterBuilder(constants.LanguageEnglish),
		},
		Template[*MassRosterView]{
			ID:                 MassRosterTemplateSpanish,
			Name:               "Lista de Ministros (Español)",
			Description:        "Ministros asignados a una Misa con la intención.",
			SupportedLanguages: []string{constants.LanguageSpanish},
			Build:              massRosterBuilder(constants.LanguageSpanish),
		},
	)
}

func massRosterBuilder(language string) Builder[*MassRosterView] {
	return func(m *MassRosterView) *Document {
		if m == nil {
			m = &MassRosterView{}
		}

		title := strings.TrimSpace(m.Name)
		if title == "" {
			title = label(language, "mass")
		}

		doc := &Document{
			ID:       m.ID,
			Language: language,
			Title:    title,
		}

		summary := newSection(language, "mass-summary", label(language, "summary")).
			eventTitle(title).
			eventDateTime(m.Event).
			avatar("presider", m.Presider).
			person("homilist", m.Homilist).
			row("location", m.Event.location()).
			row("intention", m.Intention)
		appendSection(doc, summary)

		ministers := newSection(language, "mass-ministers", label(language, "ministers")).
			title(label(language, "ministers"))
		assigned := 0
		for _, assignment := range m.Assignments {
			name := assignment.Person.Name()
			if name == "" {
				continue
			}
			ministers.rawRow(assignment.Role, name)
			assigned++
		}
		if assigned > 0 {
			appendSection(doc, ministers)
		}

		appendSection(doc, textSection(language, "mass-announcements", "announcements", m.Announcements))

		return doc
	}
}
