package liturgy

import "parish-liturgy-backend/internal/constants"

const WeddingTemplateSpanish = "wedding-full-script-spanish"

// NewWeddingRegistry returns the wedding templates. Unknown template IDs
// resolve to the English full script.
func NewWeddingRegistry() *TemplateRegistry[*WeddingView] {
	return MustTemplateRegistry(constants.ModuleWedding, constants.DefaultWeddingTemplateID,
		Template[*WeddingView]{
			ID:                 constants.DefaultWeddingTemplateID,
			Name:               "Full Ceremony Script (English)",
			Description:        "Complete wedding ceremony script with readings and petitions.",
			SupportedLanguages: []string{constants.LanguageEnglish},
			Build:              weddingBuilder(constants.LanguageEnglish),
		},
		Template[*WeddingView]{
			ID:                 WeddingTemplateSpanish,
			Name:               "Guion Completo de la Ceremonia (Español)",
			Description:        "Guion completo de la ceremonia con lecturas y peticiones.",
			SupportedLanguages: []string{constants.LanguageSpanish},
			Build:              weddingBuilder(constants.LanguageSpanish),
		},
	)
}

func weddingBuilder(language string) Builder[*WeddingView] {
	return func(w *WeddingView) *Document {
		if w == nil {
			w = &WeddingView{}
		}

		doc := &Document{
			ID:       w.ID,
			Language: language,
			Title:    joinNames(w.Bride.Name(), w.Groom.Name()),
			Subtitle: label(language, "wedding"),
		}
		if doc.Title == "" {
			doc.Title = label(language, "wedding")
			doc.Subtitle = ""
		}

		summary := newSection(language, "wedding-summary", label(language, "summary")).
			eventTitle(doc.Title).
			eventDateTime(w.Wedding).
			spacer(SpacerSmall).
			avatar("bride", w.Bride).
			avatar("groom", w.Groom).
			person("presider", w.Presider).
			person("homilist", w.Homilist).
			person("coordinator", w.Coordinator).
			person("lead_musician", w.LeadMusician).
			person("witness", w.Witness).
			row("location", w.Wedding.location()).
			eventRows("rehearsal", w.Rehearsal).
			eventRows("reception", w.Reception)
		if w.Notes != "" {
			summary.spacer(SpacerSmall).row("notes", w.Notes)
		}
		appendSection(doc, summary)

		appendSection(doc, readingsSection(language, "wedding-readings", w.Readings))
		appendSection(doc, petitionsSection(language, "wedding-petitions", w.Petitions))
		appendSection(doc, textSection(language, "wedding-announcements", "announcements", w.Announcements))

		return doc
	}
}
