package liturgy

import "parish-liturgy-backend/internal/constants"

const FuneralTemplateSpanish = "funeral-full-script-spanish"

func NewFuneralRegistry() *TemplateRegistry[*FuneralView] {
	return MustTemplateRegistry(constants.ModuleFuneral, constants.DefaultFuneralTemplateID,
		Template[*FuneralView]{
			ID:                 constants.DefaultFuneralTemplateID,
			Name:               "Full Funeral Script (English)",
			Description:        "Funeral liturgy with vigil, readings and committal details.",
			SupportedLanguages: []string{constants.LanguageEnglish},
			Build:              funeralBuilder(constants.LanguageEnglish),
		},
		Template[*FuneralView]{
			ID:                 FuneralTemplateSpanish,
			Name:               "Guion Completo del Funeral (Español)",
			Description:        "Liturgia funeral con vigilia, lecturas y sepultura.",
			SupportedLanguages: []string{constants.LanguageSpanish},
			Build:              funeralBuilder(constants.LanguageSpanish),
		},
	)
}

func funeralBuilder(language string) Builder[*FuneralView] {
	return func(f *FuneralView) *Document {
		if f == nil {
			f = &FuneralView{}
		}

		doc := &Document{
			ID:       f.ID,
			Language: language,
			Title:    f.Deceased.Name(),
			Subtitle: label(language, "funeral"),
		}
		if doc.Title == "" {
			doc.Title = label(language, "funeral")
			doc.Subtitle = ""
		}

		summary := newSection(language, "funeral-summary", label(language, "summary")).
			eventTitle(doc.Title).
			eventDateTime(f.Funeral).
			spacer(SpacerSmall).
			avatar("deceased", f.Deceased).
			person("family_contact", f.FamilyContact).
			row("phone", phoneOf(f.FamilyContact)).
			person("presider", f.Presider).
			person("homilist", f.Homilist).
			person("lead_musician", f.LeadMusician).
			row("location", f.Funeral.location()).
			eventRows("vigil", f.Vigil).
			eventRows("committal", f.Committal)
		if f.Notes != "" {
			summary.spacer(SpacerSmall).row("notes", f.Notes)
		}
		appendSection(doc, summary)

		appendSection(doc, readingsSection(language, "funeral-readings", f.Readings))
		appendSection(doc, petitionsSection(language, "funeral-petitions", f.Petitions))
		appendSection(doc, textSection(language, "funeral-announcements", "announcements", f.Announcements))

		return doc
	}
}

func phoneOf(p *PersonView) string {
	if p == nil {
		return ""
	}
	return p.PhoneNumber
}
