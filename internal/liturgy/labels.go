package liturgy

import "parish-liturgy-backend/internal/constants"

var labels = map[string]map[string]string{
	constants.LanguageEnglish: {
		"wedding":          "Wedding",
		"funeral":          "Funeral",
		"group_baptism":    "Group Baptism",
		"mass":             "Mass",
		"summary":          "Summary",
		"details":          "Details",
		"bride":            "Bride",
		"groom":            "Groom",
		"presider":         "Presider",
		"homilist":         "Homilist",
		"coordinator":      "Coordinator",
		"lead_musician":    "Lead Musician",
		"witness":          "Witness",
		"location":         "Location",
		"date":             "Date",
		"time":             "Time",
		"rehearsal":        "Rehearsal",
		"reception":        "Reception",
		"vigil":            "Vigil",
		"committal":        "Committal",
		"deceased":         "Deceased",
		"family_contact":   "Family Contact",
		"phone":            "Phone",
		"readings":         "Readings",
		"first_reading":    "First Reading",
		"psalm":            "Responsorial Psalm",
		"second_reading":   "Second Reading",
		"gospel":           "Gospel",
		"reader":           "Reader",
		"petitions":        "Universal Prayer",
		"petition_reply":   "Lord, hear our prayer.",
		"all":              "All",
		"announcements":    "Announcements",
		"notes":            "Notes",
		"baptisms":         "Baptisms",
		"child":            "Child",
		"mother":           "Mother",
		"father":           "Father",
		"godparent":        "Godparent",
		"ministers":        "Ministers",
		"intention":        "Mass Intention",
		"reading_end":      "The word of the Lord.",
		"reading_reply":    "Thanks be to God.",
		"gospel_end":       "The Gospel of the Lord.",
		"gospel_reply":     "Praise to you, Lord Jesus Christ.",
		"response":         "Response",
		"gospel_dialogue":  "The Lord be with you.",
		"gospel_dialogue2": "And with your spirit.",
	},
	constants.LanguageSpanish: {
		"wedding":          "Boda",
		"funeral":          "Funeral",
		"group_baptism":    "Bautismo Comunitario",
		"mass":             "Misa",
		"summary":          "Resumen",
		"details":          "Detalles",
		"bride":            "Novia",
		"groom":            "Novio",
		"presider":         "Celebrante",
		"homilist":         "Homilista",
		"coordinator":      "Coordinador",
		"lead_musician":    "Músico Principal",
		"witness":          "Testigo",
		"location":         "Lugar",
		"date":             "Fecha",
		"time":             "Hora",
		"rehearsal":        "Ensayo",
		"reception":        "Recepción",
		"vigil":            "Vigilia",
		"committal":        "Sepultura",
		"deceased":         "Difunto",
		"family_contact":   "Contacto Familiar",
		"phone":            "Teléfono",
		"readings":         "Lecturas",
		"first_reading":    "Primera Lectura",
		"psalm":            "Salmo Responsorial",
		"second_reading":   "Segunda Lectura",
		"gospel":           "Evangelio",
		"reader":           "Lector",
		"petitions":        "Oración Universal",
		"petition_reply":   "Te rogamos, óyenos.",
		"all":              "Todos",
		"announcements":    "Anuncios",
		"notes":            "Notas",
		"baptisms":         "Bautismos",
		"child":            "Niño",
		"mother":           "Madre",
		"father":           "Padre",
		"godparent":        "Padrino",
		"ministers":        "Ministros",
		"intention":        "Intención de la Misa",
		"reading_end":      "Palabra de Dios.",
		"reading_reply":    "Te alabamos, Señor.",
		"gospel_end":       "Palabra del Señor.",
		"gospel_reply":     "Gloria a ti, Señor Jesús.",
		"response":         "Respuesta",
		"gospel_dialogue":  "El Señor esté con ustedes.",
		"gospel_dialogue2": "Y con tu espíritu.",
	},
}

// label returns the text for key in language, falling back to English and
// then to the key itself.
func label(language, key string) string {
	if value, ok := labels[constants.NormaliseLanguage(language)][key]; ok {
		return value
	}
	if value, ok := labels[constants.LanguageEnglish][key]; ok {
		return value
	}
	return key
}
