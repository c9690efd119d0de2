package constants

import "strings"

const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"

	ModuleWedding      = "wedding"
	ModuleFuneral      = "funeral"
	ModuleGroupBaptism = "group-baptism"
	ModuleMassRoster   = "mass-roster"
	ModuleEvent        = "event"

	DefaultWeddingTemplateID      = "wedding-full-script-english"
	DefaultFuneralTemplateID      = "funeral-full-script-english"
	DefaultGroupBaptismTemplateID = "group-baptism-summary-english"
	DefaultMassRosterTemplateID   = "mass-roster-english"
	SimpleEventScriptTemplateID   = "simple-event-script"
)

// NormaliseLanguage maps free-form language values to a supported code.
// Anything that is not recognisably Spanish is treated as English.
func NormaliseLanguage(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "es", "spanish", "espanol", "español":
		return LanguageSpanish
	default:
		return LanguageEnglish
	}
}
