package constants

const (
	// EmptyValue is substituted for placeholders that cannot be resolved.
	EmptyValue = "empty"

	// LiturgicalRed is the color used for rubrics and spoken instructions.
	LiturgicalRed = "#c41e3a"

	// DefaultTextWidth is the column width used to center headings in text exports.
	DefaultTextWidth = 70

	// PageBreakMarker separates sections flagged for a manual break in text exports.
	PageBreakMarker = "--- PAGE BREAK ---"

	SectionTypeText     = "text"
	SectionTypePetition = "petition"

	NoPetitionsHTML = "<p><em>No petitions have been added to this event.</em></p>"
	NoPetitionsText = "No petitions configured for this event."
)

// NormaliseSectionType returns a supported section type, defaulting to text.
func NormaliseSectionType(value string) string {
	if value == SectionTypePetition {
		return SectionTypePetition
	}
	return SectionTypeText
}
