package constants

import "strings"

// Input field types supported on an event type.
const (
	FieldTypeText          = "text"
	FieldTypeRichText      = "rich_text"
	FieldTypeNumber        = "number"
	FieldTypeYesNo         = "yes_no"
	FieldTypeDate          = "date"
	FieldTypeTime          = "time"
	FieldTypeDateTime      = "datetime"
	FieldTypePerson        = "person"
	FieldTypeLocation      = "location"
	FieldTypeGroup         = "group"
	FieldTypeListItem      = "list_item"
	FieldTypeDocument      = "document"
	FieldTypeEventLink     = "event_link"
	FieldTypeContent       = "content"
	FieldTypePetition      = "petition"
	FieldTypeCalendarEvent = "calendar_event"
	FieldTypeMassIntention = "mass-intention"
	// FieldTypeSpacer is a layout-only field; it never stores a value.
	FieldTypeSpacer = "spacer"
)

var fieldTypes = []string{
	FieldTypeText,
	FieldTypeRichText,
	FieldTypeNumber,
	FieldTypeYesNo,
	FieldTypeDate,
	FieldTypeTime,
	FieldTypeDateTime,
	FieldTypePerson,
	FieldTypeLocation,
	FieldTypeGroup,
	FieldTypeListItem,
	FieldTypeDocument,
	FieldTypeEventLink,
	FieldTypeContent,
	FieldTypePetition,
	FieldTypeCalendarEvent,
	FieldTypeMassIntention,
	FieldTypeSpacer,
}

// FieldTypes returns the supported field types in display order.
func FieldTypes() []string {
	out := make([]string, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

// NormaliseFieldType lowercases and trims value and reports whether it is a
// supported field type.
func NormaliseFieldType(value string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range fieldTypes {
		if candidate == normalized {
			return normalized, true
		}
	}
	return normalized, false
}

// IsReferenceFieldType reports whether values of the type are identifiers of
// other records rather than free text.
func IsReferenceFieldType(fieldType string) bool {
	switch fieldType {
	case FieldTypePerson, FieldTypeLocation, FieldTypeGroup, FieldTypeListItem,
		FieldTypeDocument, FieldTypeEventLink, FieldTypeContent, FieldTypePetition,
		FieldTypeCalendarEvent:
		return true
	default:
		return false
	}
}
