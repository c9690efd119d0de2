// Package formatters turns stored dates, times and flags into the strings
// printed on liturgical documents.
package formatters

import (
	"fmt"
	"strings"
	"time"

	"parish-liturgy-backend/internal/constants"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
	"agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// ParseDate accepts a calendar date or timestamp.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DatePretty formats a stored date as "December 25, 2025". Values that are
// not dates are returned trimmed and unchanged.
func DatePretty(value string) string {
	return DatePrettyIn(value, constants.LanguageEnglish)
}

// DatePrettyIn formats a stored date for the given language.
func DatePrettyIn(value, language string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	if constants.NormaliseLanguage(language) == constants.LanguageSpanish {
		return fmt.Sprintf("%d de %s de %d", parsed.Day(), spanishMonths[parsed.Month()-1], parsed.Year())
	}
	return parsed.Format("January 2, 2006")
}

// DateLong includes the weekday: "Thursday, December 25, 2025".
func DateLong(value, language string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	if constants.NormaliseLanguage(language) == constants.LanguageSpanish {
		return fmt.Sprintf("%s, %d de %s de %d", spanishWeekdays[parsed.Weekday()], parsed.Day(), spanishMonths[parsed.Month()-1], parsed.Year())
	}
	return parsed.Format("Monday, January 2, 2006")
}

// Time converts a 24-hour "14:30:00" value into "2:30 PM". Empty input yields
// an empty string and unparseable input is returned unchanged.
func Time(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("3:04 PM")
		}
	}
	return trimmed
}

// DateTime joins a pretty date and a formatted time with " at " (or " a las "
// in Spanish). Either half may be missing.
func DateTime(date, clock, language string) string {
	datePart := ""
	if strings.TrimSpace(date) != "" {
		datePart = DateLong(date, language)
	}
	timePart := Time(clock)

	switch {
	case datePart != "" && timePart != "":
		if constants.NormaliseLanguage(language) == constants.LanguageSpanish {
			return datePart + " a las " + timePart
		}
		return datePart + " at " + timePart
	case datePart != "":
		return datePart
	default:
		return timePart
	}
}

// DateTimestamp formats a full timestamp value such as "2025-12-25T14:30:00Z".
func DateTimestamp(value, language string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	return DateTime(parsed.Format("2006-01-02"), parsed.Format("15:04:05"), language)
}

// DateForFilename returns "20251225", or "NoDate" when value is not a date.
func DateForFilename(value string) string {
	parsed, ok := ParseDate(value)
	if !ok {
		return "NoDate"
	}
	return parsed.Format("20060102")
}

// YesNo renders a boolean-like stored value for display.
func YesNo(value interface{}, language string) string {
	truthy := false
	switch v := value.(type) {
	case bool:
		truthy = v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "si", "sí":
			truthy = true
		}
	case float64:
		truthy = v != 0
	case int:
		truthy = v != 0
	}

	spanish := constants.NormaliseLanguage(language) == constants.LanguageSpanish
	switch {
	case truthy && spanish:
		return "Sí"
	case truthy:
		return "Yes"
	default:
		return "No"
	}
}
