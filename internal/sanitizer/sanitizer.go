// Package sanitizer strips markup from user-entered text before it is stored.
//
// Rich text keeps two protected syntaxes intact: liturgical color spans
// ({red}...{/red}) and double-brace placeholders ({{...}}). Both are swapped
// for opaque keys before tag stripping and restored verbatim afterwards.
package sanitizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
)

var (
	tagPattern         = regexp.MustCompile(`<[^>]*>`)
	richTagPattern     = regexp.MustCompile(`<[^>\x{E000}\x{E001}]*>`)
	redSpanPattern     = regexp.MustCompile(`(?s)\{red\}.*?\{/red\}`)
	placeholderPattern = regexp.MustCompile(`\{\{[^}]+\}\}`)
)

// Keys are wrapped in private-use runes and carry a per-call salt that does
// not occur in the input, so typed text can never collide with a key. Tags
// are not allowed to span a key.
const (
	keyOpen  = "\uE000"
	keyClose = "\uE001"
)

// TextInput removes every HTML-like tag and trims the result.
func TextInput(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(input, ""))
}

// RichText removes HTML tags while leaving {red}...{/red} spans and
// {{...}} placeholders byte-for-byte unchanged.
func RichText(input string) string {
	if input == "" {
		return ""
	}

	shield := newShield(input)
	protected := shield.protect(input, redSpanPattern)
	protected = shield.protect(protected, placeholderPattern)

	stripped := richTagPattern.ReplaceAllString(protected, "")
	return strings.TrimSpace(shield.restore(stripped))
}

// SectionContent sanitizes the body of a script section.
func SectionContent(input string) string {
	return RichText(input)
}

// FieldValues sanitizes free-text event field values according to their
// declared type. Reference fields store identifiers and pass through
// untouched. String values without a definition are treated as plain text.
func FieldValues(values map[string]interface{}, definitions []models.InputFieldDefinition) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(values))
	if len(values) == 0 {
		return sanitized
	}

	types := make(map[string]string, len(definitions))
	for _, def := range definitions {
		types[def.PropertyName] = def.Type
	}

	for key, value := range values {
		text, isString := value.(string)
		if !isString {
			sanitized[key] = value
			continue
		}

		fieldType, declared := types[key]
		if !declared {
			fieldType = constants.FieldTypeText
		}

		switch fieldType {
		case constants.FieldTypeRichText, constants.FieldTypeMassIntention:
			sanitized[key] = RichText(text)
		case constants.FieldTypeText:
			sanitized[key] = TextInput(text)
		default:
			sanitized[key] = text
		}
	}

	return sanitized
}

// shield holds the protected fragments of a single sanitize call.
type shield struct {
	salt      string
	next      int
	fragments map[string]string
	order     []string
}

func newShield(input string) *shield {
	salt := uuid.NewString()[:8]
	for strings.Contains(input, keyOpen+salt) {
		salt = uuid.NewString()[:8]
	}
	return &shield{salt: salt, fragments: make(map[string]string)}
}

func (s *shield) protect(input string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(input, func(match string) string {
		key := fmt.Sprintf("%s%s:%d%s", keyOpen, s.salt, s.next, keyClose)
		s.next++
		s.fragments[key] = match
		s.order = append(s.order, key)
		return key
	})
}

// restore runs in reverse so fragments protected later (which may contain
// earlier keys) are expanded first.
func (s *shield) restore(input string) string {
	out := input
	for i := len(s.order) - 1; i >= 0; i-- {
		key := s.order[i]
		out = strings.ReplaceAll(out, key, s.fragments[key])
	}
	return out
}
