// Package placeholders substitutes {{...}} tokens in script text with values
// resolved from an event's fields.
//
// Resolution never fails: any token that cannot be resolved is replaced by
// the literal marker "empty" so incomplete data stays visible in print.
package placeholders

import (
	"regexp"
	"sort"
	"strings"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/formatters"
)

var tokenPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Content bodies may embed placeholders of their own; they are expanded one
// level deep.
const maxContentDepth = 1

// ReplaceFields replaces every placeholder in content using fields.
func ReplaceFields(content string, fields ResolvedFields) string {
	return Replace(content, &Context{Fields: fields})
}

// Replace replaces every placeholder in content using ctx.
func Replace(content string, ctx *Context) string {
	if content == "" {
		return ""
	}
	if ctx == nil {
		ctx = &Context{}
	}
	return replace(content, ctx, 0)
}

// Tokens lists the trimmed inner text of each placeholder in content, in order
// of appearance.
func Tokens(content string) []string {
	matches := tokenPattern.FindAllStringSubmatch(content, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, strings.TrimSpace(match[1]))
	}
	return tokens
}

func replace(content string, ctx *Context, depth int) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(match string) string {
		inner := match[2 : len(match)-2]
		if value := resolveToken(inner, ctx, depth); value != "" {
			return value
		}
		return constants.EmptyValue
	})
}

func resolveToken(inner string, ctx *Context, depth int) string {
	if parts := strings.Split(inner, "|"); len(parts) == 3 {
		return resolveGendered(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), ctx)
	}

	name := strings.TrimSpace(inner)
	if field, ok := ctx.Fields[name]; ok {
		return resolveField(field, "", ctx, depth)
	}

	base, prop := splitName(name)
	if base == "parish" && prop != "" {
		return resolveParish(ctx.Parish, prop)
	}

	field, ok := ctx.Fields[base]
	if !ok {
		return ""
	}
	return resolveField(field, prop, ctx, depth)
}

func splitName(name string) (string, string) {
	base, prop, found := strings.Cut(name, ".")
	if !found {
		return name, ""
	}
	return strings.TrimSpace(base), strings.TrimSpace(prop)
}

// resolveField applies the fixed field-type table. An empty result means the
// value is missing.
func resolveField(field ResolvedField, prop string, ctx *Context, depth int) string {
	resolved := field.ResolvedValue

	switch field.FieldType {
	case constants.FieldTypePerson:
		return property(resolved, defaultProp(prop, "full_name"))

	case constants.FieldTypeDate:
		raw := strings.TrimSpace(stringify(field.RawValue))
		if raw == "" {
			return ""
		}
		return formatters.DatePrettyIn(raw, ctx.Language)

	case constants.FieldTypeLocation, constants.FieldTypeGroup:
		return property(resolved, defaultProp(prop, "name"))

	case constants.FieldTypeEventLink:
		if resolved == nil {
			return ""
		}
		if prop != "" {
			return property(resolved, prop)
		}
		if record, ok := resolved.(map[string]interface{}); ok {
			if name := property(record, "name"); name != "" {
				return name
			}
			if title := property(record, "title"); title != "" {
				return title
			}
		}
		return strings.TrimSpace(stringify(resolved))

	case constants.FieldTypeListItem:
		return property(resolved, "value")

	case constants.FieldTypeDocument:
		return property(resolved, defaultProp(prop, "file_name"))

	case constants.FieldTypeContent:
		if prop == "title" {
			return property(resolved, "title")
		}
		body := property(resolved, "body")
		if body != "" && depth < maxContentDepth {
			body = replace(body, ctx, depth+1)
		}
		return body

	case constants.FieldTypePetition:
		return property(resolved, "text")

	case constants.FieldTypeCalendarEvent:
		return resolveCalendarEvent(resolved, prop, ctx.Language)
	}

	if isBlank(field.RawValue) {
		return ""
	}
	return stringify(field.RawValue)
}

func resolveCalendarEvent(resolved interface{}, prop, language string) string {
	switch prop {
	case "date":
		return formatters.DatePrettyIn(property(resolved, "date"), language)
	case "time":
		return formatters.Time(property(resolved, "time"))
	case "location", "name":
		return property(resolved, prop)
	case "":
		date := property(resolved, "date")
		if date == "" {
			return ""
		}
		return formatters.DatePrettyIn(date, language)
	}
	return ""
}

func resolveGendered(fieldName, male, female string, ctx *Context) string {
	fallback := male + "/" + female
	base, _ := splitName(fieldName)

	field, ok := ctx.Fields[base]
	if !ok || field.FieldType != constants.FieldTypePerson {
		return fallback
	}

	switch strings.ToUpper(property(field.ResolvedValue, "sex")) {
	case "MALE", "M":
		return male
	case "FEMALE", "F":
		return female
	}
	return fallback
}

func resolveParish(parish *Parish, prop string) string {
	if parish == nil {
		return ""
	}
	switch prop {
	case "name":
		return strings.TrimSpace(parish.Name)
	case "city":
		return strings.TrimSpace(parish.City)
	case "state":
		return strings.TrimSpace(parish.State)
	case "city_state":
		city := strings.TrimSpace(parish.City)
		state := strings.TrimSpace(parish.State)
		switch {
		case city != "" && state != "":
			return city + ", " + state
		case city != "":
			return city
		default:
			return state
		}
	}
	return ""
}

func defaultProp(prop, fallback string) string {
	if prop == "" {
		return fallback
	}
	return prop
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return text == ""
	}
	return false
}

// FirstOfType resolves the first field of fieldType, taking property names in
// sorted order. It returns an empty string when no such field has a value.
func FirstOfType(ctx *Context, fieldType string) string {
	if ctx == nil || len(ctx.Fields) == 0 {
		return ""
	}
	names := make([]string, 0, len(ctx.Fields))
	for name, field := range ctx.Fields {
		if field.FieldType == fieldType {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if value := resolveField(ctx.Fields[name], "", ctx, 0); value != "" {
			return value
		}
	}
	return ""
}

// Value resolves a single token such as "bride" or "bride.first_name" and
// returns "" instead of the empty marker when nothing resolves.
func Value(ctx *Context, token string) string {
	if ctx == nil {
		return ""
	}
	return strings.TrimSpace(resolveToken(token, ctx, 0))
}
