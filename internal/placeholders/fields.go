package placeholders

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ResolvedField pairs a stored field value with the record it refers to.
// ResolvedValue is nil when the reference could not be resolved.
type ResolvedField struct {
	FieldType     string      `json:"field_type"`
	RawValue      interface{} `json:"raw_value"`
	ResolvedValue interface{} `json:"resolved_value"`
}

// ResolvedFields is keyed by the field's property name.
type ResolvedFields map[string]ResolvedField

// Parish carries the data behind the parish.* computed tokens.
type Parish struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Context is everything a template needs at render time.
type Context struct {
	Fields   ResolvedFields `json:"fields"`
	Parish   *Parish        `json:"parish,omitempty"`
	Language string         `json:"language,omitempty"`
}

// Entity is implemented by records that expose display properties by name.
type Entity interface {
	Property(name string) (string, bool)
}

// property reads a named property from a resolved value. Decoded JSON maps
// are accepted alongside typed records.
func property(value interface{}, name string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case Entity:
		out, _ := v.Property(name)
		return strings.TrimSpace(out)
	case map[string]interface{}:
		return strings.TrimSpace(stringify(v[name]))
	case map[string]string:
		return strings.TrimSpace(v[name])
	}
	return ""
}

// stringify mirrors how raw scalar values are printed in documents.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
	return fmt.Sprint(value)
}
