package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"parish-liturgy-backend/internal/constants"
)

var (
	propertyNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	spacePattern        = regexp.MustCompile(`\s+`)
)

// Init registers the custom rules on gin's binding validator.
func Init() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("property_name", validatePropertyName)
	v.RegisterValidation("field_type", validateFieldType)
	v.RegisterValidation("no_html", validateNoHTML)
}

// ValidPropertyName reports whether name can be used inside a {{placeholder}}.
func ValidPropertyName(name string) bool {
	return len(name) <= 64 && propertyNamePattern.MatchString(name)
}

func NormalizeSpaces(s string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
}

func validatePropertyName(fl validator.FieldLevel) bool {
	return ValidPropertyName(fl.Field().String())
}

func validateFieldType(fl validator.FieldLevel) bool {
	_, ok := constants.NormaliseFieldType(fl.Field().String())
	return ok
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}
