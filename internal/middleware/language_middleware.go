package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"parish-liturgy-backend/internal/constants"
)

const LanguageContextKey = "language"

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
})

// ResolveLanguage picks "en" or "es" from an explicit code, then the
// Accept-Language header, then fallback.
func ResolveLanguage(explicit, acceptHeader, fallback string) string {
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			if lang, ok := matchLanguage(tag); ok {
				return lang
			}
		}
	}

	if acceptHeader != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptHeader); err == nil && len(tags) > 0 {
			if lang, ok := matchLanguage(tags...); ok {
				return lang
			}
		}
	}

	return constants.NormaliseLanguage(fallback)
}

func matchLanguage(tags ...language.Tag) (string, bool) {
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	if index == 1 {
		return constants.LanguageSpanish, true
	}
	return constants.LanguageEnglish, true
}

// LanguageNegotiationMiddleware stores the liturgy language for the request
// under LanguageContextKey, using the "lang" query parameter or the
// Accept-Language header.
func LanguageNegotiationMiddleware(defaultLanguage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ResolveLanguage(c.Query("lang"), c.GetHeader("Accept-Language"), defaultLanguage)
		c.Set(LanguageContextKey, lang)
		c.Writer.Header().Set("Content-Language", lang)
		c.Next()
	}
}
