package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern     = regexp.MustCompile("[^a-z0-9]+")
	filenamePattern = regexp.MustCompile("[^A-Za-z0-9]+")
)

// GenerateSlug lowercases text, folds diacritics and joins words with dashes.
func GenerateSlug(text string) string {
	text = strings.ToLower(foldDiacritics(text))
	text = slugPattern.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

func foldDiacritics(text string) string {
	text = strings.NewReplacer("ñ", "n", "Ñ", "N", "ß", "ss").Replace(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
