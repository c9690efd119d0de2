package utils

import "strings"

const defaultDocumentName = "document"

// DocumentFilename builds a download name such as
// "Smith-Wedding-Ceremony-20251225.txt". Empty parts are skipped, letter case
// is kept and every run of other characters collapses into a single dash.
func DocumentFilename(ext string, parts ...string) string {
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		cleaned := filenamePattern.ReplaceAllString(foldDiacritics(part), "-")
		cleaned = strings.Trim(cleaned, "-")
		if cleaned != "" {
			words = append(words, cleaned)
		}
	}

	name := strings.Join(words, "-")
	if name == "" {
		name = defaultDocumentName
	}

	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}
