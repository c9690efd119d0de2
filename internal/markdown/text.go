package markdown

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	strayRedPattern = regexp.MustCompile(`\{/?red\}`)
)

// ToText renders content for plain-text targets. Markdown syntax is kept as
// typed; {red} delimiters are dropped leaving their inner text; HTML tags are
// removed and entities decoded.
func ToText(content string) string {
	if content == "" {
		return ""
	}
	return strings.TrimSpace(cleanText(redSourcePattern.ReplaceAllString(content, "$1")))
}

func cleanText(content string) string {
	out := strayRedPattern.ReplaceAllString(content, "")
	out = tagPattern.ReplaceAllString(out, "")
	return strings.ReplaceAll(html.UnescapeString(out), "\u00a0", " ")
}

// TextSegment is a run of text that is either entirely red or entirely plain.
type TextSegment struct {
	Text  string `json:"text"`
	IsRed bool   `json:"is_red"`
}

// Segments splits content into alternating plain and red runs for document
// generators that style text themselves. Empty runs are dropped.
func Segments(content string) []TextSegment {
	segments := make([]TextSegment, 0)
	if content == "" {
		return segments
	}

	push := func(text string, red bool) {
		text = cleanText(text)
		if text == "" {
			return
		}
		segments = append(segments, TextSegment{Text: text, IsRed: red})
	}

	last := 0
	for _, loc := range redSourcePattern.FindAllStringSubmatchIndex(content, -1) {
		push(content[last:loc[0]], false)
		push(content[loc[2]:loc[3]], true)
		last = loc[1]
	}
	push(content[last:], false)

	return segments
}
