package liturgy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/formatters"
	"parish-liturgy-backend/internal/markdown"
)

// TextRenderer renders documents as plain text with centered titles.
type TextRenderer struct {
	width int
}

func NewTextRenderer(width int) *TextRenderer {
	if width <= 0 {
		width = constants.DefaultTextWidth
	}
	return &TextRenderer{width: width}
}

// Render writes the document as plain text. Sections flagged with a page
// break get the page break marker, except before the first and after the
// last section.
func (r *TextRenderer) Render(doc *Document) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder
	upper := cases.Upper(language.Und)

	if title := strings.TrimSpace(doc.Title); title != "" {
		b.WriteString(formatters.Center(upper.String(title), r.width))
		b.WriteString("\n")
	}
	if subtitle := strings.TrimSpace(doc.Subtitle); subtitle != "" {
		b.WriteString(formatters.Center(subtitle, r.width))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("=", r.width))
	b.WriteString("\n")

	for i, section := range doc.Sections {
		breakBefore := section.PageBreakBefore || (i > 0 && doc.Sections[i-1].PageBreakAfter)
		if i > 0 && breakBefore {
			b.WriteString("\n")
			b.WriteString(constants.PageBreakMarker)
			b.WriteString("\n")
		}
		b.WriteString("\n")

		for _, element := range section.Elements {
			r.writeElement(&b, upper, element)
		}
	}

	return b.String()
}

func (r *TextRenderer) writeElement(b *strings.Builder, upper cases.Caser, element Element) {
	line := func(text string) {
		b.WriteString(text)
		b.WriteString("\n")
	}

	switch e := element.(type) {
	case EventTitle:
		line(formatters.Center(upper.String(e.Text), r.width))
	case EventDateTime:
		line(formatters.Center(e.Text, r.width))
	case SectionTitle:
		line("")
		line(formatters.Center(e.Text, r.width))
		line(formatters.Center(formatters.Underline(e.Text, "-"), r.width))
		line("")
	case ReadingTitle:
		line(upper.String(e.Text))
	case Pericope, ReaderName, PriestDialogue:
		line(textOf(e))
	case Text:
		line(markdown.ToText(e.Text))
	case ReadingText:
		line("")
		line(markdown.ToText(e.Text))
		line("")
	case Petition:
		line(markdown.ToText(e.Text))
	case Response:
		line(e.Label + ": " + e.Text)
	case InfoRow:
		line(e.Label + ": " + e.Value)
	case InfoRowWithAvatar:
		line(e.Label + ": " + e.Value)
	case Spacer:
		switch e.Size {
		case SpacerSmall:
		case SpacerLarge:
			line("")
			line("")
		default:
			line("")
		}
	}
}

func textOf(element Element) string {
	switch e := element.(type) {
	case Pericope:
		return e.Text
	case ReaderName:
		return e.Text
	case PriestDialogue:
		return e.Text
	}
	return ""
}
