package script

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/formatters"
	"parish-liturgy-backend/internal/markdown"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
)

// TextHeader is printed above the first section of a text export.
type TextHeader struct {
	Title    string
	Subtitle string
}

// RenderText renders a script as plain text. Each section gets a centered,
// underlined heading; sections flagged PageBreakAfter are followed by a page
// break marker unless they are last.
func (a *Assembler) RenderText(header TextHeader, sections []models.Section, ctx *placeholders.Context) string {
	var b strings.Builder

	if title := strings.TrimSpace(header.Title); title != "" {
		upper := cases.Upper(language.Und).String(title)
		b.WriteString(formatters.Center(upper, a.textWidth))
		b.WriteString("\n")
		if subtitle := strings.TrimSpace(header.Subtitle); subtitle != "" {
			b.WriteString(formatters.Center(subtitle, a.textWidth))
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("=", a.textWidth))
		b.WriteString("\n\n")
	}

	ordered := SortSections(sections)
	for i, section := range ordered {
		a.writeHeading(&b, section.Name)

		body := markdown.ToText(a.sectionSource(section, ctx, constants.NoPetitionsText))
		if body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}

		if i == len(ordered)-1 {
			break
		}
		if section.PageBreakAfter {
			b.WriteString("\n")
			b.WriteString(constants.PageBreakMarker)
			b.WriteString("\n\n")
		} else {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func (a *Assembler) writeHeading(b *strings.Builder, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	b.WriteString(formatters.Center(name, a.textWidth))
	b.WriteString("\n")
	b.WriteString(formatters.Center(formatters.Underline(name, "-"), a.textWidth))
	b.WriteString("\n\n")
}
