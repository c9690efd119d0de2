package liturgy

import (
	"fmt"
	"html"
	"strings"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/markdown"
)

const defaultClassPrefix = "liturgy"

// HTMLRenderer renders documents for screen and print views.
type HTMLRenderer struct {
	registry *Registry
	markdown *markdown.Renderer
	prefix   string
}

func NewHTMLRenderer(registry *Registry, md *markdown.Renderer) *HTMLRenderer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if md == nil {
		md = markdown.NewRenderer()
	}
	return &HTMLRenderer{registry: registry, markdown: md, prefix: defaultClassPrefix}
}

func (r *HTMLRenderer) RenderMarkdown(input string) string {
	return r.markdown.ToHTML(input)
}

// Render returns the document as an HTML fragment. Elements without a
// registered renderer are skipped.
func (r *HTMLRenderer) Render(doc *Document) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<article class="%s %s--%s" lang="%s">`, r.prefix, r.prefix, escape(doc.Type), escape(doc.Language))

	sb.WriteString(`<header class="` + r.prefix + `__header">`)
	sb.WriteString(`<h1 class="` + r.prefix + `__title">` + escape(doc.Title) + `</h1>`)
	if doc.Subtitle != "" {
		sb.WriteString(`<p class="` + r.prefix + `__subtitle">` + escape(doc.Subtitle) + `</p>`)
	}
	sb.WriteString(`</header>`)

	for _, section := range doc.Sections {
		sb.WriteString(`<section class="` + r.prefix + `__section"`)
		if section.ID != "" {
			sb.WriteString(` id="` + escape(section.ID) + `"`)
		}
		if style := pageBreakStyle(section); style != "" {
			sb.WriteString(` style="` + style + `"`)
		}
		sb.WriteString(`>`)

		for _, element := range section.Elements {
			renderer, ok := r.registry.Get(element.ElementType())
			if !ok {
				continue
			}
			sb.WriteString(renderer(r, r.prefix, element))
		}

		sb.WriteString(`</section>`)
	}

	sb.WriteString(`</article>`)
	return sb.String()
}

func pageBreakStyle(section Section) string {
	var rules []string
	if section.PageBreakBefore {
		rules = append(rules, "page-break-before: always")
	}
	if section.PageBreakAfter {
		rules = append(rules, "page-break-after: always")
	}
	return strings.Join(rules, "; ")
}

func escape(value string) string {
	return html.EscapeString(value)
}

func renderEventTitle(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(EventTitle)
	return `<h2 class="` + prefix + `__event-title">` + escape(e.Text) + `</h2>`
}

func renderEventDateTime(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(EventDateTime)
	return `<p class="` + prefix + `__event-datetime">` + escape(e.Text) + `</p>`
}

func renderSectionTitle(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(SectionTitle)
	return `<h3 class="` + prefix + `__section-title">` + escape(e.Text) + `</h3>`
}

func renderText(ctx RenderContext, prefix string, element Element) string {
	e, _ := element.(Text)
	class := prefix + "__text"
	style := ""
	if e.Rubric {
		class += " " + prefix + "__text--rubric"
		style = ` style="color: ` + constants.LiturgicalRed + `"`
	}
	if e.Alignment == "center" || e.Alignment == "right" {
		class += " " + prefix + "__text--" + e.Alignment
	}
	return `<div class="` + class + `"` + style + `>` + ctx.RenderMarkdown(e.Text) + `</div>`
}

func renderInfoRow(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(InfoRow)
	return `<div class="` + prefix + `__info-row"><span class="` + prefix + `__info-label">` + escape(e.Label) +
		`</span><span class="` + prefix + `__info-value">` + escape(e.Value) + `</span></div>`
}

func renderInfoRowWithAvatar(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(InfoRowWithAvatar)
	size := e.AvatarSize
	if size <= 0 {
		size = DefaultAvatarSize
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__info-row ` + prefix + `__info-row--avatar">`)
	if e.AvatarURL != "" {
		fmt.Fprintf(&sb, `<img class="%s__avatar" src="%s" alt="%s" width="%d" height="%d">`,
			prefix, escape(e.AvatarURL), escape(e.Value), size, size)
	}
	sb.WriteString(`<span class="` + prefix + `__info-label">` + escape(e.Label) + `</span>`)
	sb.WriteString(`<span class="` + prefix + `__info-value">` + escape(e.Value) + `</span>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderSpacer(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(Spacer)
	size := e.Size
	switch size {
	case SpacerSmall, SpacerMedium, SpacerLarge:
	default:
		size = SpacerMedium
	}
	return `<div class="` + prefix + `__spacer ` + prefix + `__spacer--` + string(size) + `" aria-hidden="true"></div>`
}

func renderReadingTitle(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(ReadingTitle)
	return `<h4 class="` + prefix + `__reading-title">` + escape(e.Text) + `</h4>`
}

func renderPericope(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(Pericope)
	return `<p class="` + prefix + `__pericope">` + escape(e.Text) + `</p>`
}

func renderReaderName(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(ReaderName)
	return `<p class="` + prefix + `__reader-name">` + escape(e.Text) + `</p>`
}

func renderReadingText(ctx RenderContext, prefix string, element Element) string {
	e, _ := element.(ReadingText)
	return `<div class="` + prefix + `__reading-text">` + ctx.RenderMarkdown(e.Text) + `</div>`
}

func renderResponse(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(Response)
	return `<p class="` + prefix + `__response"><strong>` + escape(e.Label) + `:</strong> ` + escape(e.Text) + `</p>`
}

func renderPriestDialogue(_ RenderContext, prefix string, element Element) string {
	e, _ := element.(PriestDialogue)
	return `<p class="` + prefix + `__priest-dialogue">` + escape(e.Text) + `</p>`
}

func renderPetition(ctx RenderContext, prefix string, element Element) string {
	e, _ := element.(Petition)
	return `<div class="` + prefix + `__petition">` + ctx.RenderMarkdown(e.Text) + `</div>`
}
