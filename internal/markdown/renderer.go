// Package markdown converts resolved script text to HTML or plain text and
// translates the {red}...{/red} liturgical emphasis syntax for each target.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"parish-liturgy-backend/internal/constants"
)

var (
	// redSourcePattern matches spans in markdown source.
	redSourcePattern = regexp.MustCompile(`(?s)\{red\}(.*?)\{/red\}`)
	// redHTMLPattern matches spans in rendered HTML. A span may continue over
	// hard-wrapped lines but never crosses a block boundary.
	redHTMLPattern = regexp.MustCompile(`\{red\}((?:[^\n]|<br>\n)*?)\{/red\}`)
	blankLine      = regexp.MustCompile(`\n[ \t]*\n`)
)

// Renderer is safe for concurrent use once constructed.
type Renderer struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	redColor string
}

type Option func(*Renderer)

// WithRedColor overrides the color used for {red} spans.
func WithRedColor(color string) Option {
	return func(r *Renderer) {
		if color != "" {
			r.redColor = color
		}
	}
}

func NewRenderer(opts ...Option) *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("style").OnElements("span")

	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		policy:   policy,
		redColor: constants.LiturgicalRed,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ToHTML converts markdown to sanitized HTML with {red} spans colored.
// It never fails: if conversion errors, the escaped source is returned as a
// single paragraph.
func (r *Renderer) ToHTML(content string) string {
	if content == "" {
		return ""
	}

	source := splitRedParagraphs(content)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "<p>" + html.EscapeString(content) + "</p>"
	}

	colored := redHTMLPattern.ReplaceAllString(buf.String(), r.redSpan("$1"))
	return r.policy.Sanitize(colored)
}

func (r *Renderer) redSpan(inner string) string {
	return fmt.Sprintf(`<span style="color: %s">%s</span>`, r.redColor, inner)
}

// splitRedParagraphs closes and reopens a span at every blank line inside it
// so each paragraph carries its own span.
func splitRedParagraphs(content string) string {
	return redSourcePattern.ReplaceAllStringFunc(content, func(span string) string {
		inner := span[len("{red}") : len(span)-len("{/red}")]
		if !blankLine.MatchString(inner) {
			return span
		}
		return "{red}" + blankLine.ReplaceAllStringFunc(inner, func(sep string) string {
			return "{/red}" + sep + "{red}"
		}) + "{/red}"
	})
}
