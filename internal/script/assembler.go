// Package script assembles a script's sections into rendered output.
package script

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/markdown"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
)

// ProcessedSection is one section rendered to HTML, in render order.
type ProcessedSection struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	HTMLContent    string    `json:"html_content"`
	PageBreakAfter bool      `json:"page_break_after"`
	Order          int       `json:"order"`
	SectionType    string    `json:"section_type"`
}

// SegmentedSection carries red/plain runs of a section for document
// generators that apply their own styling.
type SegmentedSection struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	PageBreakAfter bool                   `json:"page_break_after"`
	Order          int                    `json:"order"`
	Segments       []markdown.TextSegment `json:"segments"`
}

// Assembler holds no per-render state and may be shared.
type Assembler struct {
	renderer  *markdown.Renderer
	textWidth int
}

type Option func(*Assembler)

func WithRenderer(renderer *markdown.Renderer) Option {
	return func(a *Assembler) {
		if renderer != nil {
			a.renderer = renderer
		}
	}
}

// WithTextWidth sets the column width used to center text headings.
func WithTextWidth(width int) Option {
	return func(a *Assembler) {
		if width > 0 {
			a.textWidth = width
		}
	}
}

func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		renderer:  markdown.NewRenderer(),
		textWidth: constants.DefaultTextWidth,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SortSections returns a copy of sections ordered by Order. Sections with
// equal Order keep their original relative position.
func SortSections(sections []models.Section) []models.Section {
	ordered := make([]models.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

// ProcessSection substitutes placeholders and then renders markdown. The
// order matters: resolved values must never be parsed as markdown.
func (a *Assembler) ProcessSection(content string, ctx *placeholders.Context) string {
	return a.renderer.ToHTML(placeholders.Replace(content, ctx))
}

// Process renders every section of a script to HTML in render order.
func (a *Assembler) Process(sections []models.Section, ctx *placeholders.Context) []ProcessedSection {
	ordered := SortSections(sections)
	processed := make([]ProcessedSection, 0, len(ordered))

	for _, section := range ordered {
		sectionType := constants.NormaliseSectionType(section.SectionType)

		var content string
		if sectionType == constants.SectionTypePetition {
			content = a.petitionHTML(section, ctx)
		} else {
			content = a.ProcessSection(section.Content, ctx)
		}

		processed = append(processed, ProcessedSection{
			ID:             section.ID,
			Name:           section.Name,
			HTMLContent:    content,
			PageBreakAfter: section.PageBreakAfter,
			Order:          section.Order,
			SectionType:    sectionType,
		})
	}

	return processed
}

// Segments renders every section into red/plain text runs.
func (a *Assembler) Segments(sections []models.Section, ctx *placeholders.Context) []SegmentedSection {
	ordered := SortSections(sections)
	out := make([]SegmentedSection, 0, len(ordered))

	for _, section := range ordered {
		out = append(out, SegmentedSection{
			ID:             section.ID,
			Name:           section.Name,
			PageBreakAfter: section.PageBreakAfter,
			Order:          section.Order,
			Segments:       markdown.Segments(a.sectionSource(section, ctx, constants.NoPetitionsText)),
		})
	}

	return out
}

func (a *Assembler) petitionHTML(section models.Section, ctx *placeholders.Context) string {
	petitions := placeholders.FirstOfType(ctx, constants.FieldTypePetition)

	var b strings.Builder
	if strings.TrimSpace(section.Content) != "" {
		b.WriteString(a.ProcessSection(section.Content, ctx))
	}
	if petitions == "" {
		b.WriteString(constants.NoPetitionsHTML)
	} else {
		b.WriteString(a.renderer.ToHTML(petitions))
	}
	return b.String()
}

// sectionSource returns the placeholder-resolved source of a section,
// appending the event's petitions to petition sections.
func (a *Assembler) sectionSource(section models.Section, ctx *placeholders.Context, noPetitions string) string {
	resolved := placeholders.Replace(section.Content, ctx)
	if constants.NormaliseSectionType(section.SectionType) != constants.SectionTypePetition {
		return resolved
	}

	petitions := placeholders.FirstOfType(ctx, constants.FieldTypePetition)
	if petitions == "" {
		petitions = noPetitions
	}
	if strings.TrimSpace(resolved) == "" {
		return petitions
	}
	return resolved + "\n\n" + petitions
}
