package script

import (
	"bytes"
	"html/template"
	"strings"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
)

var pageTemplate = template.Must(template.New("script").Parse(`<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; max-width: 46rem; margin: 2rem auto; line-height: 1.5; }
header { text-align: center; margin-bottom: 2rem; }
.script-section h2 { text-align: center; }
.page-break { break-after: page; page-break-after: always; }
</style>
</head>
<body>
{{- if .Title}}
<header>
<h1>{{.Title}}</h1>
{{- if .Subtitle}}
<p>{{.Subtitle}}</p>
{{- end}}
</header>
{{- end}}
{{- range .Sections}}
<section class="script-section{{if .PageBreak}} page-break{{end}}" id="section-{{.ID}}">
{{- if .Name}}
<h2>{{.Name}}</h2>
{{- end}}
{{.Content}}
</section>
{{- end}}
</body>
</html>
`))

type pageSection struct {
	ID        string
	Name      string
	Content   template.HTML
	PageBreak bool
}

type pageData struct {
	Language string
	Title    string
	Subtitle string
	Sections []pageSection
}

// RenderHTMLPage renders a script as a standalone HTML document. Section
// bodies come from Process and are already sanitized. The last section never
// carries a page break.
func (a *Assembler) RenderHTMLPage(header TextHeader, sections []models.Section, ctx *placeholders.Context) (string, error) {
	processed := a.Process(sections, ctx)

	data := pageData{
		Language: constants.LanguageEnglish,
		Title:    strings.TrimSpace(header.Title),
		Subtitle: strings.TrimSpace(header.Subtitle),
		Sections: make([]pageSection, 0, len(processed)),
	}
	if ctx != nil {
		data.Language = constants.NormaliseLanguage(ctx.Language)
	}

	for i, section := range processed {
		data.Sections = append(data.Sections, pageSection{
			ID:        section.ID.String(),
			Name:      strings.TrimSpace(section.Name),
			Content:   template.HTML(section.HTMLContent),
			PageBreak: section.PageBreakAfter && i < len(processed)-1,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
