package script

import (
	"strings"
	"testing"

	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
)

func TestRenderHTMLPage(t *testing.T) {
	a := NewAssembler()
	sections := []models.Section{
		{Name: "Vows", Content: "I, {{groom}}, take you", Order: 1, PageBreakAfter: true},
		{Name: "Opening <Rite>", Content: "{red}Stand{/red}", Order: 0, PageBreakAfter: true},
	}
	ctx := &placeholders.Context{
		Language: "es",
		Fields: placeholders.ResolvedFields{
			"groom": {FieldType: "text", RawValue: "John"},
		},
	}

	page, err := a.RenderHTMLPage(TextHeader{Title: "Smith Wedding"}, sections, ctx)
	if err != nil {
		t.Fatalf("RenderHTMLPage() error = %v", err)
	}

	for _, want := range []string{
		`<html lang="es">`,
		"<h1>Smith Wedding</h1>",
		"<h2>Opening &lt;Rite&gt;</h2>",
		`<span style="color: #c41e3a">Stand</span>`,
		"I, John, take you",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected page to contain %q:\n%s", want, page)
		}
	}

	if strings.Index(page, "Opening") > strings.Index(page, "Vows") {
		t.Fatalf("expected sections in order")
	}
	if got := strings.Count(page, `script-section page-break"`); got != 1 {
		t.Fatalf("expected exactly one page break, got %d", got)
	}
}
