package placeholders

import (
	"testing"

	"parish-liturgy-backend/internal/constants"
	"parish-liturgy-backend/internal/models"
)

func TestReplaceFieldsUnknownFieldIsEmpty(t *testing.T) {
	if got := ReplaceFields("{{unknown_field}}", ResolvedFields{}); got != "empty" {
		t.Fatalf("expected empty marker, got %q", got)
	}
	if got := ReplaceFields("{{unknown_field}}", nil); got != "empty" {
		t.Fatalf("expected empty marker for nil fields, got %q", got)
	}
}

func TestReplaceFieldsPersonFromMap(t *testing.T) {
	fields := ResolvedFields{
		"bride": {FieldType: constants.FieldTypePerson, ResolvedValue: map[string]interface{}{"full_name": "Jane Doe"}},
	}
	if got := ReplaceFields("{{bride}}", fields); got != "Jane Doe" {
		t.Fatalf("expected Jane Doe, got %q", got)
	}
}

func TestReplaceFieldsTypeTable(t *testing.T) {
	bride := &models.Person{FirstName: "Jane", LastName: "Doe", Sex: "FEMALE"}
	groom := &models.Person{FirstName: "John", LastName: "Smith", Sex: "MALE"}

	fields := ResolvedFields{
		"bride":        {FieldType: constants.FieldTypePerson, RawValue: "p1", ResolvedValue: bride},
		"groom":        {FieldType: constants.FieldTypePerson, RawValue: "p2", ResolvedValue: groom},
		"missing":      {FieldType: constants.FieldTypePerson, RawValue: "p3"},
		"wedding_date": {FieldType: constants.FieldTypeDate, RawValue: "2025-06-14"},
		"no_date":      {FieldType: constants.FieldTypeDate},
		"church":       {FieldType: constants.FieldTypeLocation, ResolvedValue: &models.Location{Name: "St. Mary"}},
		"choir":        {FieldType: constants.FieldTypeGroup, ResolvedValue: &models.Group{Name: "Youth Choir"}},
		"linked":       {FieldType: constants.FieldTypeEventLink, ResolvedValue: &models.Event{Name: "Rehearsal"}},
		"linked_map":   {FieldType: constants.FieldTypeEventLink, ResolvedValue: map[string]interface{}{"name": "Reception"}},
		"linked_title": {FieldType: constants.FieldTypeEventLink, ResolvedValue: map[string]interface{}{"title": "Vigil"}},
		"linked_bare":  {FieldType: constants.FieldTypeEventLink, ResolvedValue: map[string]interface{}{"id": "abc", "start_date": "2025-12-25"}},
		"hymn":         {FieldType: constants.FieldTypeListItem, ResolvedValue: &models.ListItem{Value: "Ave Maria"}},
		"program":      {FieldType: constants.FieldTypeDocument, ResolvedValue: &models.Document{FileName: "program.pdf"}},
		"guests":       {FieldType: constants.FieldTypeNumber, RawValue: float64(120)},
		"unity":        {FieldType: constants.FieldTypeYesNo, RawValue: true},
		"blank":        {FieldType: constants.FieldTypeText, RawValue: ""},
		"notes":        {FieldType: constants.FieldTypeRichText, RawValue: "Bring rings"},
		"start":        {FieldType: constants.FieldTypeTime, RawValue: "14:30:00"},
	}

	cases := []struct {
		template string
		want     string
	}{
		{template: "{{bride}}", want: "Jane Doe"},
		{template: "{{ bride.first_name }}", want: "Jane"},
		{template: "{{groom.last_name}}", want: "Smith"},
		{template: "{{groom.full_name}}", want: "John Smith"},
		{template: "{{bride.nickname}}", want: "empty"},
		{template: "{{missing}}", want: "empty"},
		{template: "{{wedding_date}}", want: "June 14, 2025"},
		{template: "{{no_date}}", want: "empty"},
		{template: "{{church}}", want: "St. Mary"},
		{template: "{{choir}}", want: "Youth Choir"},
		{template: "{{linked}}", want: "Rehearsal"},
		{template: "{{linked_map}}", want: "Reception"},
		{template: "{{linked_title}}", want: "Vigil"},
		{template: "{{linked_bare}}", want: `{"id":"abc","start_date":"2025-12-25"}`},
		{template: "{{hymn}}", want: "Ave Maria"},
		{template: "{{program}}", want: "program.pdf"},
		{template: "{{guests}}", want: "120"},
		{template: "{{unity}}", want: "true"},
		{template: "{{blank}}", want: "empty"},
		{template: "{{notes}}", want: "Bring rings"},
		{template: "{{start}}", want: "14:30:00"},
	}

	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			if got := ReplaceFields(tc.template, fields); got != tc.want {
				t.Fatalf("ReplaceFields(%q) = %q, want %q", tc.template, got, tc.want)
			}
		})
	}
}

func TestReplaceGenderedForms(t *testing.T) {
	fields := ResolvedFields{
		"deceased": {FieldType: constants.FieldTypePerson, ResolvedValue: &models.Person{FirstName: "Ann", Sex: "FEMALE"}},
		"child":    {FieldType: constants.FieldTypePerson, ResolvedValue: &models.Person{FirstName: "Sam", Sex: "MALE"}},
		"sponsor":  {FieldType: constants.FieldTypePerson, ResolvedValue: &models.Person{FirstName: "Lee"}},
		"notes":    {FieldType: constants.FieldTypeText, RawValue: "x"},
	}

	cases := []struct {
		template string
		want     string
	}{
		{template: "{{deceased | him | her}}", want: "her"},
		{template: "{{child.full_name | his | her}}", want: "his"},
		{template: "{{sponsor | he | she}}", want: "he/she"},
		{template: "{{notes | he | she}}", want: "he/she"},
		{template: "{{nobody | he | she}}", want: "he/she"},
	}

	for _, tc := range cases {
		if got := ReplaceFields(tc.template, fields); got != tc.want {
			t.Fatalf("ReplaceFields(%q) = %q, want %q", tc.template, got, tc.want)
		}
	}
}

func TestReplaceParishTokens(t *testing.T) {
	ctx := &Context{Parish: &Parish{Name: "St. Joseph", City: "Austin", State: "TX"}}

	cases := map[string]string{
		"{{parish.name}}":       "St. Joseph",
		"{{parish.city_state}}": "Austin, TX",
		"{{parish.city}}":       "Austin",
		"{{parish.unknown}}":    "empty",
	}
	for template, want := range cases {
		if got := Replace(template, ctx); got != want {
			t.Fatalf("Replace(%q) = %q, want %q", template, got, want)
		}
	}

	if got := Replace("{{parish.city_state}}", &Context{Parish: &Parish{State: "TX"}}); got != "TX" {
		t.Fatalf("expected state only, got %q", got)
	}
	if got := Replace("{{parish.name}}", &Context{}); got != "empty" {
		t.Fatalf("expected empty without parish, got %q", got)
	}
}

func TestReplaceContentBodiesExpandOneLevel(t *testing.T) {
	fields := ResolvedFields{
		"presider": {FieldType: constants.FieldTypePerson, ResolvedValue: &models.Person{FirstName: "Fr.", LastName: "Smith"}},
		"blessing": {FieldType: constants.FieldTypeContent, ResolvedValue: &models.Content{Title: "Final Blessing", Body: "{{presider}} blesses {{loop}}"}},
		"loop":     {FieldType: constants.FieldTypeContent, ResolvedValue: &models.Content{Body: "{{loop}}"}},
	}

	if got := ReplaceFields("{{blessing}}", fields); got != "Fr. Smith blesses {{loop}}" {
		t.Fatalf("unexpected content expansion %q", got)
	}
	if got := ReplaceFields("{{blessing.title}}", fields); got != "Final Blessing" {
		t.Fatalf("unexpected content title %q", got)
	}
}

func TestReplacePetitionAndCalendarEvent(t *testing.T) {
	fields := ResolvedFields{
		"petitions": {FieldType: constants.FieldTypePetition, ResolvedValue: &models.Petition{Text: "For the couple"}},
		"rehearsal": {FieldType: constants.FieldTypeCalendarEvent, ResolvedValue: &models.CalendarEvent{
			StartDate: "2025-06-13",
			StartTime: "18:00:00",
			Location:  &models.Location{Name: "Parish Hall"},
		}},
	}

	cases := map[string]string{
		"{{petitions}}":          "For the couple",
		"{{rehearsal}}":          "June 13, 2025",
		"{{rehearsal.time}}":     "6:00 PM",
		"{{rehearsal.location}}": "Parish Hall",
	}
	for template, want := range cases {
		if got := ReplaceFields(template, fields); got != want {
			t.Fatalf("ReplaceFields(%q) = %q, want %q", template, got, want)
		}
	}
}

func TestReplaceLeavesMalformedTokens(t *testing.T) {
	if got := ReplaceFields("Hello {{bride", ResolvedFields{}); got != "Hello {{bride" {
		t.Fatalf("expected unterminated token to stay literal, got %q", got)
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens("{{ a }} and {{b.first_name}} and {{c | x | y}}")
	want := []string{"a", "b.first_name", "c | x | y"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d: got %q want %q", i, tokens[i], want[i])
		}
	}
}

func TestValue(t *testing.T) {
	ctx := &Context{Fields: ResolvedFields{
		"bride": {FieldType: "person", RawValue: "id", ResolvedValue: map[string]interface{}{"full_name": "Jane Smith", "first_name": "Jane"}},
		"notes": {FieldType: "text", RawValue: ""},
	}}

	if got := Value(ctx, "bride.first_name"); got != "Jane" {
		t.Fatalf("expected Jane, got %q", got)
	}
	if got := Value(ctx, "notes"); got != "" {
		t.Fatalf("expected blank for empty text, got %q", got)
	}
	if got := Value(ctx, "missing"); got != "" {
		t.Fatalf("expected blank for unknown field, got %q", got)
	}
	if got := Value(nil, "bride"); got != "" {
		t.Fatalf("expected blank for nil context, got %q", got)
	}
}
