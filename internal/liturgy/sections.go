package liturgy

import (
	"strings"

	"parish-liturgy-backend/internal/formatters"
)

// DefaultAvatarSize is the avatar edge length in pixels for info rows.
const DefaultAvatarSize = 40

// sectionBuilder accumulates elements and silently skips blank values.
type sectionBuilder struct {
	language string
	section  Section
}

func newSection(language, id, title string) *sectionBuilder {
	return &sectionBuilder{
		language: language,
		section:  Section{ID: id, Title: strings.TrimSpace(title)},
	}
}

func (b *sectionBuilder) pageBreakBefore() *sectionBuilder {
	b.section.PageBreakBefore = true
	return b
}

func (b *sectionBuilder) add(element Element) *sectionBuilder {
	b.section.Elements = append(b.section.Elements, element)
	return b
}

func (b *sectionBuilder) eventTitle(text string) *sectionBuilder {
	if text = strings.TrimSpace(text); text != "" {
		b.add(EventTitle{Text: text})
	}
	return b
}

func (b *sectionBuilder) eventDateTime(event *EventView) *sectionBuilder {
	if event == nil {
		return b
	}
	if text := formatters.DateTime(event.Date, event.Time, b.language); text != "" {
		b.add(EventDateTime{Text: text})
	}
	return b
}

func (b *sectionBuilder) title(text string) *sectionBuilder {
	if text = strings.TrimSpace(text); text != "" {
		b.add(SectionTitle{Text: text})
	}
	return b
}

func (b *sectionBuilder) text(text string, rubric bool) *sectionBuilder {
	if text = strings.TrimSpace(text); text != "" {
		b.add(Text{Text: text, Rubric: rubric})
	}
	return b
}

func (b *sectionBuilder) row(labelKey, value string) *sectionBuilder {
	if value = strings.TrimSpace(value); value != "" {
		b.add(InfoRow{Label: label(b.language, labelKey), Value: value})
	}
	return b
}

func (b *sectionBuilder) rawRow(labelText, value string) *sectionBuilder {
	if value = strings.TrimSpace(value); value != "" {
		b.add(InfoRow{Label: strings.TrimSpace(labelText), Value: value})
	}
	return b
}

func (b *sectionBuilder) person(labelKey string, person *PersonView) *sectionBuilder {
	return b.row(labelKey, person.Name())
}

func (b *sectionBuilder) avatar(labelKey string, person *PersonView) *sectionBuilder {
	name := person.Name()
	if name == "" {
		return b
	}
	return b.add(InfoRowWithAvatar{
		Label:      label(b.language, labelKey),
		Value:      name,
		AvatarURL:  person.avatar(),
		AvatarSize: DefaultAvatarSize,
	})
}

// eventRows adds date, time and location rows for an occurrence. When
// prefixKey is set the rows collapse into one "<prefix>: <date and time>"
// row plus its location.
func (b *sectionBuilder) eventRows(prefixKey string, event *EventView) *sectionBuilder {
	if event == nil {
		return b
	}
	if prefixKey != "" {
		b.row(prefixKey, formatters.DateTime(event.Date, event.Time, b.language))
		if loc := event.location(); loc != "" {
			b.rawRow(label(b.language, prefixKey)+" - "+label(b.language, "location"), loc)
		}
		return b
	}
	if strings.TrimSpace(event.Date) != "" {
		b.row("date", formatters.DateLong(event.Date, b.language))
	}
	b.row("time", formatters.Time(event.Time))
	b.row("location", event.location())
	return b
}

func (b *sectionBuilder) spacer(size SpacerSize) *sectionBuilder {
	return b.add(Spacer{Size: size})
}

func (b *sectionBuilder) empty() bool {
	return len(b.section.Elements) == 0
}

func (b *sectionBuilder) build() Section {
	if b.section.Elements == nil {
		b.section.Elements = []Element{}
	}
	return b.section
}

// appendSection adds the section to doc unless it has no content.
func appendSection(doc *Document, b *sectionBuilder) {
	if b == nil || b.empty() {
		return
	}
	doc.Sections = append(doc.Sections, b.build())
}

func readingsSection(language, id string, readings Readings) *sectionBuilder {
	b := newSection(language, id, label(language, "readings")).pageBreakBefore()

	addReading(b, "first_reading", readings.FirstReading)
	addPsalm(b, readings.Psalm)
	addReading(b, "second_reading", readings.SecondReading)
	addGospel(b, readings.Gospel)

	return b
}

func addReading(b *sectionBuilder, titleKey string, reading *ReadingView) {
	if reading.empty() {
		return
	}
	if !b.empty() {
		b.spacer(SpacerMedium)
	}
	b.add(ReadingTitle{Text: label(b.language, titleKey)})
	if pericope := strings.TrimSpace(reading.Pericope); pericope != "" {
		b.add(Pericope{Text: pericope})
	}
	if reader := reading.Reader.Name(); reader != "" {
		b.add(ReaderName{Text: reader})
	}
	b.text(reading.Introduction, true)
	if text := strings.TrimSpace(reading.Text); text != "" {
		b.add(ReadingText{Text: text})
	}
	conclusion := strings.TrimSpace(reading.Conclusion)
	if conclusion == "" {
		conclusion = label(b.language, "reading_end")
	}
	b.add(PriestDialogue{Text: conclusion})
	b.add(Response{Label: label(b.language, "all"), Text: label(b.language, "reading_reply")})
}

func addPsalm(b *sectionBuilder, psalm *ReadingView) {
	if psalm.empty() {
		return
	}
	if !b.empty() {
		b.spacer(SpacerMedium)
	}
	b.add(ReadingTitle{Text: label(b.language, "psalm")})
	if pericope := strings.TrimSpace(psalm.Pericope); pericope != "" {
		b.add(Pericope{Text: pericope})
	}
	if reader := psalm.Reader.Name(); reader != "" {
		b.add(ReaderName{Text: reader})
	}
	if response := strings.TrimSpace(psalm.Response); response != "" {
		b.add(Response{Label: label(b.language, "response"), Text: response})
	}
	if text := strings.TrimSpace(psalm.Text); text != "" {
		b.add(ReadingText{Text: text})
	}
}

func addGospel(b *sectionBuilder, gospel *ReadingView) {
	if gospel.empty() {
		return
	}
	if !b.empty() {
		b.spacer(SpacerMedium)
	}
	b.add(PriestDialogue{Text: label(b.language, "gospel_dialogue")})
	b.add(Response{Label: label(b.language, "all"), Text: label(b.language, "gospel_dialogue2")})
	b.add(ReadingTitle{Text: label(b.language, "gospel")})
	if pericope := strings.TrimSpace(gospel.Pericope); pericope != "" {
		b.add(Pericope{Text: pericope})
	}
	if text := strings.TrimSpace(gospel.Text); text != "" {
		b.add(ReadingText{Text: text})
	}
	b.add(PriestDialogue{Text: label(b.language, "gospel_end")})
	b.add(Response{Label: label(b.language, "all"), Text: label(b.language, "gospel_reply")})
}

// petitionsSection turns one petition per line into petition/response pairs.
func petitionsSection(language, id, petitions string) *sectionBuilder {
	b := newSection(language, id, label(language, "petitions"))
	for _, line := range strings.Split(petitions, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.add(Petition{Text: line})
		b.add(Response{Label: label(language, "all"), Text: label(language, "petition_reply")})
	}
	return b
}

func textSection(language, id, titleKey, body string) *sectionBuilder {
	b := newSection(language, id, label(language, titleKey))
	b.text(body, false)
	return b
}

// joinNames joins the non-empty names with " & ".
func joinNames(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " & ")
}
