// Package liturgy defines the renderer-independent liturgy document and the
// per-module content builders that produce it.
package liturgy

import (
	"encoding/json"
)

// Document is built fresh for every view request and never stored.
type Document struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Language string    `json:"language"`
	Template string    `json:"template"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Sections []Section `json:"sections"`
}

type Section struct {
	ID              string
	Title           string
	PageBreakBefore bool
	PageBreakAfter  bool
	Elements        []Element
}

func (s Section) MarshalJSON() ([]byte, error) {
	elements := make([]json.RawMessage, 0, len(s.Elements))
	for _, element := range s.Elements {
		encoded, err := MarshalElement(element)
		if err != nil {
			return nil, err
		}
		elements = append(elements, encoded)
	}

	return json.Marshal(struct {
		ID              string            `json:"id"`
		Title           string            `json:"title,omitempty"`
		PageBreakBefore bool              `json:"page_break_before,omitempty"`
		PageBreakAfter  bool              `json:"page_break_after,omitempty"`
		Elements        []json.RawMessage `json:"elements"`
	}{
		ID:              s.ID,
		Title:           s.Title,
		PageBreakBefore: s.PageBreakBefore,
		PageBreakAfter:  s.PageBreakAfter,
		Elements:        elements,
	})
}

// MarshalElement encodes an element with its "type" discriminator.
func MarshalElement(element Element) (json.RawMessage, error) {
	encoded, err := json.Marshal(element)
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, err
	}

	kind, err := json.Marshal(element.ElementType())
	if err != nil {
		return nil, err
	}
	fields["type"] = kind

	return json.Marshal(fields)
}

type ElementType string

const (
	ElementEventTitle        ElementType = "event-title"
	ElementEventDateTime     ElementType = "event-datetime"
	ElementSectionTitle      ElementType = "section-title"
	ElementText              ElementType = "text"
	ElementInfoRow           ElementType = "info-row"
	ElementInfoRowWithAvatar ElementType = "info-row-with-avatar"
	ElementSpacer            ElementType = "spacer"
	ElementReadingTitle      ElementType = "reading-title"
	ElementPericope          ElementType = "pericope"
	ElementReaderName        ElementType = "reader-name"
	ElementReadingText       ElementType = "reading-text"
	ElementResponse          ElementType = "response"
	ElementPriestDialogue    ElementType = "priest-dialogue"
	ElementPetition          ElementType = "petition"
)

// Element is one typed piece of content inside a section.
type Element interface {
	ElementType() ElementType
}

type EventTitle struct {
	Text string `json:"text"`
}

type EventDateTime struct {
	Text string `json:"text"`
}

type SectionTitle struct {
	Text string `json:"text"`
}

// Text is a block of prose. Rubric text is printed in liturgical red.
type Text struct {
	Text      string `json:"text"`
	Rubric    bool   `json:"rubric,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

type InfoRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type InfoRowWithAvatar struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	AvatarSize int    `json:"avatar_size"`
}

type SpacerSize string

const (
	SpacerSmall  SpacerSize = "small"
	SpacerMedium SpacerSize = "medium"
	SpacerLarge  SpacerSize = "large"
)

type Spacer struct {
	Size SpacerSize `json:"size"`
}

type ReadingTitle struct {
	Text string `json:"text"`
}

type Pericope struct {
	Text string `json:"text"`
}

type ReaderName struct {
	Text string `json:"text"`
}

type ReadingText struct {
	Text string `json:"text"`
}

// Response is a call-and-answer line such as "All: Thanks be to God."
type Response struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type PriestDialogue struct {
	Text string `json:"text"`
}

type Petition struct {
	Text string `json:"text"`
}

func (EventTitle) ElementType() ElementType        { return ElementEventTitle }
func (EventDateTime) ElementType() ElementType     { return ElementEventDateTime }
func (SectionTitle) ElementType() ElementType      { return ElementSectionTitle }
func (Text) ElementType() ElementType              { return ElementText }
func (InfoRow) ElementType() ElementType           { return ElementInfoRow }
func (InfoRowWithAvatar) ElementType() ElementType { return ElementInfoRowWithAvatar }
func (Spacer) ElementType() ElementType            { return ElementSpacer }
func (ReadingTitle) ElementType() ElementType      { return ElementReadingTitle }
func (Pericope) ElementType() ElementType          { return ElementPericope }
func (ReaderName) ElementType() ElementType        { return ElementReaderName }
func (ReadingText) ElementType() ElementType       { return ElementReadingText }
func (Response) ElementType() ElementType          { return ElementResponse }
func (PriestDialogue) ElementType() ElementType    { return ElementPriestDialogue }
func (Petition) ElementType() ElementType          { return ElementPetition }
