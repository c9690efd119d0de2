package liturgy

import "strings"

// Views are the typed inputs of the content builders. Every relation is
// optional; builders skip what is missing.

type PersonView struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Sex         string `json:"sex,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Name returns the display name, or "" for a nil or blank person.
func (p *PersonView) Name() string {
	if p == nil {
		return ""
	}
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

func (p *PersonView) avatar() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.AvatarURL)
}

// EventView is one dated occurrence. Date is "2006-01-02", Time "15:04:05".
type EventView struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	LocationName string `json:"location_name"`
}

func (e *EventView) location() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.LocationName)
}

type ReadingView struct {
	Pericope     string      `json:"pericope"`
	Text         string      `json:"text"`
	Introduction string      `json:"introduction,omitempty"`
	Conclusion   string      `json:"conclusion,omitempty"`
	Response     string      `json:"response,omitempty"`
	Reader       *PersonView `json:"reader,omitempty"`
}

func (r *ReadingView) empty() bool {
	return r == nil || (strings.TrimSpace(r.Pericope) == "" && strings.TrimSpace(r.Text) == "")
}

type Readings struct {
	FirstReading  *ReadingView `json:"first_reading,omitempty"`
	Psalm         *ReadingView `json:"psalm,omitempty"`
	SecondReading *ReadingView `json:"second_reading,omitempty"`
	Gospel        *ReadingView `json:"gospel,omitempty"`
}

type WeddingView struct {
	ID           string      `json:"id"`
	Language     string      `json:"language"`
	TemplateID   string      `json:"wedding_template_id"`
	Bride        *PersonView `json:"bride,omitempty"`
	Groom        *PersonView `json:"groom,omitempty"`
	Presider     *PersonView `json:"presider,omitempty"`
	Homilist     *PersonView `json:"homilist,omitempty"`
	Coordinator  *PersonView `json:"coordinator,omitempty"`
	LeadMusician *PersonView `json:"lead_musician,omitempty"`
	Witness      *PersonView `json:"witness,omitempty"`
	Wedding      *EventView  `json:"wedding_event,omitempty"`
	Rehearsal    *EventView  `json:"rehearsal_event,omitempty"`
	Reception    *EventView  `json:"reception_event,omitempty"`
	Readings
	Petitions     string `json:"petitions,omitempty"`
	Announcements string `json:"announcements,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type FuneralView struct {
	ID            string      `json:"id"`
	Language      string      `json:"language"`
	TemplateID    string      `json:"funeral_template_id"`
	Deceased      *PersonView `json:"deceased,omitempty"`
	FamilyContact *PersonView `json:"family_contact,omitempty"`
	Presider      *PersonView `json:"presider,omitempty"`
	Homilist      *PersonView `json:"homilist,omitempty"`
	LeadMusician  *PersonView `json:"lead_musician,omitempty"`
	Funeral       *EventView  `json:"funeral_event,omitempty"`
	Vigil         *EventView  `json:"vigil_event,omitempty"`
	Committal     *EventView  `json:"committal_event,omitempty"`
	Readings
	Petitions     string `json:"petitions,omitempty"`
	Announcements string `json:"announcements,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type BaptismView struct {
	Child    *PersonView `json:"child,omitempty"`
	Mother   *PersonView `json:"mother,omitempty"`
	Father   *PersonView `json:"father,omitempty"`
	Sponsor1 *PersonView `json:"sponsor_1,omitempty"`
	Sponsor2 *PersonView `json:"sponsor_2,omitempty"`
	Notes    string      `json:"notes,omitempty"`
}

type GroupBaptismView struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Language   string        `json:"language"`
	TemplateID string        `json:"group_baptism_template_id"`
	Event      *EventView    `json:"event,omitempty"`
	Presider   *PersonView   `json:"presider,omitempty"`
	Baptisms   []BaptismView `json:"baptisms"`
	Notes      string        `json:"notes,omitempty"`
}

type RoleAssignmentView struct {
	Role   string      `json:"role"`
	Person *PersonView `json:"person,omitempty"`
}

type MassRosterView struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Language      string               `json:"language"`
	TemplateID    string               `json:"mass_template_id"`
	Event         *EventView           `json:"event,omitempty"`
	Presider      *PersonView          `json:"presider,omitempty"`
	Homilist      *PersonView          `json:"homilist,omitempty"`
	Intention     string               `json:"intention,omitempty"`
	Assignments   []RoleAssignmentView `json:"assignments"`
	Announcements string               `json:"announcements,omitempty"`
}

// EventFieldView is one configured field of an event type with its display
// value already resolved. Spacer fields carry no value.
type EventFieldView struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Order int    `json:"order"`
	Value string `json:"value"`
}

// EventScriptView is the input of the simple event script, used by event
// types that have no dedicated module.
type EventScriptView struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	EventType string           `json:"event_type"`
	Language  string           `json:"language"`
	Event     *EventView       `json:"event,omitempty"`
	Fields    []EventFieldView `json:"fields"`
}
