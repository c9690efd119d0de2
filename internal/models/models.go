package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Parish struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

type EventType struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ParishID uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	Name     string    `gorm:"not null" json:"name"`
	Slug     string    `gorm:"index" json:"slug"`

	FieldDefinitions []InputFieldDefinition `gorm:"foreignKey:EventTypeID" json:"field_definitions,omitempty"`
	Scripts          []Script               `gorm:"foreignKey:EventTypeID;constraint:OnDelete:CASCADE" json:"scripts,omitempty"`
}

// InputFieldDefinition describes one placeholder slot on an event type. The
// property name is the key used in {{property_name}} tokens.
type InputFieldDefinition struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EventTypeID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"event_type_id"`
	Name               string     `gorm:"not null" json:"name"`
	PropertyName       string     `gorm:"not null" json:"property_name"`
	Type               string     `gorm:"type:varchar(32);not null" json:"type"`
	Required           bool       `json:"required"`
	ListID             *uuid.UUID `gorm:"type:uuid" json:"list_id,omitempty"`
	IsKeyPerson        bool       `json:"is_key_person"`
	IsPrimary          bool       `json:"is_primary"`
	IsPerCalendarEvent bool       `json:"is_per_calendar_event"`
	FilterTags         StringList `gorm:"type:jsonb" json:"filter_tags"`
	Order              int        `gorm:"column:sort_order;default:0" json:"order"`
}

type Script struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EventTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_type_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`

	Sections []Section `gorm:"foreignKey:ScriptID;constraint:OnDelete:CASCADE" json:"sections"`
}

// Section is one named block of a script. Content holds markdown with
// placeholders and {red}...{/red} spans and is sanitized before it is stored.
type Section struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ScriptID       uuid.UUID `gorm:"type:uuid;not null;index" json:"script_id"`
	Name           string    `gorm:"not null" json:"name"`
	Content        string    `gorm:"type:text" json:"content"`
	SectionType    string    `gorm:"type:varchar(16);default:'text'" json:"section_type"`
	PageBreakAfter bool      `json:"page_break_after"`
	Order          int       `gorm:"column:sort_order;default:0" json:"order"`
}

type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID    uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	EventTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_type_id"`
	Name        string    `gorm:"not null" json:"name"`
	Language    string    `gorm:"type:varchar(8);default:'en'" json:"language"`
	FieldValues JSONMap   `gorm:"type:jsonb" json:"field_values"`

	EventType      *EventType      `gorm:"foreignKey:EventTypeID" json:"event_type,omitempty"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"calendar_events,omitempty"`
}

// PrimaryCalendarEvent returns the occurrence flagged primary, falling back to
// the first one.
func (e *Event) PrimaryCalendarEvent() *CalendarEvent {
	if e == nil || len(e.CalendarEvents) == 0 {
		return nil
	}
	for i := range e.CalendarEvents {
		if e.CalendarEvents[i].IsPrimary {
			return &e.CalendarEvents[i]
		}
	}
	return &e.CalendarEvents[0]
}

// CalendarEvent is one dated occurrence of an event.
type CalendarEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EventID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"event_id"`
	Name       string     `json:"name"`
	StartDate  string     `gorm:"type:varchar(10)" json:"start_date"`
	StartTime  string     `gorm:"type:varchar(8)" json:"start_time"`
	LocationID *uuid.UUID `gorm:"type:uuid" json:"location_id,omitempty"`
	IsPrimary  bool       `json:"is_primary"`

	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringList")
	}

	var decoded []string
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}
	*l = decoded
	return nil
}

func (c *CalendarEvent) Property(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	switch name {
	case "name":
		return c.Name, true
	case "date":
		return c.StartDate, true
	case "time":
		return c.StartTime, true
	case "location":
		if c.Location == nil {
			return "", true
		}
		return c.Location.Name, true
	}
	return "", false
}
