package models

import "github.com/google/uuid"

type CreateFieldDefinitionRequest struct {
	Name               string     `json:"name" binding:"required,no_html,max=120"`
	PropertyName       string     `json:"property_name" binding:"required,property_name"`
	Type               string     `json:"type" binding:"required,field_type"`
	Required           bool       `json:"required"`
	ListID             *uuid.UUID `json:"list_id"`
	IsKeyPerson        bool       `json:"is_key_person"`
	IsPrimary          bool       `json:"is_primary"`
	IsPerCalendarEvent bool       `json:"is_per_calendar_event"`
	FilterTags         []string   `json:"filter_tags"`
	Order              *int       `json:"order"`
}

type UpdateFieldDefinitionRequest struct {
	Name               *string   `json:"name" binding:"omitempty,no_html,max=120"`
	Required           *bool     `json:"required"`
	IsKeyPerson        *bool     `json:"is_key_person"`
	IsPrimary          *bool     `json:"is_primary"`
	IsPerCalendarEvent *bool     `json:"is_per_calendar_event"`
	FilterTags         *[]string `json:"filter_tags"`
	Order              *int      `json:"order"`
}

type CreateSectionRequest struct {
	Name           string `json:"name" binding:"required,no_html,max=200"`
	Content        string `json:"content"`
	SectionType    string `json:"section_type" binding:"omitempty,oneof=text petition"`
	PageBreakAfter bool   `json:"page_break_after"`
	Order          *int   `json:"order"`
}

type UpdateSectionRequest struct {
	Name           *string `json:"name" binding:"omitempty,no_html,max=200"`
	Content        *string `json:"content"`
	SectionType    *string `json:"section_type" binding:"omitempty,oneof=text petition"`
	PageBreakAfter *bool   `json:"page_break_after"`
	Order          *int    `json:"order"`
}

type ReorderSectionsRequest struct {
	SectionIDs []uuid.UUID `json:"section_ids" binding:"required,min=1"`
}

type CreateEventRequest struct {
	EventTypeID    uuid.UUID                    `json:"event_type_id" binding:"required"`
	ParishID       uuid.UUID                    `json:"parish_id"`
	Name           string                       `json:"name" binding:"required,max=200"`
	Language       string                       `json:"language" binding:"omitempty,oneof=en es"`
	FieldValues    map[string]interface{}       `json:"field_values"`
	CalendarEvents []CreateCalendarEventRequest `json:"calendar_events" binding:"dive"`
}

type CreateCalendarEventRequest struct {
	Name       string     `json:"name" binding:"max=200"`
	StartDate  string     `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime  string     `json:"start_time"`
	LocationID *uuid.UUID `json:"location_id"`
	IsPrimary  bool       `json:"is_primary"`
}

type UpdateFieldValuesRequest struct {
	FieldValues map[string]interface{} `json:"field_values" binding:"required"`
}
