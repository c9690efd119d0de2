package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (p *Parish) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (e *EventType) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}

func (i *InputFieldDefinition) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}

func (s *Script) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}

func (c *CalendarEvent) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	assignID(&g.ID)
	return nil
}

func (l *ListItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	return nil
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

func (p *Petition) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
