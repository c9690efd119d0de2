package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entities referenced from event field values. Each exposes its display
// properties through Property so placeholders can address them by name.

type Person struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID    uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Sex         string    `gorm:"type:varchar(8)" json:"sex"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatar_url"`
}

func (p *Person) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

func (p *Person) Property(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	switch name {
	case "full_name":
		return p.FullName(), true
	case "first_name":
		return p.FirstName, true
	case "last_name":
		return p.LastName, true
	case "sex":
		return p.Sex, true
	case "phone_number":
		return p.PhoneNumber, true
	case "email":
		return p.Email, true
	case "avatar_url":
		return p.AvatarURL, true
	}
	return "", false
}

type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	Name     string    `gorm:"not null" json:"name"`
	Street   string    `json:"street"`
	City     string    `json:"city"`
	State    string    `json:"state"`
}

func (l *Location) Property(name string) (string, bool) {
	if l == nil {
		return "", false
	}
	switch name {
	case "name":
		return l.Name, true
	case "street":
		return l.Street, true
	case "city":
		return l.City, true
	case "state":
		return l.State, true
	}
	return "", false
}

type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID    uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
}

func (g *Group) Property(name string) (string, bool) {
	if g == nil {
		return "", false
	}
	switch name {
	case "name":
		return g.Name, true
	case "description":
		return g.Description, true
	}
	return "", false
}

// ListItem is one value of a parish-defined custom list.
type ListItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ListID uuid.UUID `gorm:"type:uuid;index" json:"list_id"`
	Value  string    `gorm:"not null" json:"value"`
	Order  int       `gorm:"column:sort_order;default:0" json:"order"`
}

func (i *ListItem) Property(name string) (string, bool) {
	if i == nil || name != "value" {
		return "", false
	}
	return i.Value, true
}

type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	FileName string    `gorm:"not null" json:"file_name"`
	FileURL  string    `json:"file_url"`
}

func (d *Document) Property(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	switch name {
	case "file_name":
		return d.FileName, true
	case "file_url":
		return d.FileURL, true
	}
	return "", false
}

// Content is a reusable block of text (readings, blessings) whose body may
// itself contain placeholders.
type Content struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	Title    string    `gorm:"not null" json:"title"`
	Body     string    `gorm:"type:text" json:"body"`
	Language string    `gorm:"type:varchar(8)" json:"language"`
}

func (c *Content) Property(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	switch name {
	case "title":
		return c.Title, true
	case "body":
		return c.Body, true
	}
	return "", false
}

type Petition struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParishID uuid.UUID `gorm:"type:uuid;index" json:"parish_id"`
	Title    string    `json:"title"`
	Text     string    `gorm:"type:text" json:"text"`
}

func (p *Petition) Property(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	switch name {
	case "title":
		return p.Title, true
	case "text":
		return p.Text, true
	}
	return "", false
}

// String renders a linked event for event_link placeholders.
func (e *Event) String() string {
	if e == nil {
		return ""
	}
	return e.Name
}
