package repository

import (
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/models"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Parish{},
		&models.EventType{},
		&models.InputFieldDefinition{},
		&models.Script{},
		&models.Section{},
		&models.Location{},
		&models.Event{},
		&models.CalendarEvent{},
		&models.Person{},
		&models.Group{},
		&models.ListItem{},
		&models.Document{},
		&models.Content{},
		&models.Petition{},
	)
}
