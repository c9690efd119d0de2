package repository

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parish-liturgy-backend/internal/models"
)

func TestTranslateError(t *testing.T) {
	if !errors.Is(translateError(gorm.ErrRecordNotFound), ErrNotFound) {
		t.Fatalf("expected record not found to map to ErrNotFound")
	}
	wrapped := fmt.Errorf("load: %w", gorm.ErrRecordNotFound)
	if !errors.Is(translateError(wrapped), ErrNotFound) {
		t.Fatalf("expected wrapped record not found to map to ErrNotFound")
	}
	other := errors.New("boom")
	if translateError(other) != other {
		t.Fatalf("expected other errors to pass through")
	}
}

func TestUniqueIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := uniqueIDs([]uuid.UUID{a, uuid.Nil, b, a})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("unexpected ids %v", got)
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestScriptRepositoryOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := NewScriptRepository(db)

	eventType := &models.EventType{Name: "Wedding"}
	if err := NewEventTypeRepository(db).Create(eventType); err != nil {
		t.Fatalf("create event type: %v", err)
	}
	script := &models.Script{EventTypeID: eventType.ID, Name: "Ceremony"}
	if err := repo.Create(script); err != nil {
		t.Fatalf("create script: %v", err)
	}
	t.Cleanup(func() {
		db.Where("script_id = ?", script.ID).Delete(&models.Section{})
		db.Delete(script)
		db.Unscoped().Delete(eventType)
	})

	names := []string{"Opening", "Vows", "Blessing"}
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		order, err := repo.NextSectionOrder(script.ID)
		if err != nil {
			t.Fatalf("next order: %v", err)
		}
		section := &models.Section{ScriptID: script.ID, Name: name, Order: order}
		if err := repo.CreateSection(section); err != nil {
			t.Fatalf("create section: %v", err)
		}
		ids = append(ids, section.ID)
	}

	if err := repo.ReorderSections(script.ID, []uuid.UUID{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	loaded, err := repo.GetByID(script.ID)
	if err != nil {
		t.Fatalf("get script: %v", err)
	}
	got := make([]string, 0, len(loaded.Sections))
	for _, section := range loaded.Sections {
		got = append(got, section.Name)
	}
	if fmt.Sprint(got) != "[Blessing Opening Vows]" {
		t.Fatalf("unexpected order %v", got)
	}

	if err := repo.ReorderSections(script.ID, []uuid.UUID{uuid.New()}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign section, got %v", err)
	}
}

func TestFieldDefinitionSoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewFieldDefinitionRepository(db)

	eventTypeID := uuid.New()
	definition := &models.InputFieldDefinition{EventTypeID: eventTypeID, Name: "Bride", PropertyName: "bride", Type: "person"}
	if err := repo.Create(definition); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(definition) })

	if err := repo.Delete(definition.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(definition.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted definition to be hidden, got %v", err)
	}

	var count int64
	db.Unscoped().Model(&models.InputFieldDefinition{}).Where("id = ?", definition.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected soft-deleted row to remain")
	}
}
