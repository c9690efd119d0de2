package service

import (
	"testing"

	"github.com/google/uuid"

	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/placeholders"
)

func TestResolve(t *testing.T) {
	f := newFixture()
	content := models.Content{ID: uuid.New(), Title: "Blessing", Body: "Bless {{groom.first_name}}"}
	f.entities.contents = []models.Content{content}

	defs := []models.InputFieldDefinition{
		{PropertyName: "groom", Type: "person"},
		{PropertyName: "witness", Type: "person"},
		{PropertyName: "blessing", Type: "content"},
		{PropertyName: "gap", Type: "spacer"},
	}
	event := &models.Event{
		ID:       uuid.New(),
		ParishID: f.parishes.parish.ID,
		Language: "en",
		FieldValues: models.JSONMap{
			"groom":    f.groom.ID.String(),
			"witness":  uuid.New().String(),
			"blessing": content.ID.String(),
			"loose":    "kept",
		},
	}

	ctx, err := f.resolver.Resolve(event, defs)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if _, ok := ctx.Fields["gap"]; ok {
		t.Fatalf("spacer fields must not be resolvable")
	}
	if ctx.Fields["witness"].ResolvedValue != nil {
		t.Fatalf("expected dangling reference to resolve to nil")
	}
	if ctx.Fields["loose"].FieldType != "text" {
		t.Fatalf("expected undeclared value exposed as text")
	}

	got := placeholders.Replace("{{groom}} / {{witness}} / {{blessing}} / {{loose}} / {{parish.city_state}}", ctx)
	want := "John Smith / empty / Bless John / kept / Austin, TX"
	if got != want {
		t.Fatalf("Replace() = %q, want %q", got, want)
	}
}

func TestResolveWithoutParish(t *testing.T) {
	f := newFixture()
	ctx, err := f.resolver.Resolve(&models.Event{ParishID: uuid.New()}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if ctx.Parish != nil {
		t.Fatalf("expected missing parish to be nil")
	}
}
