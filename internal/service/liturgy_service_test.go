package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parish-liturgy-backend/internal/liturgy"
	"parish-liturgy-backend/internal/models"
)

func newLiturgyService(t *testing.T, f *fixture) *LiturgyService {
	t.Helper()
	avatars := NewAvatarService(t.TempDir())
	return NewLiturgyService(nil, nil, nil, avatars, f.events, f.fields, f.resolver)
}

func avatarRows(doc *liturgy.Document) []liturgy.InfoRowWithAvatar {
	var rows []liturgy.InfoRowWithAvatar
	for _, section := range doc.Sections {
		for _, element := range section.Elements {
			if row, ok := element.(liturgy.InfoRowWithAvatar); ok {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func TestLiturgyBuildWedding(t *testing.T) {
	f := newFixture()
	svc := newLiturgyService(t, f)

	payload := []byte(`{
		"id": "w1",
		"bride": {"first_name": "Jane", "last_name": "Doe"},
		"groom": {"full_name": "John Smith", "avatar_url": "/uploads/john.png"},
		"wedding_event": {"date": "2025-12-25", "time": "14:00:00", "location_name": "St. Mary"}
	}`)

	doc, err := svc.Build("Wedding", "missing-template", payload)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Type != "wedding" || doc.Template != "wedding-full-script-english" {
		t.Fatalf("expected default wedding template, got %s/%s", doc.Type, doc.Template)
	}

	rows := avatarRows(doc)
	if len(rows) != 2 {
		t.Fatalf("expected bride and groom avatar rows, got %+v", rows)
	}
	if rows[0].AvatarURL != "/uploads/avatar-initial-j.png" {
		t.Fatalf("expected generated avatar for bride, got %q", rows[0].AvatarURL)
	}
	if rows[1].AvatarURL != "/uploads/john.png" {
		t.Fatalf("expected existing avatar kept, got %q", rows[1].AvatarURL)
	}

	html := svc.RenderHTML(doc)
	if !strings.Contains(html, "Jane Doe") {
		t.Fatalf("expected bride in html output")
	}
	if text := svc.RenderText(doc); !strings.Contains(text, "Jane Doe") {
		t.Fatalf("expected bride in text output")
	}
}

func TestLiturgyBuildErrors(t *testing.T) {
	f := newFixture()
	svc := newLiturgyService(t, f)

	if _, err := svc.Build("confirmation", "", nil); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
	if _, err := svc.Build("funeral", "", []byte(`{"deceased": 12}`)); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
	if _, err := svc.Templates("confirmation"); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule from Templates, got %v", err)
	}

	templates, err := svc.Templates("mass-roster")
	if err != nil || len(templates) == 0 {
		t.Fatalf("expected mass roster templates, got %v (%v)", templates, err)
	}
}

func TestLiturgyEventDocument(t *testing.T) {
	f := newFixture()
	svc := newLiturgyService(t, f)

	event, err := f.events.Create(models.CreateEventRequest{
		EventTypeID: f.eventType.ID,
		Name:        "Smith Wedding",
		FieldValues: map[string]interface{}{
			"groom":     f.groom.ID.String(),
			"has_music": true,
		},
		CalendarEvents: []models.CreateCalendarEventRequest{{StartDate: "2025-12-25", StartTime: "14:00"}},
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	doc, err := svc.EventDocument(event.ID, "")
	if err != nil {
		t.Fatalf("EventDocument() error = %v", err)
	}
	if doc.Template != "simple-event-script" || doc.Title != "Smith Wedding" {
		t.Fatalf("unexpected document %s %q", doc.Template, doc.Title)
	}

	text := svc.RenderText(doc)
	for _, want := range []string{"Groom", "John Smith", "Music", "Yes", "December 25, 2025"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in event script:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Notes") {
		t.Fatalf("expected empty notes field to be skipped:\n%s", text)
	}
}

func TestEnsureInitialAvatar(t *testing.T) {
	dir := t.TempDir()
	svc := NewAvatarService(dir)

	url, err := svc.EnsureInitialAvatar("  émile")
	if err != nil {
		t.Fatalf("EnsureInitialAvatar() error = %v", err)
	}
	if url != "/uploads/avatar-initial-uc9.png" {
		t.Fatalf("unexpected url %q", url)
	}
	info, err := os.Stat(filepath.Join(dir, "avatar-initial-uc9.png"))
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected avatar file on disk: %v", err)
	}

	again, err := svc.EnsureInitialAvatar("Émilie")
	if err != nil || again != url {
		t.Fatalf("expected cached avatar url, got %q (%v)", again, err)
	}

	if blank, err := svc.EnsureInitialAvatar("   "); err != nil || blank != "" {
		t.Fatalf("expected no avatar for blank name, got %q (%v)", blank, err)
	}
	if _, err := NewAvatarService("").EnsureInitialAvatar("A"); err == nil {
		t.Fatalf("expected error without upload dir")
	}
}

func TestAvatarWarm(t *testing.T) {
	dir := t.TempDir()
	svc := NewAvatarService(dir)

	if err := svc.Warm(context.Background(), "AB"); err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
	for _, name := range []string{"avatar-initial-a.png", "avatar-initial-b.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Warm(ctx, "C"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
