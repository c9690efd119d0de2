package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDisabledCache(t *testing.T) {
	c, err := NewCache("", false)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if c.Enabled() {
		t.Fatalf("expected disabled cache")
	}

	id := uuid.New()
	if err := c.CacheFieldDefinitions(id, []string{"bride"}, time.Minute); err != nil {
		t.Fatalf("Set on disabled cache returned %v", err)
	}

	var dest []string
	if err := c.GetCachedFieldDefinitions(id, &dest); !errors.Is(err, ErrCacheDisabled) {
		t.Fatalf("expected ErrCacheDisabled, got %v", err)
	}
	if err := c.InvalidateAllScripts(); err != nil {
		t.Fatalf("DeletePattern on disabled cache returned %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	if c.Enabled() {
		t.Fatalf("nil cache must report disabled")
	}
	if err := c.InvalidateScript(uuid.New()); err != nil {
		t.Fatalf("InvalidateScript on nil cache returned %v", err)
	}
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("6f1c2b8e-4a2b-4b7e-9c1d-2f3a4b5c6d7e")
	if got := FieldDefinitionsKey(id); got != "event_type:6f1c2b8e-4a2b-4b7e-9c1d-2f3a4b5c6d7e:fields" {
		t.Fatalf("unexpected field definitions key %q", got)
	}
	if got := ScriptKey(id); got != "script:6f1c2b8e-4a2b-4b7e-9c1d-2f3a4b5c6d7e" {
		t.Fatalf("unexpected script key %q", got)
	}
}
