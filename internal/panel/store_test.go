package panel

import (
	"testing"
	"time"
)

func TestStoreReturnsSamePanelPerSession(t *testing.T) {
	store := NewStore(&stubGenerator{}, time.Hour)

	a := store.Get("session-a")
	if a == nil {
		t.Fatal("expected panel")
	}
	if store.Get("session-a") != a {
		t.Fatal("same session returned a different panel")
	}
	if store.Get("session-b") == a {
		t.Fatal("distinct sessions share a panel")
	}
	if store.Len() != 2 {
		t.Fatalf("unexpected session count: %d", store.Len())
	}
}

func TestStorePrunesIdleSessions(t *testing.T) {
	store := NewStore(&stubGenerator{}, time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Get("old")
	current = current.Add(2 * time.Minute)
	store.Get("fresh")

	if store.Len() != 1 {
		t.Fatalf("idle session not pruned: %d live", store.Len())
	}
	if store.Get("fresh") == nil {
		t.Fatal("fresh session lost")
	}
}
