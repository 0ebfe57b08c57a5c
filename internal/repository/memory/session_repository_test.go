package memory

import (
	"testing"
	"time"

	"shop-assistant-be/pkg/store"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	s := store.NewSession("s1")
	s.Remember(4, "salePrice")
	repo.Save(s)

	got, found := repo.Get("s1")
	if !found {
		t.Fatal("saved session should be retrievable")
	}
	if got.LastProductRow != 4 || got.LastPriceField != "salePrice" {
		t.Errorf("session = %+v, want row 4 and salePrice", got)
	}
}

func TestSessionRepositoryBlankIdUsesDefaultSession(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	s := repo.GetOrCreate("")
	if s.ID != store.DefaultSessionID {
		t.Errorf("ID = %q, want %q", s.ID, store.DefaultSessionID)
	}

	again := repo.GetOrCreate("")
	if again != s {
		t.Error("blank ids should share one session")
	}
}

func TestSessionRepositoryHonorsConfiguredTTL(t *testing.T) {
	repo := NewSessionRepository(10 * time.Millisecond)

	repo.Save(store.NewSession("s1"))
	time.Sleep(30 * time.Millisecond)

	if _, found := repo.Get("s1"); found {
		t.Error("session should expire after the configured ttl")
	}
}

func TestSessionRepositoryDefaultTTLWhenUnset(t *testing.T) {
	repo := NewSessionRepository(0)

	repo.Save(store.NewSession("s1"))
	time.Sleep(5 * time.Millisecond)

	if _, found := repo.Get("s1"); !found {
		t.Error("zero ttl should fall back to the long default, not expire immediately")
	}
}
