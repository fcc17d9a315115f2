package session

import (
	"context"
	"testing"
	"time"
)

func TestRegistryStorageIsPerSession(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(time.Hour)

	a, b := NewID(), NewID()
	if err := r.Storage(a).SetItem(ctx, "game1State", `{"level":2}`); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	if _, ok, _ := r.Storage(b).GetItem(ctx, "game1State"); ok {
		t.Error("Session b should not see session a's state")
	}
	v, ok, _ := r.Storage(a).GetItem(ctx, "game1State")
	if !ok || v != `{"level":2}` {
		t.Errorf("Expected session a's state to survive, got %q ok=%v", v, ok)
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 sessions, got %d", r.Len())
	}
}

func TestRegistryLookupDoesNotCreate(t *testing.T) {
	r := NewRegistry(time.Hour)

	if _, ok := r.Lookup(NewID()); ok {
		t.Error("Expected unknown session to be absent")
	}
	if r.Len() != 0 {
		t.Errorf("Expected Lookup to leave the registry empty, got %d", r.Len())
	}

	id := NewID()
	created := r.Storage(id)
	got, ok := r.Lookup(id)
	if !ok || got != created {
		t.Error("Expected Lookup to return the existing storage area")
	}
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	stale, fresh := NewID(), NewID()
	r.Storage(stale)
	now = now.Add(50 * time.Second)
	r.Storage(fresh)
	now = now.Add(30 * time.Second)

	if n := r.Sweep(); n != 1 {
		t.Fatalf("Expected 1 expired session, got %d", n)
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 live session, got %d", r.Len())
	}
}

func TestRegistrySweepDisabled(t *testing.T) {
	r := NewRegistry(0)
	r.now = func() time.Time { return time.Unix(0, 0) }
	r.Storage(NewID())
	r.now = time.Now
	if n := r.Sweep(); n != 0 {
		t.Errorf("Expected no expiry with ttl=0, got %d", n)
	}
}

func TestRegistryRunStopsOnCancel(t *testing.T) {
	r := NewRegistry(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, 10*time.Millisecond) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
