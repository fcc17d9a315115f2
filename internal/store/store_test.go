package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storages(t *testing.T) map[string]Storage {
	return map[string]Storage{
		"sqlite": newTestSQLite(t),
		"memory": NewMemory(),
	}
}

func TestStorageSetGetRemove(t *testing.T) {
	ctx := context.Background()
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.GetItem(ctx, "game1Score"); err != nil || ok {
				t.Fatalf("Expected absent key, got ok=%v err=%v", ok, err)
			}

			if err := s.SetItem(ctx, "game1Score", "10"); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := s.SetItem(ctx, "game1Score", "25"); err != nil {
				t.Fatalf("SetItem overwrite failed: %v", err)
			}

			v, ok, err := s.GetItem(ctx, "game1Score")
			if err != nil || !ok {
				t.Fatalf("Expected stored key, got ok=%v err=%v", ok, err)
			}
			if v != "25" {
				t.Errorf("Expected last write to win, got %q", v)
			}

			if err := s.RemoveItem(ctx, "game1Score"); err != nil {
				t.Fatalf("RemoveItem failed: %v", err)
			}
			if err := s.RemoveItem(ctx, "game1Score"); err != nil {
				t.Fatalf("RemoveItem of absent key should not fail: %v", err)
			}
			if _, ok, _ := s.GetItem(ctx, "game1Score"); ok {
				t.Error("Key should be absent after removal")
			}
		})
	}
}

func TestStorageClearAndKeys(t *testing.T) {
	ctx := context.Background()
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"game2Score", "game1Score", "theme"} {
				if err := s.SetItem(ctx, k, "x"); err != nil {
					t.Fatalf("SetItem failed: %v", err)
				}
			}

			keys, err := s.Keys(ctx)
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			want := []string{"game1Score", "game2Score", "theme"}
			if !reflect.DeepEqual(keys, want) {
				t.Errorf("Expected keys %v, got %v", want, keys)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear failed: %v", err)
			}
			keys, _ = s.Keys(ctx)
			if len(keys) != 0 {
				t.Errorf("Expected no keys after Clear, got %v", keys)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := s.SetItem(ctx, "game3Score", "99"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	s.Close()

	s, err = New(path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer s.Close()

	v, ok, err := s.GetItem(ctx, "game3Score")
	if err != nil || !ok || v != "99" {
		t.Errorf("Expected persisted value 99, got %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestMemoryLen(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.SetItem(ctx, "a", "1")
	_ = m.SetItem(ctx, "b", "2")
	if m.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", m.Len())
	}
}
