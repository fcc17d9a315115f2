// Package gamestate saves in-progress game data into session-scoped storage.
package gamestate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MJE43/surgery-games/internal/store"
)

// Key returns the storage key holding the state of gameID.
func Key(gameID string) string {
	return "game" + gameID + "State"
}

// Manager serialises arbitrary JSON-compatible values per game.
type Manager struct {
	storage store.Storage
}

// New returns a Manager over a session storage area.
func New(storage store.Storage) *Manager {
	return &Manager{storage: storage}
}

// Save encodes state as JSON and overwrites any previous value for gameID.
func (m *Manager) Save(ctx context.Context, gameID string, state any) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state for game %s: %w", gameID, err)
	}
	return m.storage.SetItem(ctx, Key(gameID), string(data))
}

// Load returns the stored JSON document of gameID. ok is false both when
// nothing is stored and when the stored text is not valid JSON; err is only
// set when the storage itself fails.
func (m *Manager) Load(ctx context.Context, gameID string) (json.RawMessage, bool, error) {
	raw, ok, err := m.storage.GetItem(ctx, Key(gameID))
	if err != nil {
		return nil, false, fmt.Errorf("load state for game %s: %w", gameID, err)
	}
	if !ok || !json.Valid([]byte(raw)) {
		return nil, false, nil
	}
	return json.RawMessage(raw), true, nil
}

// Clear removes the stored state of gameID.
func (m *Manager) Clear(ctx context.Context, gameID string) error {
	return m.storage.RemoveItem(ctx, Key(gameID))
}

// LoadInto decodes the state of gameID into a T. A document that does not
// decode into T is reported like an absent one.
func LoadInto[T any](ctx context.Context, m *Manager, gameID string) (T, bool, error) {
	var out T
	raw, ok, err := m.Load(ctx, gameID)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}
