// Package scores keeps the per-game high score in persistent storage.
package scores

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/MJE43/surgery-games/internal/store"
)

// Key returns the storage key holding the high score of gameID.
func Key(gameID string) string {
	return "game" + gameID + "Score"
}

// Manager reads and writes high scores. The stored value for a game only ever
// grows until it is reset.
type Manager struct {
	storage store.Storage

	// serialises the read-compare-write in Save
	mu sync.Mutex
}

// New returns a Manager over the persistent storage area.
func New(storage store.Storage) *Manager {
	return &Manager{storage: storage}
}

// Save records score for gameID if it beats the stored high score.
// It reports whether a new record was set.
func (m *Manager) Save(ctx context.Context, gameID string, score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.Get(ctx, gameID)
	if err != nil {
		return false, err
	}
	if score <= current {
		return false, nil
	}
	if err := m.storage.SetItem(ctx, Key(gameID), strconv.Itoa(score)); err != nil {
		return false, fmt.Errorf("save score for game %s: %w", gameID, err)
	}
	return true, nil
}

// Get returns the high score of gameID, or 0 if none is stored or the stored
// text is not a number.
func (m *Manager) Get(ctx context.Context, gameID string) (int, error) {
	raw, ok, err := m.storage.GetItem(ctx, Key(gameID))
	if err != nil {
		return 0, fmt.Errorf("get score for game %s: %w", gameID, err)
	}
	if !ok {
		return 0, nil
	}
	return parseLeadingInt(raw), nil
}

// Reset forgets the high score of gameID.
func (m *Manager) Reset(ctx context.Context, gameID string) error {
	return m.storage.RemoveItem(ctx, Key(gameID))
}

// ResetAll clears the entire persistent area, including keys that are not
// scores.
func (m *Manager) ResetAll(ctx context.Context) error {
	return m.storage.Clear(ctx)
}

// parseLeadingInt reads an optional sign and the leading run of decimal
// digits after any leading whitespace. Anything unparseable yields 0, and so
// does a digit run that overflows int; Save only ever writes values that fit.
func parseLeadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0
	}
	return n
}
