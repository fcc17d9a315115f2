// Package session keeps the session-scoped storage areas of connected browsers.
//
// A session lives as long as its browser keeps presenting the session cookie
// and is dropped after being idle for longer than the registry TTL.
package session

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MJE43/surgery-games/internal/store"
)

// CookieName is the cookie carrying the session id.
const CookieName = "sg_session"

type entry struct {
	storage  *store.Memory
	lastSeen time.Time
}

// Registry maps session ids to their in-memory storage areas.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	now      func() time.Time
	logger   *log.Logger
}

// NewRegistry creates a registry that expires sessions idle longer than ttl.
// A non-positive ttl disables expiry.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      ttl,
		now:      time.Now,
		logger:   log.New(os.Stdout, "[SESSION] ", log.LstdFlags),
	}
}

// NewID returns a fresh random session id.
func NewID() uuid.UUID { return uuid.New() }

// Storage returns the storage area of session id, creating it on first use.
func (r *Registry) Storage(id uuid.UUID) store.Storage {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		e = &entry{storage: store.NewMemory()}
		r.sessions[id] = e
	}
	e.lastSeen = r.now()
	return e.storage
}

// Lookup returns the storage area of an existing session without creating one.
func (r *Registry) Lookup(id uuid.UUID) (store.Storage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.storage, true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Printf("sessions_expired count=%d live=%d", n, r.Len())
			}
		}
	}
}
