// Package gameutil holds the small math and formatting helpers shared by the
// minigames: random picks, geometry, interpolation and score/time display.
package gameutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Rand produces the random values the games use. It is safe for concurrent use.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a Rand with a deterministic seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// newSeed reads a seed from crypto/rand.
func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

var defaultRand = NewRand(newSeed())

// Int returns a uniform integer in [min, max], both inclusive.
func (g *Rand) Int(min, max int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.IntN(max-min+1) + min
}

// Float returns a uniform float in [min, max).
func (g *Rand) Float(min, max float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Float64()*(max-min) + min
}

func (g *Rand) index(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.IntN(n)
}

// Choice picks a uniform element of items. It panics on an empty slice.
func Choice[T any](g *Rand, items []T) T {
	return items[g.index(len(items))]
}

func RandomInt(min, max int) int { return defaultRand.Int(min, max) }

func RandomFloat(min, max float64) float64 { return defaultRand.Float(min, max) }

// RandomChoice picks a uniform element of items. Callers must not pass an
// empty slice.
func RandomChoice[T any](items []T) T { return Choice(defaultRand, items) }
