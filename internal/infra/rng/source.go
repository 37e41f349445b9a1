// File: internal/infra/rng/source.go
package rng

import (
	"math/rand"
	"sync"
	"time"

	"happybot/internal/domain/ports/adapter"
)

var _ adapter.RandomSource = (*Source)(nil)

// Source is a lockable math/rand-backed RandomSource. Seed 0 means
// time-seeded; any other seed makes the stream reproducible.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(seed))}
}

func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
