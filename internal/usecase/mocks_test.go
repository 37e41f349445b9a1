// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"happybot/internal/domain"
	"happybot/internal/domain/ports/repository"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// recordingPresenter captures everything the engine emits.
type recordingPresenter struct {
	mu     sync.Mutex
	bot    []string
	echoes []string
}

func (p *recordingPresenter) BotMessage(ctx context.Context, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bot = append(p.bot, text)
}

func (p *recordingPresenter) UserEcho(ctx context.Context, text, username string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.echoes = append(p.echoes, text)
}

func (p *recordingPresenter) botMessages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.bot))
	copy(out, p.bot)
	return out
}

func (p *recordingPresenter) lastBot() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.bot) == 0 {
		return ""
	}
	return p.bot[len(p.bot)-1]
}

// scriptedRand replays a fixed sequence so random picks become deterministic.
// An exhausted script returns 0 for ints and 0.99 for floats.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if n > 0 {
		v %= n
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// memSettingsRepo is a small in-memory settings store used by unit tests.
type memSettingsRepo struct {
	mu      sync.Mutex
	store   map[string]repository.Settings
	loadErr error
	saveErr error
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{store: make(map[string]repository.Settings)}
}

func (m *memSettingsRepo) Load(ctx context.Context, ownerID string) (*repository.Settings, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[ownerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (m *memSettingsRepo) Save(ctx context.Context, ownerID string, s *repository.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[ownerID] = *s
	return nil
}

// testEngine bundles an engine with its fakes. The clock advances one second
// per read so the debounce window never trips by accident, and scheduled
// callbacks are captured for manual firing instead of running on real timers.
type testEngine struct {
	eng       *engineUC
	presenter *recordingPresenter
	rand      *scriptedRand
	repo      *memSettingsRepo

	mu       sync.Mutex
	deferred []func()
}

func newTestEngine(rnd *scriptedRand) *testEngine {
	ctx := context.Background()
	repo := newMemSettingsRepo()
	settings := NewSettingsUseCase(ctx, repo, "owner-1", newTestLogger())
	presenter := &recordingPresenter{}
	eng := NewEngineUseCase("sess-1", "Friend", presenter, rnd, settings, DefaultTuning(), newTestLogger())

	te := &testEngine{eng: eng, presenter: presenter, rand: rnd, repo: repo}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	eng.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	eng.after = func(d time.Duration, f func()) {
		te.mu.Lock()
		te.deferred = append(te.deferred, f)
		te.mu.Unlock()
	}
	return te
}

// fireDeferred runs all captured delayed callbacks in scheduling order.
func (te *testEngine) fireDeferred() {
	te.mu.Lock()
	fns := te.deferred
	te.deferred = nil
	te.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

func (te *testEngine) deferredCount() int {
	te.mu.Lock()
	defer te.mu.Unlock()
	return len(te.deferred)
}
