// File: internal/infra/web/hub.go
package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"happybot/internal/application"
	"happybot/internal/domain"
	"happybot/internal/domain/ports/adapter"
	"happybot/internal/domain/ports/repository"
	"happybot/internal/infra/metrics"
	"happybot/internal/usecase"
)

// widgetSession ties one engine to its outbox and liveness timestamp.
type widgetSession struct {
	facade   *application.WidgetFacade
	outbox   *Outbox
	mu       sync.Mutex
	lastSeen time.Time
}

func (ws *widgetSession) touch() {
	ws.mu.Lock()
	ws.lastSeen = time.Now()
	ws.mu.Unlock()
}

func (ws *widgetSession) idleSince() time.Time {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.lastSeen
}

// Hub owns the browser sessions: one engine + outbox per visiting widget.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*widgetSession

	settingsRepo repository.SettingsRepository
	rnd          adapter.RandomSource
	tuning       usecase.Tuning
	log          *zerolog.Logger
}

func NewHub(settingsRepo repository.SettingsRepository, rnd adapter.RandomSource, tuning usecase.Tuning, logger *zerolog.Logger) *Hub {
	l := logger.With().Str("component", "Hub").Logger()
	return &Hub{
		sessions:     make(map[string]*widgetSession),
		settingsRepo: settingsRepo,
		rnd:          rnd,
		tuning:       tuning,
		log:          &l,
	}
}

// CreateSession builds a fresh engine for a widget visit. clientID is the
// browser's stable identity (it keys the settings blob); an empty clientID
// gets throwaway settings under the session ID. The returned messages are the
// greeting already emitted into the outbox.
func (h *Hub) CreateSession(ctx context.Context, clientID string) (string, []Message) {
	sessionID := uuid.NewString()
	if clientID == "" {
		clientID = sessionID
	}

	settingsUC := usecase.NewSettingsUseCase(ctx, h.settingsRepo, clientID, h.log)
	outbox := NewOutbox()
	engine := usecase.NewEngineUseCase(sessionID, settingsUC.Current(ctx).Username, outbox, h.rnd, settingsUC, h.tuning, h.log)

	ws := &widgetSession{
		facade:   application.NewWidgetFacade(engine, settingsUC),
		outbox:   outbox,
		lastSeen: time.Now(),
	}

	h.mu.Lock()
	h.sessions[sessionID] = ws
	h.mu.Unlock()

	metrics.IncSessionStarted("web")
	h.log.Info().Str("session_id", sessionID).Msg("session created")

	engine.Greet(ctx)
	return sessionID, outbox.Drain()
}

func (h *Hub) get(sessionID string) (*widgetSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ws, ok := h.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ws, nil
}

// ForEachEngine visits every live engine; used by the idle-chatter worker.
func (h *Hub) ForEachEngine(visit func(engine usecase.EngineUseCase)) {
	h.mu.Lock()
	engines := make([]usecase.EngineUseCase, 0, len(h.sessions))
	for _, ws := range h.sessions {
		engines = append(engines, ws.facade.Engine)
	}
	h.mu.Unlock()
	for _, e := range engines {
		visit(e)
	}
}

// EvictIdle drops sessions that have not been touched within maxAge and
// returns how many were evicted.
func (h *Hub) EvictIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for id, ws := range h.sessions {
		if ws.idleSince().Before(cutoff) {
			delete(h.sessions, id)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
