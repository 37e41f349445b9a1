// File: internal/infra/sched/janitor_worker.go
package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SessionEvicter drops sessions idle for longer than maxAge.
type SessionEvicter interface {
	EvictIdle(maxAge time.Duration) int
}

// JanitorWorker reclaims abandoned widget sessions.
type JanitorWorker struct {
	interval time.Duration
	maxAge   time.Duration
	hub      SessionEvicter
	log      *zerolog.Logger
}

func NewJanitorWorker(interval, maxAge time.Duration, hub SessionEvicter, logger *zerolog.Logger) *JanitorWorker {
	l := logger.With().Str("component", "JanitorWorker").Logger()
	return &JanitorWorker{interval: interval, maxAge: maxAge, hub: hub, log: &l}
}

func (w *JanitorWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("max_age", w.maxAge).Msg("Starting janitor worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping janitor worker")
			return ctx.Err()
		case <-ticker.C:
			if n := w.hub.EvictIdle(w.maxAge); n > 0 {
				w.log.Info().Int("count", n).Msg("idle sessions evicted")
			}
		}
	}
}
