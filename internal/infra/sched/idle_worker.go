// File: internal/infra/sched/idle_worker.go
package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"happybot/internal/usecase"
)

// EngineLister exposes the live engines a worker should visit each tick.
type EngineLister interface {
	ForEachEngine(visit func(engine usecase.EngineUseCase))
}

// IdleWorker periodically gives every session a chance to emit an unprompted
// fun remark. The probability check and the game-active skip live in the
// engine; the worker only provides the heartbeat.
type IdleWorker struct {
	interval time.Duration
	engines  EngineLister
	log      *zerolog.Logger
}

func NewIdleWorker(interval time.Duration, engines EngineLister, logger *zerolog.Logger) *IdleWorker {
	l := logger.With().Str("component", "IdleWorker").Logger()
	return &IdleWorker{interval: interval, engines: engines, log: &l}
}

func (w *IdleWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting idle worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping idle worker")
			return ctx.Err()
		case <-ticker.C:
			fired := 0
			w.engines.ForEachEngine(func(e usecase.EngineUseCase) {
				if e.MaybeIdleRemark(ctx) {
					fired++
				}
			})
			if fired > 0 {
				w.log.Debug().Int("count", fired).Msg("idle remarks emitted")
			}
		}
	}
}
