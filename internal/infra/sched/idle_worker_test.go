// File: internal/infra/sched/idle_worker_test.go
package sched

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"happybot/internal/usecase"
)

// countingEngine stubs the one method the worker touches.
type countingEngine struct {
	usecase.EngineUseCase
	remarks atomic.Int64
}

func (c *countingEngine) MaybeIdleRemark(ctx context.Context) bool {
	c.remarks.Add(1)
	return true
}

type staticLister struct {
	engines []usecase.EngineUseCase
}

func (s *staticLister) ForEachEngine(visit func(usecase.EngineUseCase)) {
	for _, e := range s.engines {
		visit(e)
	}
}

func TestIdleWorker_VisitsEveryEngine(t *testing.T) {
	logger := zerolog.Nop()
	e1, e2 := &countingEngine{}, &countingEngine{}
	lister := &staticLister{engines: []usecase.EngineUseCase{e1, e2}}

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewIdleWorker(5*time.Millisecond, lister, &logger)
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for e1.remarks.Load() == 0 || e2.remarks.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("worker never visited both engines")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}

type countingEvicter struct {
	calls atomic.Int64
}

func (c *countingEvicter) EvictIdle(maxAge time.Duration) int {
	c.calls.Add(1)
	return 1
}

func TestJanitorWorker_TicksAndStops(t *testing.T) {
	logger := zerolog.Nop()
	hub := &countingEvicter{}

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewJanitorWorker(5*time.Millisecond, time.Minute, hub, &logger)
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for hub.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("janitor never ticked")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop on cancel")
	}
}
