package telegram

import (
	"context"

	"github.com/rs/zerolog"

	"happybot/internal/domain/ports/adapter"
)

var _ adapter.TelegramBotAdapter = (*NoopBotAdapter)(nil)

// NoopBotAdapter stands in when no bot token is configured. It blocks until
// the context ends so the lifecycle matches the real adapter.
type NoopBotAdapter struct {
	log *zerolog.Logger
}

func NewNoopBotAdapter(logger *zerolog.Logger) *NoopBotAdapter {
	l := logger.With().Str("component", "TelegramBot").Logger()
	return &NoopBotAdapter{log: &l}
}

func (b *NoopBotAdapter) StartPolling(ctx context.Context) error {
	b.log.Info().Msg("telegram disabled, noop adapter running")
	<-ctx.Done()
	return ctx.Err()
}

func (b *NoopBotAdapter) StopPolling() {}
