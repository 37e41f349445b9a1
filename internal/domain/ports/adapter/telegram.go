// File: internal/domain/ports/adapter/telegram.go
package adapter

import "context"

// TelegramBotAdapter is the optional telegram frontend. StartPolling blocks
// until ctx is canceled.
type TelegramBotAdapter interface {
	StartPolling(ctx context.Context) error
	StopPolling()
}
