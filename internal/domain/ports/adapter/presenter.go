// File: internal/domain/ports/adapter/presenter.go
package adapter

import "context"

// Presenter is the outbound half of the presentation layer: the engine pushes
// every accepted user turn and every bot reply through it, in emission order.
// Implementations must not call back into the engine.
type Presenter interface {
	// BotMessage delivers one bot reply.
	BotMessage(ctx context.Context, text string)
	// UserEcho delivers the accepted user turn before it is processed.
	UserEcho(ctx context.Context, text, username string)
}
