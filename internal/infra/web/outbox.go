// File: internal/infra/web/outbox.go
package web

import (
	"context"
	"sync"
	"time"

	"happybot/internal/domain/ports/adapter"
)

var _ adapter.Presenter = (*Outbox)(nil)

// outboxCap bounds the pending message buffer; a widget that never polls must
// not grow the server. Oldest messages are dropped first.
const outboxCap = 256

// Message is one presentation event queued for the browser widget.
type Message struct {
	Role     string    `json:"role"` // "bot" | "user"
	Text     string    `json:"text"`
	Username string    `json:"username,omitempty"`
	Time     time.Time `json:"time"`
}

// Outbox buffers engine emissions until the widget drains them, either in the
// response of a submit call or via polling. It is the web frontend's
// Presenter.
type Outbox struct {
	mu   sync.Mutex
	msgs []Message
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) BotMessage(ctx context.Context, text string) {
	o.push(Message{Role: "bot", Text: text, Time: time.Now()})
}

func (o *Outbox) UserEcho(ctx context.Context, text, username string) {
	o.push(Message{Role: "user", Text: text, Username: username, Time: time.Now()})
}

func (o *Outbox) push(m Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, m)
	if len(o.msgs) > outboxCap {
		o.msgs = o.msgs[len(o.msgs)-outboxCap:]
	}
}

// Drain returns and clears all pending messages in emission order.
func (o *Outbox) Drain() []Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.msgs
	o.msgs = nil
	return out
}
