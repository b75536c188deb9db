// Package history stores per-session conversation logs. Guests get an
// in-memory store that dies with the process; registered users get a
// SQLite-backed store keyed by their durable session id.
package history

import (
	"context"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversational turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// History is an append-only, ordered log of turns for one session.
type History interface {
	Append(ctx context.Context, msg Message) error
	// Messages returns all prior turns in chronological order.
	Messages(ctx context.Context) ([]Message, error)
}
