package ai

import "context"

type Message struct {
	Role    string
	Content string
}

// Provider generates one assistant reply for a system persona plus an
// ordered conversation.
type Provider interface {
	Chat(ctx context.Context, system string, messages []Message) (string, error)
}
