package history

import (
	"context"
	"time"
)

// Timestamped wraps a history so every appended message carries a UTC
// creation time before it reaches the underlying store.
func Timestamped(next History) History {
	return &timestamped{next: next}
}

type timestamped struct {
	next History
}

func (t *timestamped) Append(ctx context.Context, msg Message) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	return t.next.Append(ctx, msg)
}

func (t *timestamped) Messages(ctx context.Context) ([]Message, error) {
	return t.next.Messages(ctx)
}
