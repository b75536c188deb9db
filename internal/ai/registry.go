package ai

import (
	"context"
	"fmt"
	"strings"
)

// Factory builds a Provider for a model name (empty means the provider's
// configured default).
type Factory func(ctx context.Context, model string) (Provider, error)

// Registry maps provider names to factories. It is populated once at
// startup and read-only afterwards.
type Registry map[string]Factory

func (r Registry) Register(name string, f Factory) {
	r[strings.ToLower(strings.TrimSpace(name))] = f
}

func (r Registry) Build(ctx context.Context, name, model string) (Provider, error) {
	f, ok := r[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown ai provider: %s", name)
	}
	return f(ctx, model)
}
