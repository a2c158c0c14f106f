package mocks

import (
	"context"
	"sync"

	"github.com/GioMjds/paynal-prajik/infras/otel"
)

// Otel hands out recording scopes and keeps the latest one per span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

func NewOtel() *Otel {
	return &Otel{scopes: map[string]*Scope{}}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()

	o.mu.Lock()
	o.scopes[spanName] = scope
	o.mu.Unlock()

	return ctx, scope
}

// Span returns the last scope opened under spanName, or nil.
func (o *Otel) Span(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

var _ otel.Otel = (*Otel)(nil)
