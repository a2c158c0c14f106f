package mocks

import (
	"sync"

	"github.com/GioMjds/paynal-prajik/infras/otel"
)

// Scope records what a traced call reported instead of exporting it.
type Scope struct {
	mu     sync.Mutex
	Errors []error
	Events []string
	Attrs  map[string]any
	Ended  bool
}

func NewScope() *Scope {
	return &Scope{Attrs: map[string]any{}}
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err *error) {
	if err != nil {
		s.TraceError(*err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attrs[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

var _ otel.Scope = (*Scope)(nil)
