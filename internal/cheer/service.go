package cheer

import (
	"context"
	"sync"
)

// Service generates encouragement asynchronously. Only one line is
// in-flight at a time; new requests replace pending ones.
type Service struct {
	provider Provider
	fallback Provider

	mu      sync.Mutex
	pending string
	ready   bool
}

// NewService creates a service. fallback serves when provider fails; it
// must not fail itself.
func NewService(provider, fallback Provider) *Service {
	return &Service{provider: provider, fallback: fallback}
}

// Request starts async generation for a moment.
func (s *Service) Request(ctx context.Context, in Input) {
	go func() {
		line, err := s.provider.Cheer(ctx, in)
		if err != nil || line == "" {
			line, _ = s.fallback.Cheer(ctx, in)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = line
		s.ready = true
	}()
}

// Consume returns the pending line if one is ready. After consumption the
// pending slot is cleared.
func (s *Service) Consume() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", false
	}
	line := s.pending
	s.pending = ""
	s.ready = false
	return line, line != ""
}
