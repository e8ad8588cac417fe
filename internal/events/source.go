// Package events provides a minimal typed publish/subscribe primitive used to
// announce registry and code-file activity to zero or more observers.
package events

import "sync"

// Observer receives every value emitted on a Source after it registered, and,
// when the Source keeps history, every value emitted before as well.
type Observer[T any] func(T)

// Source is an ordered list of observers. Emission order follows registration
// order. A Source created with history enabled records every emitted value and
// replays the backlog to late subscribers at registration time, before any new
// emission reaches them.
//
// There is no uniqueness constraint: registering the same observer twice means
// it is invoked twice per emission. History is never pruned; a long-lived
// Source with history enabled grows for as long as it is emitted on.
type Source[T any] struct {
	mu        sync.Mutex
	observers []Observer[T]
	history   []T
	keep      bool
}

// NewSource creates a Source that does not retain history.
func NewSource[T any]() *Source[T] {
	return &Source[T]{}
}

// NewSourceWithHistory creates a Source that replays all past emissions to
// each newly registered observer.
func NewSourceWithHistory[T any]() *Source[T] {
	return &Source[T]{keep: true}
}

// Register adds an observer. If the Source keeps history, the observer first
// receives every previously emitted value in original order.
func (s *Source[T]) Register(fn Observer[T]) {
	s.mu.Lock()
	backlog := s.history
	s.observers = append(s.observers, fn)
	s.mu.Unlock()

	for _, v := range backlog {
		fn(v)
	}
}

// Emit delivers v to every registered observer in registration order.
func (s *Source[T]) Emit(v T) {
	s.mu.Lock()
	if s.keep {
		s.history = append(s.history, v)
	}
	observers := make([]Observer[T], len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
}

// Len returns the number of registered observers.
func (s *Source[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}
