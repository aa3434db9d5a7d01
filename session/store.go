// Package session tracks the authenticated identity for a client process
// and broadcasts identity changes to interested components.
package session

import (
	"sync"

	"taskflow/model"
)

// Listener receives the current identity, or nil when signed out.
type Listener func(*model.User)

// Store holds the current identity. OnChange fires the listener immediately
// with the current state and again on every Set/Clear, mirroring the
// behavior of the auth provider's identity observer.
type Store struct {
	mu        sync.Mutex
	current   *model.User
	nextID    int
	listeners map[int]Listener
}

func NewStore() *Store {
	return &Store{listeners: map[int]Listener{}}
}

// Current returns the signed-in identity, if any.
func (s *Store) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// Set records a sign-in or identity switch.
func (s *Store) Set(u model.User) {
	s.mu.Lock()
	s.current = &u
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(&u)
	}
}

// Clear records a sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(nil)
	}
}

// OnChange registers a listener and fires it immediately with the current
// identity. The returned func unsubscribes.
func (s *Store) OnChange(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// snapshotListeners must be called with the lock held.
func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}
