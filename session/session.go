// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"

	"github.com/google/uuid"
)

// sendBuffer is the capacity of a session's outbound channel. A session
// whose buffer is full at delivery time drops that frame rather than
// blocking the sender.
const sendBuffer = 16

// Session is the server-side record of one live connection. It is created
// by Registry.Register and must only be closed through Registry.Unregister.
type Session struct {
	ID string

	mu    sync.Mutex
	open  bool
	voted bool
	send  chan []byte
}

// Outbound returns the channel the connection's write pump drains. The
// channel is closed when the session is unregistered.
func (s *Session) Outbound() <-chan []byte {
	return s.send
}

// Deliver queues a frame for the session's write pump without blocking.
// Returns false if the session is closed or its buffer is full; the frame
// is dropped in either case.
func (s *Session) Deliver(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return false
	}
	select {
	case s.send <- frame:
		return true
	default:
		return false
	}
}

// markVoted atomically flips the voted flag. Returns true only on the
// false->true transition of an open session.
func (s *Session) markVoted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || s.voted {
		return false
	}
	s.voted = true
	return true
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		s.open = false
		close(s.send)
	}
}

// Registry tracks every live session and which of them have voted. It is
// the only owner of Session lifecycles.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Register creates a new open session with voted=false and a fresh random
// identifier, unique for the process lifetime.
func (r *Registry) Register() *Session {
	s := &Session{
		ID:   uuid.NewString(),
		open: true,
		send: make(chan []byte, sendBuffer),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

// MarkVoted atomically checks-and-sets the voted flag for the given
// session. Returns true only if the session exists, is open, and had not
// voted; callers must not increment the tally when this returns false.
func (r *Registry) MarkVoted(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return false
	}
	return s.markVoted()
}

// Unregister closes the session and removes it from the active set.
// Idempotent; unknown identifiers are a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.close()
	}
}

// Active returns a snapshot of the currently registered sessions for
// broadcast purposes. A session closing concurrently may still appear in
// the slice; Deliver on it is a safe no-op.
func (r *Registry) Active() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
