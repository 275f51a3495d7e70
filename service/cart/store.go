package cart

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// ErrNoSession is returned when a cart is used outside an initialized
// session. This is a programming-error guard (the client never created or
// already tore down the session), not a user-triggerable condition.
var ErrNoSession = fmt.Errorf("cart session not initialized")

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// SessionStore owns one cart per active session. Sessions are created
// explicitly, looked up by id, and torn down on session end or by the
// idle-prune job. There is no persistence: a restart loses every cart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// NewSession creates an empty cart and returns its session id.
func (s *SessionStore) NewSession() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// No entropy means no usable session ids at all.
		panic(fmt.Sprintf("cart: session id generation failed: %v", err))
	}
	id := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[id] = &session{cart: NewCart(), lastSeen: s.now()}
	s.mu.Unlock()
	return id
}

// Get returns the cart for a session id, failing fast with ErrNoSession
// for unknown or ended sessions. Touches the session's last-seen time.
func (s *SessionStore) Get(id string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSession, id)
	}
	sess.lastSeen = s.now()
	return sess.cart, nil
}

// End tears down a session and its cart. Unknown ids are a no-op.
func (s *SessionStore) End(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of active sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// PruneIdle removes sessions untouched for longer than maxIdle and
// returns how many were dropped.
func (s *SessionStore) PruneIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxIdle)
	pruned := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
