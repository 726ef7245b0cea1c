package listing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	controller *Controller
	lastSeen   time.Time
}

// Store keeps listing controllers between requests. A session idle for longer
// than the TTL is discarded, like a page the user navigated away from.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

// NewStore creates a new Store
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Add registers c and returns its session id
func (s *Store) Add(c *Controller) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	id := uuid.NewString()
	s.sessions[id] = &session{controller: c, lastSeen: s.now()}
	return id
}

// Get returns the controller of session id and marks it as used
func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		s.removeLocked(id)
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.controller, true
}

// Delete discards session id. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	s.removeLocked(id)
	return true
}

// Sweep discards expired sessions and returns how many were removed
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(sess *session) bool {
	return s.ttl > 0 && s.now().Sub(sess.lastSeen) > s.ttl
}

func (s *Store) sweepLocked() int {
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			s.removeLocked(id)
			removed++
		}
	}
	return removed
}

func (s *Store) removeLocked(id string) {
	if sess, ok := s.sessions[id]; ok {
		if sess.controller != nil {
			sess.controller.Close()
		}
		delete(s.sessions, id)
	}
}
