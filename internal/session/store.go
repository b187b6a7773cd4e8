package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	username  string
	createdAt time.Time
}

// Store maps opaque session tokens to usernames. A zero ttl means sessions
// never expire and live until an explicit Destroy.
type Store struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]session),
		ttl:      ttl,
	}
}

func (s *Store) Create(username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{
		username:  username,
		createdAt: time.Now(),
	}
	return token
}

func (s *Store) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if s.expired(sess) {
		delete(s.sessions, token)
		return "", false
	}
	return sess.username, true
}

// Destroy is an idempotent no-op for unknown tokens.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, sess := range s.sessions {
		if !s.expired(sess) {
			count++
		}
	}
	return count
}

func (s *Store) expired(sess session) bool {
	if s.ttl == 0 {
		return false
	}
	return time.Since(sess.createdAt) > s.ttl
}
