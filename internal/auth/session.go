package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// Session holds the identity bound to one opaque token. Identity fields
// are written once at creation and never mutated afterward; only the
// activity timestamp changes.
type Session struct {
	Token      string
	UserID     int64
	Username   string
	Email      string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// SessionStore is an in-process store of authenticated sessions keyed by
// opaque token. Sessions expire after a fixed period of inactivity; every
// successful lookup refreshes the window. Expiry is lazy: stale entries
// are removed when touched, there is no background sweeper.
type SessionStore struct {
	sessions sync.Map // token -> *sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	session Session
}

const sessionTokenBytes = 32

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl: ttl,
		now: time.Now,
	}
}

// Create mints a new session for the given identity and returns its token.
func (s *SessionStore) Create(userID int64, username, email string) (Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return Session{}, fmt.Errorf("unable to generate session token: %w", err)
	}

	now := s.now()
	session := Session{
		Token:      token,
		UserID:     userID,
		Username:   username,
		Email:      email,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	s.sessions.Store(token, &sessionEntry{session: session})
	return session, nil
}

// Get returns the session for token if it exists and has not been idle
// past the store's TTL. A hit refreshes the inactivity window; a stale
// entry is removed and reported as a miss.
func (s *SessionStore) Get(token string) (Session, bool) {
	value, ok := s.sessions.Load(token)
	if !ok {
		return Session{}, false
	}

	entry := value.(*sessionEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := s.now()
	if now.Sub(entry.session.LastSeenAt) > s.ttl {
		s.sessions.Delete(token)
		return Session{}, false
	}

	entry.session.LastSeenAt = now
	return entry.session, true
}

// Destroy removes the session for token. Unknown tokens are a no-op, so
// logout is idempotent.
func (s *SessionStore) Destroy(token string) {
	s.sessions.Delete(token)
}

// Count returns the number of live sessions, expiring stale entries as it
// goes. Used by health reporting and tests.
func (s *SessionStore) Count() int {
	now := s.now()
	count := 0
	s.sessions.Range(func(key, value any) bool {
		entry := value.(*sessionEntry)
		entry.mu.Lock()
		stale := now.Sub(entry.session.LastSeenAt) > s.ttl
		entry.mu.Unlock()
		if stale {
			s.sessions.Delete(key)
		} else {
			count++
		}
		return true
	})
	return count
}

func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
