// Package flash keeps one-shot messages between a POST and the page it redirects to.
// Messages are keyed by a session id carried in the fyyur_session cookie.
package flash

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const CookieName = "fyyur_session"

// DefaultTTL bounds how long unread messages are kept.
const DefaultTTL = 10 * time.Minute

type Store interface {
	// Add queues msg for the requester, issuing a session cookie if needed.
	Add(w http.ResponseWriter, r *http.Request, msg string) error
	// Pop returns and clears the queued messages. Requests without a session get none.
	Pop(w http.ResponseWriter, r *http.Request) ([]string, error)
}

// session returns the request's session id. With create set, a missing or malformed
// cookie is replaced by a fresh id written to w.
func session(w http.ResponseWriter, r *http.Request, create bool) (string, bool) {
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value, true
		}
	}
	if !create {
		return "", false
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, true
}

// MemoryStore keeps messages in process memory. A session's queue is dropped once it
// has gone TTL without a new message, whether or not it was popped.
type MemoryStore struct {
	TTL time.Duration
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	messages []string
	expires  time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		TTL:     ttl,
		Now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Add(w http.ResponseWriter, r *http.Request, msg string) error {
	id, _ := session(w, r, true)
	now := s.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(now)
	e, ok := s.entries[id]
	if !ok {
		e = &memoryEntry{}
		s.entries[id] = e
	}
	e.messages = append(e.messages, msg)
	e.expires = now.Add(s.TTL)
	return nil
}

func (s *MemoryStore) Pop(w http.ResponseWriter, r *http.Request) ([]string, error) {
	id, ok := session(w, r, false)
	if !ok {
		return nil, nil
	}
	now := s.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	delete(s.entries, id)
	if !now.Before(e.expires) {
		return nil, nil
	}
	return e.messages, nil
}

// Len is the number of sessions holding messages, expired ones included until the next Add.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) prune(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
}
