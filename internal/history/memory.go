package history

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps guest conversation logs in process memory. The store is
// capped: when a new session would exceed maxSessions the least recently
// used one is evicted, and sessions idle past the TTL are dropped on access.
type MemoryStore struct {
	mu          sync.Mutex
	maxSessions int
	ttl         time.Duration
	sessions    map[string]*memorySession

	now func() time.Time
}

type memorySession struct {
	msgs     []Message
	lastUsed time.Time
}

func NewMemoryStore(maxSessions int, ttl time.Duration) *MemoryStore {
	if maxSessions <= 0 {
		maxSessions = 1000
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		maxSessions: maxSessions,
		ttl:         ttl,
		sessions:    make(map[string]*memorySession),
		now:         time.Now,
	}
}

// History returns the log for a guest session id, creating it lazily.
func (s *MemoryStore) History(sessionID string) History {
	return &memoryHistory{store: s, id: sessionID}
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) session(id string) *memorySession {
	now := s.now()
	s.sweep(now)

	sess, ok := s.sessions[id]
	if !ok {
		if len(s.sessions) >= s.maxSessions {
			s.evictOldest()
		}
		sess = &memorySession{}
		s.sessions[id] = sess
	}
	sess.lastUsed = now
	return sess
}

func (s *MemoryStore) sweep(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *MemoryStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastUsed.Before(oldest) {
			oldestID = id
			oldest = sess.lastUsed
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

type memoryHistory struct {
	store *MemoryStore
	id    string
}

func (h *memoryHistory) Append(_ context.Context, msg Message) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	sess := h.store.session(h.id)
	sess.msgs = append(sess.msgs, msg)
	return nil
}

func (h *memoryHistory) Messages(_ context.Context) ([]Message, error) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	sess := h.store.session(h.id)
	out := make([]Message, len(sess.msgs))
	copy(out, sess.msgs)
	return out, nil
}
