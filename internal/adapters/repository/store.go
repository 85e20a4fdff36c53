package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/quiz"
)

// SessionStore keeps quiz sessions between requests.
type SessionStore interface {
	// Create stores s under a new id. Returns the id and how many sessions
	// were evicted to make room.
	Create(ctx context.Context, s *quiz.Session) (string, int, error)
	// Do runs fn on the session with exclusive access and refreshes its TTL.
	// Returns ErrNotFound when the id is unknown or expired.
	Do(ctx context.Context, id string, fn func(*quiz.Session) error) error
	// Delete drops a session. Returns false if it was not present.
	Delete(ctx context.Context, id string) bool
	// Len is the number of live sessions.
	Len(ctx context.Context) int
}

// HandoffStore holds quiz results until the results view reads them once.
type HandoffStore interface {
	// Issue stores msg and returns a single-use token.
	Issue(ctx context.Context, msg *handoff.QuizResults) (string, error)
	// Consume returns and removes the message for token.
	Consume(ctx context.Context, token string) (*handoff.QuizResults, bool)
	// Len is the number of unread messages.
	Len(ctx context.Context) int
}

type sessionStore struct {
	mu       sync.Mutex
	capacity int
	c        *ttlcache.Cache[string, *quiz.Session]
}

// NewSessionStore creates an in-memory session store.
func NewSessionStore(opts ...Option) SessionStore {
	cfg := newSettings(opts)
	return &sessionStore{capacity: cfg.capacity, c: newCache[*quiz.Session](cfg)}
}

func (s *sessionStore) Create(ctx context.Context, sess *quiz.Session) (string, int, error) {
	if sess == nil {
		return "", 0, ErrNilValue
	}
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Expired sessions must not count against capacity.
	s.c.DeleteExpired()
	evicted := 0
	if s.c.Len() >= s.capacity {
		evicted = 1
	}
	s.c.Set(id, sess, ttlcache.DefaultTTL)
	return id, evicted, nil
}

func (s *sessionStore) Do(ctx context.Context, id string, fn func(*quiz.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := live(s.c.Get(id))
	if !ok {
		return ErrNotFound
	}
	return fn(sess)
}

func (s *sessionStore) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.c.GetAndDelete(id)
	if !ok {
		return false
	}
	_, ok = live(item)
	return ok
}

func (s *sessionStore) Len(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.c.DeleteExpired()
	return s.c.Len()
}

type handoffStore struct {
	c *ttlcache.Cache[string, *handoff.QuizResults]
}

// NewHandoffStore creates an in-memory single-use message store.
func NewHandoffStore(opts ...Option) HandoffStore {
	return &handoffStore{c: newCache[*handoff.QuizResults](newSettings(opts))}
}

func (h *handoffStore) Issue(ctx context.Context, msg *handoff.QuizResults) (string, error) {
	if msg == nil {
		return "", ErrNilValue
	}
	token := uuid.NewString()
	h.c.Set(token, msg, ttlcache.DefaultTTL)
	return token, nil
}

func (h *handoffStore) Consume(ctx context.Context, token string) (*handoff.QuizResults, bool) {
	item, ok := h.c.GetAndDelete(token)
	if !ok {
		return nil, false
	}
	return live(item)
}

func (h *handoffStore) Len(ctx context.Context) int {
	h.c.DeleteExpired()
	return h.c.Len()
}
