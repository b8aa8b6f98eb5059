package http

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-quiz/internal/session"
)

var errSessionNotFound = errors.New("session not found")

type sessionEntry struct {
	mu        sync.Mutex
	id        string
	owner     string
	startedAt time.Time
	s         *session.Session
}

// SessionView is the JSON shape of a session.
type SessionView struct {
	ID        string   `json:"id"`
	Owner     string   `json:"owner"`
	Index     int      `json:"index"`
	Answers   []string `json:"answers"`
	StartedAt int64    `json:"started_at"`
}

// SessionRegistry holds live sessions in memory. Each session is driven
// by one request at a time. Sessions older than the TTL are dropped by Prune.
type SessionRegistry struct {
	mu  sync.RWMutex
	m   map[string]*sessionEntry
	ttl time.Duration
}

// NewSessionRegistry keeps sessions for ttl after they start; ttl <= 0 keeps them forever.
func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{m: map[string]*sessionEntry{}, ttl: ttl}
}

// Len reports the number of live sessions.
func (reg *SessionRegistry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.m)
}

// Prune removes sessions whose time ran out before now and returns how many.
func (reg *SessionRegistry) Prune(now time.Time) int {
	if reg.ttl <= 0 {
		return 0
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	n := 0
	for id, e := range reg.m {
		if now.Sub(e.startedAt) > reg.ttl {
			delete(reg.m, id)
			n++
		}
	}
	return n
}

// PruneEvery runs Prune on each tick until ctx is done.
func (reg *SessionRegistry) PruneEvery(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := reg.Prune(now); n > 0 {
				log.Printf("pruned %d expired sessions", n)
			}
		}
	}
}

func (reg *SessionRegistry) Start(owner string) SessionView {
	e := &sessionEntry{
		id:        uuid.NewString(),
		owner:     owner,
		startedAt: time.Now(),
		s:         session.New(),
	}
	reg.mu.Lock()
	reg.m[e.id] = e
	reg.mu.Unlock()
	log.Printf("session %s started for %s", e.id, owner)
	return e.view()
}

// With runs fn on the session while holding its lock.
func (reg *SessionRegistry) With(id string, fn func(owner string, s *session.Session) error) (SessionView, error) {
	reg.mu.RLock()
	e, ok := reg.m[id]
	reg.mu.RUnlock()
	if !ok {
		return SessionView{}, errSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.owner, e.s); err != nil {
		return SessionView{}, err
	}
	return e.view(), nil
}

// caller holds e.mu, or e is not yet shared
func (e *sessionEntry) view() SessionView {
	return SessionView{
		ID:        e.id,
		Owner:     e.owner,
		Index:     e.s.CurrentIndex(),
		Answers:   e.s.Answers(),
		StartedAt: e.startedAt.Unix(),
	}
}
