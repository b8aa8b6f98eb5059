package checkpoint

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-quiz/internal/session"
)

var ErrNotFound = errors.New("checkpoint not found")

// Record is a snapshot saved under a session, in save order.
type Record struct {
	ID        string           `json:"id"`
	SessionID string           `json:"session_id"`
	Label     string           `json:"label,omitempty"`
	Seq       int64            `json:"seq"`
	Snapshot  session.Snapshot `json:"snapshot"`
	CreatedAt int64            `json:"created_at"`
}

// Store journals snapshots per session.
type Store interface {
	Put(ctx context.Context, sessionID, label string, snap session.Snapshot) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, sessionID string) ([]Record, error)
	Latest(ctx context.Context, sessionID string) (Record, error)
}

type memoryStore struct {
	mu        sync.RWMutex
	byID      map[string]Record
	bySession map[string][]string
}

func NewMemoryStore() Store {
	return &memoryStore{
		byID:      map[string]Record{},
		bySession: map[string][]string{},
	}
}

func (m *memoryStore) Put(_ context.Context, sessionID, label string, snap session.Snapshot) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := Record{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Label:     label,
		Seq:       int64(len(m.bySession[sessionID]) + 1),
		Snapshot:  snap,
		CreatedAt: time.Now().Unix(),
	}
	m.byID[rec.ID] = rec
	m.bySession[sessionID] = append(m.bySession[sessionID], rec.ID)
	return rec, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *memoryStore) List(_ context.Context, sessionID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.bySession[sessionID]
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *memoryStore) Latest(_ context.Context, sessionID string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.bySession[sessionID]
	if len(ids) == 0 {
		return Record{}, ErrNotFound
	}
	return m.byID[ids[len(ids)-1]], nil
}
