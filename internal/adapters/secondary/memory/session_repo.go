package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"phishing-url-service/internal/core/domain"
	ports "phishing-url-service/internal/core/ports/output"
)

const defaultMaxSessions = 10000

type sessionEntry struct {
	data      []byte
	expiresAt time.Time
}

// sessionRepo keeps sessions in process memory with a TTL. When full, the
// session closest to expiry is evicted.
type sessionRepo struct {
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
	entries map[uuid.UUID]*sessionEntry
	now     func() time.Time
}

func NewSessionRepository(ttl time.Duration, maxSize int) ports.SessionRepository {
	if maxSize <= 0 {
		maxSize = defaultMaxSessions
	}
	return &sessionRepo{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[uuid.UUID]*sessionEntry),
		now:     time.Now,
	}
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if r.now().After(e.expiresAt) {
		if e = r.dropExpired(id); e == nil {
			return nil, domain.ErrSessionNotFound
		}
	}

	// Stored as JSON so callers never share mutable state with the store.
	var s domain.Session
	if err := json.Unmarshal(e.data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[session.ID]; !exists && len(r.entries) >= r.maxSize {
		r.evictLocked()
	}
	r.entries[session.ID] = &sessionEntry{
		data:      data,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

// dropExpired deletes the entry for id if it is still expired under the write
// lock and returns the live entry otherwise. A Save racing with Get wins.
func (r *sessionRepo) dropExpired(id uuid.UUID) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	if r.now().After(e.expiresAt) {
		delete(r.entries, id)
		return nil
	}
	return e
}

func (r *sessionRepo) evictLocked() {
	var oldest uuid.UUID
	var oldestAt time.Time
	for id, e := range r.entries {
		if oldest == uuid.Nil || e.expiresAt.Before(oldestAt) {
			oldest = id
			oldestAt = e.expiresAt
		}
	}
	if oldest != uuid.Nil {
		delete(r.entries, oldest)
	}
}
