package session

import (
	"context"
	"sync"
	"time"

	"community/internal/domain/entity"
	"community/internal/domain/repository"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory, encoded exactly as in redis.
// Suitable for a single instance and for tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

var _ repository.SessionRepository = (*MemoryStore)(nil)

// NewID returns a random session id.
func (m *MemoryStore) NewID() (string, error) {
	return generateID()
}

// Load returns the stored session, or nil when absent or expired.
func (m *MemoryStore) Load(_ context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	if ok && !entry.expiresAt.After(m.now()) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, nil
	}

	return decode(entry.data)
}

// Save stores the session until its expiry.
func (m *MemoryStore) Save(_ context.Context, session *entity.Session) error {
	data, err := encode(session)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !session.ExpiresAt.After(m.now()) {
		delete(m.entries, session.ID)

		return nil
	}
	m.entries[session.ID] = memoryEntry{data: data, expiresAt: session.ExpiresAt}
	m.evictExpiredLocked()

	return nil
}

// Delete removes the session.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()

	return nil
}

func (m *MemoryStore) evictExpiredLocked() {
	now := m.now()
	for id, entry := range m.entries {
		if !entry.expiresAt.After(now) {
			delete(m.entries, id)
		}
	}
}
