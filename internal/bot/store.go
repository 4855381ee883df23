package bot

import "sync"

// SessionStore keeps in-progress forms keyed by user ID.
type SessionStore interface {
	Get(userID int64) (Session, bool)
	Set(userID int64, session Session)
	Remove(userID int64)
	Len() int
}

// MemoryStore is a process-local SessionStore. Sessions live until removed or
// until the process exits.
type MemoryStore struct {
	sessions map[int64]Session
	mu       sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]Session),
	}
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(userID int64) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[userID]
	if !ok {
		return Session{}, false
	}

	return session.clone(), true
}

func (m *MemoryStore) Set(userID int64, session Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[userID] = session.clone()
}

func (m *MemoryStore) Remove(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
