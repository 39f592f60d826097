package history

import (
	"sort"
	"sync"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// session holds one conversation; its mutex serializes appends.
type session struct {
	mu        sync.Mutex
	exchanges []domain.Exchange
}

// MemoryStore keeps per-session history in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	retention int
}

// NewMemoryStore creates an empty store bounded to domain.HistoryRetention per session.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]*session),
		retention: domain.HistoryRetention,
	}
}

// Ensure creates an empty history for sessionID if none exists.
func (m *MemoryStore) Ensure(sessionID string) error {
	m.getOrCreate(sessionID)
	return nil
}

// Append adds an exchange and drops the oldest entries beyond the retention cap.
func (m *MemoryStore) Append(sessionID string, exchange domain.Exchange) error {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exchanges = append(s.exchanges, exchange)
	if over := len(s.exchanges) - m.retention; over > 0 {
		kept := make([]domain.Exchange, m.retention)
		copy(kept, s.exchanges[over:])
		s.exchanges = kept
	}
	return nil
}

// Recent returns a copy of the last n exchanges in insertion order.
func (m *MemoryStore) Recent(sessionID string, n int) ([]domain.Exchange, error) {
	s := m.get(sessionID)
	if s == nil || n <= 0 {
		return []domain.Exchange{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.exchanges) - n
	if start < 0 {
		start = 0
	}
	return cloneExchanges(s.exchanges[start:]), nil
}

// All returns a copy of the full session history.
func (m *MemoryStore) All(sessionID string) ([]domain.Exchange, error) {
	s := m.get(sessionID)
	if s == nil {
		return []domain.Exchange{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneExchanges(s.exchanges), nil
}

// Clear empties the session history. The session itself stays known.
func (m *MemoryStore) Clear(sessionID string) error {
	s := m.get(sessionID)
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = nil
	return nil
}

// Sessions lists known session identifiers in sorted order.
func (m *MemoryStore) Sessions() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MemoryStore) get(sessionID string) *session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[sessionID]
}

func (m *MemoryStore) getOrCreate(sessionID string) *session {
	if s := m.get(sessionID); s != nil {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		return s
	}
	s := &session{}
	m.sessions[sessionID] = s
	return s
}

func cloneExchanges(src []domain.Exchange) []domain.Exchange {
	out := make([]domain.Exchange, len(src))
	copy(out, src)
	return out
}

var _ ports.HistoryRepository = (*MemoryStore)(nil)
