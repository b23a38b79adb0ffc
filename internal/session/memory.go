package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore хранит сессии в памяти процесса. Истекшие сессии
// удаляются лениво при чтении.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore создает пустое хранилище сессий в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

// Get возвращает копию сессии по идентификатору.
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	const op = "session.MemoryStore.Get"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSession)
	}

	if s.Expired(time.Now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", op, ErrNoSession)
	}

	copied := s
	return &copied, nil
}

// Save сохраняет сессию, перезаписывая предыдущее состояние.
func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	const op = "session.MemoryStore.Save"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.Lock()
	m.sessions[s.ID] = *s
	m.mu.Unlock()
	return nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	const op = "session.MemoryStore.Delete"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
