package session

import (
	"context"
	"errors"
)

// ErrNoSession сессия с таким идентификатором не найдена или истекла.
var ErrNoSession = errors.New("session not found")

// Store хранилище сессий. Реализации: MemoryStore (по умолчанию,
// процесс-локальное) и RedisStore (для нескольких экземпляров сервера).
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
