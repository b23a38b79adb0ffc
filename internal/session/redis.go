package session

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/subscription-shop/internal/cache"
)

const redisKeyPrefix = "session:"

// RedisStore хранит сессии в Redis. Срок жизни ключа совпадает
// со сроком жизни сессии.
type RedisStore struct {
	cache *cache.Cache
}

// NewRedisStore создает хранилище сессий поверх подключения к Redis.
func NewRedisStore(c *cache.Cache) *RedisStore {
	return &RedisStore{cache: c}
}

// Get возвращает сессию по идентификатору.
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	const op = "session.RedisStore.Get"

	var s Session
	found, err := r.cache.Get(ctx, redisKeyPrefix+id, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found || s.Expired(time.Now()) {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSession)
	}
	return &s, nil
}

// Save сохраняет сессию до момента ее истечения.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	const op = "session.RedisStore.Save"

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%s: %w", op, ErrNoSession)
	}
	if err := r.cache.Set(ctx, redisKeyPrefix+s.ID, s, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет сессию.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	const op = "session.RedisStore.Delete"

	if err := r.cache.Invalidate(ctx, redisKeyPrefix+id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
