package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dailydot:webhook:"

// RedisStore помечает обработанные события вебхука. Метка ставится до
// обработки и снимается, если обработка не удалась.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func key(eventID string) string {
	return keyPrefix + eventID
}

// Claim возвращает false, если событие уже заявлено другим вызовом.
func (s *RedisStore) Claim(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key(eventID), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim webhook event %s: %w", eventID, err)
	}
	return ok, nil
}

func (s *RedisStore) Release(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, key(eventID)).Err(); err != nil {
		return fmt.Errorf("release webhook event %s: %w", eventID, err)
	}
	return nil
}
