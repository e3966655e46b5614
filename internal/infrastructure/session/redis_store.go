package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"susunara/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "susunara:session:"

// RedisSessionStore keeps admin session tokens in Redis with a TTL, so a
// restart of the API never logs anyone out and tokens expire on their own.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - SESSION_TTL_HOURS (default: 12)

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore() *RedisSessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ttlHours := 12
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}

	return &RedisSessionStore{client: client, ttl: time.Duration(ttlHours) * time.Hour}
}

func (s *RedisSessionStore) Issue(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), "1", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

func (s *RedisSessionStore) Validate(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, sessionKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("validate session: %w", err)
	}
	return true, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
