// File: services/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CounterStore reads and writes fixed-window request counters.
type CounterStore interface {
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, count int, ttl time.Duration) error
}

// RedisCounterStore keeps counters in their own redis DB.
type RedisCounterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(client *redis.Client) CounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Get(ctx context.Context, key string) (int, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter value %q: %w", val, err)
	}
	return count, nil
}

func (s *RedisCounterStore) Set(ctx context.Context, key string, count int, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, count, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write counter: %w", err)
	}
	return nil
}

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// FixedWindowLimiter counts requests per client in fixed windows aligned to
// floor(now/window). The increment is a read-then-set upsert, not atomic
// under concurrency; two racing requests may both count as one. Storage
// errors fail open: the request is allowed and the error only logged.
type FixedWindowLimiter struct {
	Store  CounterStore
	Limit  int
	Window time.Duration
	Logger *zap.Logger

	// Now is swapped in tests.
	Now func() time.Time
}

func NewFixedWindowLimiter(store CounterStore, limit int, window time.Duration, logger *zap.Logger) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		Store:  store,
		Limit:  limit,
		Window: window,
		Logger: logger,
		Now:    time.Now,
	}
}

func (l *FixedWindowLimiter) windowKey(clientID string, now time.Time) string {
	windowSecs := int64(l.Window / time.Second)
	windowStart := (now.Unix() / windowSecs) * windowSecs
	return fmt.Sprintf("rl:%s:%d", clientID, windowStart)
}

// Allow checks and updates the current window's counter for the client.
// RetryAfter on rejection is the full window length, not the precise
// remaining time.
func (l *FixedWindowLimiter) Allow(ctx context.Context, clientID string) Decision {
	key := l.windowKey(clientID, l.Now())

	count, err := l.Store.Get(ctx, key)
	if err != nil {
		l.Logger.Warn("rate limit read failed, allowing request",
			zap.String("client", clientID), zap.Error(err))
		return Decision{Allowed: true}
	}

	if count >= l.Limit {
		return Decision{Allowed: false, RetryAfter: l.Window}
	}

	if err := l.Store.Set(ctx, key, count+1, 2*l.Window); err != nil {
		l.Logger.Warn("rate limit write failed, allowing request",
			zap.String("client", clientID), zap.Error(err))
	}
	return Decision{Allowed: true}
}
