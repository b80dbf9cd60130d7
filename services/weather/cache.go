// File: services/weather/cache.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"windward/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheStatus describes how the returned snapshot was obtained.
type CacheStatus string

const (
	CacheHit   CacheStatus = "hit"
	CacheMiss  CacheStatus = "miss"
	CacheStale CacheStatus = "stale"
)

// FreshFor is how long a snapshot counts as fresh.
const FreshFor = time.Hour

// SnapshotStore persists the latest snapshot per location.
type SnapshotStore interface {
	Get(ctx context.Context, location string) (*models.WeatherSnapshot, error)
	Set(ctx context.Context, snapshot models.WeatherSnapshot) error
}

const snapshotKeyPrefix = "weather:forecast:"

// RedisSnapshotStore keeps snapshots as JSON without a TTL; staleness is
// decided by FetchedAt so stale fallback still has data to fall back on.
type RedisSnapshotStore struct {
	client *redis.Client
}

func NewRedisSnapshotStore(client *redis.Client) SnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func snapshotKey(location string) string {
	return snapshotKeyPrefix + location
}

func (s *RedisSnapshotStore) Get(ctx context.Context, location string) (*models.WeatherSnapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey(location)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot models.WeatherSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *RedisSnapshotStore) Set(ctx context.Context, snapshot models.WeatherSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey(snapshot.Location), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// Service serves the latest forecast for a location with stale fallback.
type Service struct {
	Fetcher Fetcher
	Store   SnapshotStore
	Logger  *zap.Logger

	// Now is swapped in tests.
	Now func() time.Time
}

func NewService(fetcher Fetcher, store SnapshotStore, logger *zap.Logger) *Service {
	return &Service{
		Fetcher: fetcher,
		Store:   store,
		Logger:  logger,
		Now:     time.Now,
	}
}

// Latest returns the newest snapshot for the location. A snapshot younger
// than FreshFor is served as-is ("hit"). Otherwise a live fetch is
// attempted: on success the snapshot is persisted and returned ("miss");
// on fetch failure the existing snapshot is returned regardless of age
// ("stale"); a fetch failure with nothing cached at all is a hard error.
func (s *Service) Latest(ctx context.Context, location string) (models.WeatherSnapshot, CacheStatus, error) {
	cached, err := s.Store.Get(ctx, location)
	if err != nil {
		s.Logger.Warn("snapshot store read failed", zap.String("location", location), zap.Error(err))
		cached = nil
	}

	now := s.Now()
	if cached != nil && cached.Age(now) < FreshFor {
		return *cached, CacheHit, nil
	}

	fresh, fetchErr := s.Fetcher.Fetch(ctx, location)
	if fetchErr == nil {
		if err := s.Store.Set(ctx, fresh); err != nil {
			s.Logger.Warn("failed to persist snapshot", zap.String("location", location), zap.Error(err))
		}
		return fresh, CacheMiss, nil
	}

	if cached != nil {
		s.Logger.Warn("weather fetch failed, serving stale snapshot",
			zap.String("location", location),
			zap.Duration("age", cached.Age(now)),
			zap.Error(fetchErr))
		return *cached, CacheStale, nil
	}

	return models.WeatherSnapshot{}, "", fmt.Errorf("weather fetch failed with no cached snapshot: %w", fetchErr)
}
