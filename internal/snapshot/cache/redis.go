package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis key holding the cached entry.
const DefaultKey = "cardanopulse:snapshot"

// RedisClient is the subset of redis commands the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Redis shares the cached snapshot between processes. Expiry is enforced by the key TTL.
type Redis struct {
	client RedisClient
	key    string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedis creates a Redis cache. Empty key and non-positive ttl select the defaults.
func NewRedis(client RedisClient, key string, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, key: key, ttl: ttl, now: time.Now}, nil
}

func (r *Redis) Get(ctx context.Context) (snapshot.Entry, error) {
	entry, err := r.load(ctx)
	if err != nil {
		return snapshot.Entry{}, err
	}
	if entry.Expired(r.now()) {
		return snapshot.Entry{}, snapshot.ErrCacheMiss
	}
	return entry, nil
}

func (r *Redis) Set(ctx context.Context, snap snapshot.Snapshot) (snapshot.Entry, error) {
	now := r.now()
	entry := snapshot.Entry{
		Snapshot:  snap,
		CachedAt:  now,
		ExpiresAt: now.Add(r.ttl),
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return snapshot.Entry{}, fmt.Errorf("encode snapshot entry: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, r.ttl).Err(); err != nil {
		return snapshot.Entry{}, fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return entry, nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Info(ctx context.Context) (snapshot.CacheInfo, error) {
	entry, err := r.load(ctx)
	if errors.Is(err, snapshot.ErrCacheMiss) {
		return snapshot.CacheInfo{}, nil
	}
	if err != nil {
		return snapshot.CacheInfo{}, err
	}
	return snapshot.CacheInfo{
		HasCache:  true,
		CachedAt:  entry.CachedAt,
		ExpiresAt: entry.ExpiresAt,
		IsExpired: entry.Expired(r.now()),
	}, nil
}

func (r *Redis) load(ctx context.Context) (snapshot.Entry, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return snapshot.Entry{}, snapshot.ErrCacheMiss
	}
	if err != nil {
		return snapshot.Entry{}, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	var entry snapshot.Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return snapshot.Entry{}, fmt.Errorf("decode snapshot entry: %w", err)
	}
	return entry, nil
}
