// Package redis provides a Redis-backed web cache store for deployments that
// run more than one web replica.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	webstorage "github.com/louisbranch/javabite/internal/services/web/storage"
)

const keyPrefix = "javabite:web:cache:"

// commands is the subset of the go-redis client the cache uses.
type commands interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// CacheStore implements storage.CacheStore on Redis.
type CacheStore struct {
	client commands
	closer func() error
	now    func() time.Time
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, opts Options) (*CacheStore, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &CacheStore{client: client, closer: client.Close, now: time.Now}, nil
}

func newCacheStore(client commands, now func() time.Time) *CacheStore {
	return &CacheStore{client: client, now: now}
}

// Close releases the connection.
func (s *CacheStore) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}

type record struct {
	Scope       string    `json:"scope"`
	Payload     []byte    `json:"payload"`
	RefreshedAt time.Time `json:"refreshedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func cacheKey(key string) string {
	return keyPrefix + key
}

// GetCacheEntry loads a cache entry; a missing key is not an error.
func (s *CacheStore) GetCacheEntry(ctx context.Context, key string) (webstorage.CacheEntry, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return webstorage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}
	raw, err := s.client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return webstorage.CacheEntry{}, false, nil
		}
		return webstorage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return webstorage.CacheEntry{}, false, fmt.Errorf("decode cache entry: %w", err)
	}
	return webstorage.CacheEntry{
		CacheKey:     key,
		Scope:        rec.Scope,
		PayloadBytes: rec.Payload,
		RefreshedAt:  rec.RefreshedAt,
		ExpiresAt:    rec.ExpiresAt,
	}, true, nil
}

// PutCacheEntry stores an entry; Redis expires it at ExpiresAt.
func (s *CacheStore) PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error {
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if strings.TrimSpace(entry.Scope) == "" {
		return fmt.Errorf("cache scope is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	now := s.now().UTC()
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = now
	}
	var ttl time.Duration
	if !entry.ExpiresAt.IsZero() {
		ttl = entry.ExpiresAt.Sub(now)
		if ttl <= 0 {
			return s.DeleteCacheEntry(ctx, entry.CacheKey)
		}
	}
	payload, err := json.Marshal(record{
		Scope:       strings.TrimSpace(entry.Scope),
		Payload:     entry.PayloadBytes,
		RefreshedAt: entry.RefreshedAt.UTC(),
		ExpiresAt:   entry.ExpiresAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := s.client.Set(ctx, cacheKey(entry.CacheKey), payload, ttl).Err(); err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes an entry.
func (s *CacheStore) DeleteCacheEntry(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("cache key is required")
	}
	if err := s.client.Del(ctx, cacheKey(key)).Err(); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

var _ webstorage.CacheStore = (*CacheStore)(nil)
