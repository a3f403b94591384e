// Package cache keeps short-lived copies of backend reads that every visitor
// shares, such as the customer menu.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	webstorage "github.com/louisbranch/javabite/internal/services/web/storage"
)

const (
	menuCacheKey   = "menu:customer"
	menuCacheScope = "menu"

	// DefaultMenuTTL is used when no menu cache lifetime is configured.
	DefaultMenuTTL = 60 * time.Second
)

// MenuCache serves the customer menu from a CacheStore. A nil MenuCache, or
// one without a store, always reads through.
type MenuCache struct {
	store  webstorage.CacheStore
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

// NewMenuCache builds a menu cache over store.
func NewMenuCache(store webstorage.CacheStore, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = DefaultMenuTTL
	}
	return &MenuCache{store: store, ttl: ttl, now: time.Now, logger: log.Default()}
}

// Load returns the cached menu, calling fetch and caching its result on a
// miss. Cache failures are logged and never fail the read.
func (c *MenuCache) Load(ctx context.Context, fetch func(context.Context) ([]restapi.MenuItem, error)) ([]restapi.MenuItem, error) {
	if c == nil || c.store == nil {
		return fetch(ctx)
	}
	if items, ok := c.cached(ctx); ok {
		return items, nil
	}
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, items)
	return items, nil
}

// Invalidate drops the cached menu so the next Load reads the backend.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	if err := c.store.DeleteCacheEntry(ctx, menuCacheKey); err != nil {
		c.logger.Printf("menu cache invalidate failed err=%v", err)
	}
}

func (c *MenuCache) cached(ctx context.Context) ([]restapi.MenuItem, bool) {
	entry, ok, err := c.store.GetCacheEntry(ctx, menuCacheKey)
	if err != nil {
		c.logger.Printf("menu cache read failed err=%v", err)
		return nil, false
	}
	if !ok || len(entry.PayloadBytes) == 0 {
		return nil, false
	}
	if !entry.Fresh(c.now()) {
		c.Invalidate(ctx)
		return nil, false
	}
	var items []restapi.MenuItem
	if err := json.Unmarshal(entry.PayloadBytes, &items); err != nil {
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

func (c *MenuCache) put(ctx context.Context, items []restapi.MenuItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	now := c.now().UTC()
	err = c.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     menuCacheKey,
		Scope:        menuCacheScope,
		PayloadBytes: payload,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(c.ttl),
	})
	if err != nil {
		c.logger.Printf("menu cache write failed err=%v", err)
	}
}
