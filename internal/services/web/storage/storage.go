package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the signed-in user's identity as reported by the backend.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionRecord is the server-side half of one browser session: the tokens
// and profile the browser would otherwise keep locally.
type SessionRecord struct {
	ID           string
	AccessToken  string
	RefreshToken string
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ExpiresAt    time.Time
}

// CartLine is one persisted cart entry.
type CartLine struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// CacheEntry stores one derived payload with its expiry.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Fresh reports whether the entry is still usable at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	return e.ExpiresAt.IsZero() || now.Before(e.ExpiresAt)
}

// SessionStore persists sessions.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (SessionRecord, bool, error)
	PutSession(ctx context.Context, record SessionRecord) error
	// DeleteSession removes the session and everything keyed by it.
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// CartStore persists one cart per session.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) ([]CartLine, error)
	PutCart(ctx context.Context, sessionID string, lines []CartLine) error
	DeleteCart(ctx context.Context, sessionID string) error
}

// CacheStore persists derived read payloads.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
}

// Store is the full web persistence contract backed by one database.
type Store interface {
	SessionStore
	CartStore
	CacheStore
	Close() error
}
