package restapi

import (
	"context"
	"sync"
)

// Tokens is the bearer state one browser session authenticates with.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	UserID       string
}

// Credentials is the per-session token store the client reads bearer tokens
// from and writes refreshed tokens back to. Implementations must be safe for
// concurrent use; Lock serializes refresh attempts for one session.
type Credentials interface {
	sync.Locker
	Current() Tokens
	// Store persists the tokens returned by a successful refresh.
	Store(ctx context.Context, refreshed AuthResponse) error
	// Clear drops the session tokens and profile after a failed refresh.
	Clear(ctx context.Context) error
}

type credentialsKey struct{}

// WithCredentials binds session credentials to ctx for subsequent calls.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if creds == nil {
		return ctx
	}
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFrom returns the credentials bound to ctx, if any.
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	if ctx == nil {
		return nil, false
	}
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok && creds != nil
}

// StaticCredentials is an in-memory Credentials value, used for one-off
// calls made right after sign-in and in tests.
type StaticCredentials struct {
	refreshMu sync.Mutex
	mu        sync.RWMutex
	tokens    Tokens
	cleared   bool
}

// NewStaticCredentials returns credentials holding tokens.
func NewStaticCredentials(tokens Tokens) *StaticCredentials {
	return &StaticCredentials{tokens: tokens}
}

func (c *StaticCredentials) Lock()   { c.refreshMu.Lock() }
func (c *StaticCredentials) Unlock() { c.refreshMu.Unlock() }

func (c *StaticCredentials) Current() Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

func (c *StaticCredentials) Store(_ context.Context, refreshed AuthResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens.AccessToken = refreshed.Token
	if refreshed.RefreshToken != "" {
		c.tokens.RefreshToken = refreshed.RefreshToken
	}
	if id := refreshed.ID.String(); id != "" {
		c.tokens.UserID = id
	}
	return nil
}

func (c *StaticCredentials) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = Tokens{}
	c.cleared = true
	return nil
}

// Cleared reports whether Clear was called.
func (c *StaticCredentials) Cleared() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cleared
}
