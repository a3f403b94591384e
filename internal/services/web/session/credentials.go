package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/storage"
)

// Credentials binds one stored session to the REST client: it supplies the
// bearer token and persists tokens rotated by a mid-request refresh.
type Credentials struct {
	refreshMu sync.Mutex

	mu      sync.RWMutex
	store   storage.SessionStore
	record  storage.SessionRecord
	now     func() time.Time
	cleared bool
}

func newCredentials(store storage.SessionStore, record storage.SessionRecord, now func() time.Time) *Credentials {
	return &Credentials{store: store, record: record, now: now}
}

func (c *Credentials) Lock()   { c.refreshMu.Lock() }
func (c *Credentials) Unlock() { c.refreshMu.Unlock() }

// Current returns the tokens for the next backend call.
func (c *Credentials) Current() restapi.Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return restapi.Tokens{
		AccessToken:  c.record.AccessToken,
		RefreshToken: c.record.RefreshToken,
		UserID:       strings.TrimSpace(c.record.Profile.ID),
	}
}

// Profile returns the session profile.
func (c *Credentials) Profile() storage.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.record.Profile
}

// Store persists refreshed tokens and profile fields.
func (c *Credentials) Store(ctx context.Context, refreshed restapi.AuthResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	applyAuth(&c.record, refreshed)
	c.record.UpdatedAt = c.now().UTC()
	if err := c.store.PutSession(ctx, c.record); err != nil {
		return fmt.Errorf("save refreshed session: %w", err)
	}
	return nil
}

// UpdateProfile stores edited name and email after a successful profile save.
func (c *Credentials) UpdateProfile(ctx context.Context, name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleared {
		return nil
	}
	if name = strings.TrimSpace(name); name != "" {
		c.record.Profile.Name = name
	}
	if email = strings.TrimSpace(email); email != "" {
		c.record.Profile.Email = email
	}
	c.record.UpdatedAt = c.now().UTC()
	if err := c.store.PutSession(ctx, c.record); err != nil {
		return fmt.Errorf("save session profile: %w", err)
	}
	return nil
}

// Clear deletes the session after the backend refused to refresh it.
func (c *Credentials) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleared = true
	sessionID := c.record.ID
	c.record.AccessToken = ""
	c.record.RefreshToken = ""
	if err := c.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Cleared reports whether the session was dropped during this request.
func (c *Credentials) Cleared() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cleared
}

var _ restapi.Credentials = (*Credentials)(nil)
