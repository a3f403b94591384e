package cart

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/louisbranch/javabite/internal/services/web/storage"
)

const lockStripes = 64

// Repository loads and saves one cart per session. Updates to the same
// session are serialized.
type Repository struct {
	store storage.CartStore
	locks [lockStripes]sync.Mutex
}

// NewRepository builds a Repository over store.
func NewRepository(store storage.CartStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) lock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &r.locks[h.Sum32()%lockStripes]
}

// Load returns the session cart; a session without lines gets an empty cart.
func (r *Repository) Load(ctx context.Context, sessionID string) (*Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	stored, err := r.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	lines := make([]Line, 0, len(stored))
	for _, line := range stored {
		lines = append(lines, Line{MenuItemID: line.MenuItemID, Name: line.Name, Price: line.Price, Quantity: line.Quantity})
	}
	return New(lines...), nil
}

// Update applies mutate to the session cart and persists the result.
func (r *Repository) Update(ctx context.Context, sessionID string, mutate func(*Cart)) (*Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	c, err := r.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	mutate(c)
	if err := r.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the session cart. It waits for any Update on the same
// session.
func (r *Repository) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	return r.clear(ctx, sessionID)
}

// Drain hands the session cart to place and empties it only when place
// succeeds. The session stays locked until the cart is cleared.
func (r *Repository) Drain(ctx context.Context, sessionID string, place func(*Cart) error) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	mu := r.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	c, err := r.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := place(c); err != nil {
		return err
	}
	return r.clear(ctx, sessionID)
}

func (r *Repository) clear(ctx context.Context, sessionID string) error {
	if err := r.store.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, sessionID string, c *Cart) error {
	lines := c.Lines()
	stored := make([]storage.CartLine, 0, len(lines))
	for _, line := range lines {
		stored = append(stored, storage.CartLine{MenuItemID: line.MenuItemID, Name: line.Name, Price: line.Price, Quantity: line.Quantity})
	}
	if err := r.store.PutCart(ctx, sessionID, stored); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
