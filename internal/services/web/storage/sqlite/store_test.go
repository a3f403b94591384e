package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/louisbranch/javabite/internal/services/web/storage"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "web.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	store, path := openTestStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "web_sessions")
	assertTableExists(t, sqlDB, "cart_lines")
	assertTableExists(t, sqlDB, "cache_entries")
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.db")
	for i := 0; i < 2; i++ {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close #%d: %v", i+1, err)
		}
	}
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
	record := webstorage.SessionRecord{
		ID:           "sess-1",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Profile:      webstorage.Profile{ID: "7", Name: "Ana", Email: "ana@example.com", Role: "CUSTOMER"},
		ExpiresAt:    expiresAt,
	}
	if err := store.PutSession(ctx, record); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, found, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !found {
		t.Fatal("expected session row")
	}
	if got.AccessToken != "access-1" || got.RefreshToken != "refresh-1" {
		t.Fatalf("tokens = %q/%q", got.AccessToken, got.RefreshToken)
	}
	if got.Profile != record.Profile {
		t.Fatalf("profile = %+v, want %+v", got.Profile, record.Profile)
	}
	if !got.ExpiresAt.Equal(expiresAt) {
		t.Fatalf("expires at = %v, want %v", got.ExpiresAt, expiresAt)
	}

	_, found, err = store.GetSession(ctx, "missing")
	if err != nil || found {
		t.Fatalf("get missing = found %v err %v", found, err)
	}
}

func TestSessionPersistenceKeepsCreatedAtOnUpdate(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	record := webstorage.SessionRecord{ID: "sess-1", AccessToken: "a1", CreatedAt: created, ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.PutSession(ctx, record); err != nil {
		t.Fatalf("put session: %v", err)
	}
	record.AccessToken = "a2"
	record.CreatedAt = time.Now().UTC()
	if err := store.PutSession(ctx, record); err != nil {
		t.Fatalf("update session: %v", err)
	}

	got, _, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.AccessToken != "a2" {
		t.Fatalf("access token = %q, want a2", got.AccessToken)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created at = %v, want %v", got.CreatedAt, created)
	}
}

func TestSessionPersistencePrunesExpiredSessionsOnSave(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	if err := store.PutSession(ctx, webstorage.SessionRecord{ID: "old", AccessToken: "a", ExpiresAt: base.Add(time.Minute)}); err != nil {
		t.Fatalf("put old: %v", err)
	}
	if err := store.PutCart(ctx, "old", []webstorage.CartLine{{MenuItemID: "1", Name: "Tea", Price: decimal.NewFromInt(2), Quantity: 1}}); err != nil {
		t.Fatalf("put old cart: %v", err)
	}

	store.now = func() time.Time { return base.Add(time.Hour) }
	if _, found, _ := store.GetSession(ctx, "old"); found {
		t.Fatalf("expired session should read as missing")
	}
	if err := store.PutSession(ctx, webstorage.SessionRecord{ID: "new", AccessToken: "b", ExpiresAt: base.Add(2 * time.Hour)}); err != nil {
		t.Fatalf("put new: %v", err)
	}

	var count int
	if err := store.sqlDB.QueryRow(`SELECT COUNT(*) FROM web_sessions WHERE id = 'old'`).Scan(&count); err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expired session rows = %d, want 0", count)
	}
	lines, err := store.GetCart(ctx, "old")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expired cart lines = %d, want 0", len(lines))
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	for _, id := range []string{"a", "b"} {
		if err := store.PutSession(ctx, webstorage.SessionRecord{ID: id, AccessToken: "t", ExpiresAt: base.Add(time.Minute)}); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	removed, err := store.DeleteExpiredSessions(ctx, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
}

func TestCartPersistence(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, webstorage.SessionRecord{ID: "sess-1", AccessToken: "a", ExpiresAt: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("put session: %v", err)
	}

	lines := []webstorage.CartLine{
		{MenuItemID: "9", Name: "Cappuccino", Price: decimal.RequireFromString("3.25"), Quantity: 2},
		{MenuItemID: "3", Name: "Croissant", Price: decimal.RequireFromString("2.10"), Quantity: 1},
	}
	if err := store.PutCart(ctx, "sess-1", lines); err != nil {
		t.Fatalf("put cart: %v", err)
	}
	got, err := store.GetCart(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(got) != 2 || got[0].MenuItemID != "9" || got[1].MenuItemID != "3" {
		t.Fatalf("cart order = %+v", got)
	}
	if !got[0].Price.Equal(decimal.RequireFromString("3.25")) || got[0].Quantity != 2 {
		t.Fatalf("first line = %+v", got[0])
	}

	if err := store.PutCart(ctx, "sess-1", []webstorage.CartLine{{MenuItemID: "1", Quantity: 0}}); err == nil {
		t.Fatalf("expected quantity error")
	}

	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	got, err = store.GetCart(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get cart after delete: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("cart after session delete = %d lines, want 0", len(got))
	}
}

func TestCacheEntryPersistence(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	expiresAt := time.Now().UTC().Add(time.Minute).Truncate(time.Millisecond)
	entry := webstorage.CacheEntry{CacheKey: "menu:customer", Scope: "menu", PayloadBytes: []byte(`[]`), ExpiresAt: expiresAt}
	if err := store.PutCacheEntry(ctx, entry); err != nil {
		t.Fatalf("put cache entry: %v", err)
	}
	got, found, err := store.GetCacheEntry(ctx, "menu:customer")
	if err != nil || !found {
		t.Fatalf("get cache entry: found %v err %v", found, err)
	}
	if string(got.PayloadBytes) != `[]` || !got.ExpiresAt.Equal(expiresAt) || got.RefreshedAt.IsZero() {
		t.Fatalf("entry = %+v", got)
	}
	if !got.Fresh(time.Now()) || got.Fresh(expiresAt.Add(time.Second)) {
		t.Fatalf("unexpected freshness for %+v", got)
	}

	if err := store.DeleteCacheEntry(ctx, "menu:customer"); err != nil {
		t.Fatalf("delete cache entry: %v", err)
	}
	if _, found, _ := store.GetCacheEntry(ctx, "menu:customer"); found {
		t.Fatalf("expected cache entry deleted")
	}

	if err := store.PutCacheEntry(ctx, webstorage.CacheEntry{CacheKey: "k", Scope: "menu"}); err == nil {
		t.Fatalf("expected payload required error")
	}
}

func TestNilStoreReportsNotConfigured(t *testing.T) {
	var store *Store
	if _, _, err := store.GetSession(context.Background(), "x"); err == nil {
		t.Fatalf("expected not configured error")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, tableName string) {
	t.Helper()
	var name string
	err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, tableName).Scan(&name)
	if err != nil {
		t.Fatalf("table %s missing: %v", tableName, err)
	}
}
