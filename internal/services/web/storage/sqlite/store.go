package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/javabite/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/javabite/internal/platform/timeouts"
	webstorage "github.com/louisbranch/javabite/internal/services/web/storage"
	"github.com/louisbranch/javabite/internal/services/web/storage/sqlite/migrations"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web sessions, carts and cache.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a web SQLite store, creating the parent directory.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.StoreOpen)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// GetSession loads a session by id. Expired rows are reported as missing.
func (s *Store) GetSession(ctx context.Context, sessionID string) (webstorage.SessionRecord, bool, error) {
	if err := s.ready(); err != nil {
		return webstorage.SessionRecord{}, false, err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return webstorage.SessionRecord{}, false, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, access_token, refresh_token, profile_json, created_at, updated_at, expires_at
		 FROM web_sessions
		 WHERE id = ?`,
		sessionID,
	)
	var record webstorage.SessionRecord
	var profileJSON []byte
	var createdAt, updatedAt, expiresAt int64
	if err := row.Scan(&record.ID, &record.AccessToken, &record.RefreshToken, &profileJSON, &createdAt, &updatedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.SessionRecord{}, false, nil
		}
		return webstorage.SessionRecord{}, false, fmt.Errorf("get session: %w", err)
	}
	if err := json.Unmarshal(profileJSON, &record.Profile); err != nil {
		return webstorage.SessionRecord{}, false, fmt.Errorf("decode session profile: %w", err)
	}
	record.CreatedAt = unixMillisToTime(createdAt)
	record.UpdatedAt = unixMillisToTime(updatedAt)
	record.ExpiresAt = unixMillisToTime(expiresAt)
	if !record.ExpiresAt.After(s.now().UTC()) {
		return webstorage.SessionRecord{}, false, nil
	}
	return record, true, nil
}

// PutSession upserts a session and prunes expired rows. CreatedAt is kept
// from the first write.
func (s *Store) PutSession(ctx context.Context, record webstorage.SessionRecord) error {
	if err := s.ready(); err != nil {
		return err
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if record.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	now := s.now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = now
	}
	profileJSON, err := json.Marshal(record.Profile)
	if err != nil {
		return fmt.Errorf("encode session profile: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put session: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE session_id IN (SELECT id FROM web_sessions WHERE expires_at <= ?)`, timeToUnixMillis(now)); err != nil {
		return fmt.Errorf("prune expired carts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, timeToUnixMillis(now)); err != nil {
		return fmt.Errorf("prune expired sessions: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO web_sessions (id, access_token, refresh_token, profile_json, created_at, updated_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    access_token = excluded.access_token,
		    refresh_token = excluded.refresh_token,
		    profile_json = excluded.profile_json,
		    updated_at = excluded.updated_at,
		    expires_at = excluded.expires_at`,
		record.ID,
		record.AccessToken,
		record.RefreshToken,
		profileJSON,
		timeToUnixMillis(record.CreatedAt),
		timeToUnixMillis(record.UpdatedAt),
		timeToUnixMillis(record.ExpiresAt),
	); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put session: %w", err)
	}
	return nil
}

// DeleteSession removes a session and its cart.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete session: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session cart: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions that expired at or before now.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cart_lines WHERE session_id IN (SELECT id FROM web_sessions WHERE expires_at <= ?)`, timeToUnixMillis(now)); err != nil {
		return 0, fmt.Errorf("delete expired carts: %w", err)
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, timeToUnixMillis(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count expired sessions: %w", err)
	}
	return removed, nil
}

// GetCart loads the cart lines of a session in insertion order.
func (s *Store) GetCart(ctx context.Context, sessionID string) ([]webstorage.CartLine, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT menu_item_id, name, price, quantity
		 FROM cart_lines
		 WHERE session_id = ?
		 ORDER BY position`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	lines := make([]webstorage.CartLine, 0)
	for rows.Next() {
		var line webstorage.CartLine
		var price string
		if err := rows.Scan(&line.MenuItemID, &line.Name, &price, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		line.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("decode cart price: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart lines: %w", err)
	}
	return lines, nil
}

// PutCart replaces the cart of a session. Lines with quantity below one are
// rejected.
func (s *Store) PutCart(ctx context.Context, sessionID string, lines []webstorage.CartLine) error {
	if err := s.ready(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	for _, line := range lines {
		if strings.TrimSpace(line.MenuItemID) == "" {
			return fmt.Errorf("cart line menu item id is required")
		}
		if line.Quantity < 1 {
			return fmt.Errorf("cart line %s quantity must be at least 1", line.MenuItemID)
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put cart: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("reset cart: %w", err)
	}
	for i, line := range lines {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO cart_lines (session_id, position, menu_item_id, name, price, quantity)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			sessionID,
			i,
			strings.TrimSpace(line.MenuItemID),
			line.Name,
			line.Price.String(),
			line.Quantity,
		); err != nil {
			return fmt.Errorf("put cart line: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put cart: %w", err)
	}
	return nil
}

// DeleteCart removes every cart line of a session.
func (s *Store) DeleteCart(ctx context.Context, sessionID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cart_lines WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// GetCacheEntry loads a cache payload and metadata by key.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	if err := s.ready(); err != nil {
		return webstorage.CacheEntry{}, false, err
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return webstorage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT cache_key, scope, payload_json, refreshed_at, expires_at
		 FROM cache_entries
		 WHERE cache_key = ?`,
		cacheKey,
	)
	var entry webstorage.CacheEntry
	var refreshedAt, expiresAt int64
	if err := row.Scan(&entry.CacheKey, &entry.Scope, &entry.PayloadBytes, &refreshedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.CacheEntry{}, false, nil
		}
		return webstorage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.RefreshedAt = unixMillisToTime(refreshedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)
	return entry, true, nil
}

// PutCacheEntry upserts a cache payload by key.
func (s *Store) PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO cache_entries (cache_key, scope, payload_json, refreshed_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    scope = excluded.scope,
		    payload_json = excluded.payload_json,
		    refreshed_at = excluded.refreshed_at,
		    expires_at = excluded.expires_at`,
		entry.CacheKey,
		entry.Scope,
		entry.PayloadBytes,
		timeToUnixMillis(entry.RefreshedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a cache entry by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if err := s.ready(); err != nil {
		return err
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// Ping reports whether the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.sqlDB.PingContext(ctx)
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
