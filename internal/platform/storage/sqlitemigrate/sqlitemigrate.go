// Package sqlitemigrate applies embedded SQL migrations to SQLite databases.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const (
	migrationTable = "schema_migrations"
	upMarker       = "-- +migrate Up"
	downMarker     = "-- +migrate Down"
)

// ApplyMigrations executes the .sql files under root in lexical order, each
// at most once, recording applied names in schema_migrations.
func ApplyMigrations(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS, root string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	if migrationFS == nil {
		return fmt.Errorf("migration fs is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	root = strings.Trim(strings.TrimSpace(root), "/")
	readRoot := root
	if readRoot == "" {
		readRoot = "."
	}
	files, err := listMigrationFiles(migrationFS, readRoot)
	if err != nil {
		return err
	}

	if _, err := sqlDB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		key := file
		if root != "" {
			key = path.Join(root, file)
		}
		if err := applyOne(ctx, sqlDB, migrationFS, path.Join(readRoot, file), key); err != nil {
			return err
		}
	}
	return nil
}

func listMigrationFiles(migrationFS fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func applyOne(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS, filePath string, key string) error {
	applied, err := isApplied(ctx, sqlDB, key)
	if err != nil {
		return fmt.Errorf("check migration %s: %w", key, err)
	}
	if applied {
		return nil
	}
	content, err := fs.ReadFile(migrationFS, filePath)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", key, err)
	}
	upSQL := ExtractUpMigration(string(content))
	if strings.TrimSpace(upSQL) == "" {
		return nil
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", key, err)
	}
	if _, err := tx.ExecContext(ctx, upSQL); err != nil && !IsAlreadyExistsError(err) {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", key, err)
	}
	if _, err := tx.ExecContext(
		ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		key,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", key, err)
	}
	return nil
}

// ExtractUpMigration returns the SQL between the Up marker and the optional
// Down marker. Files without markers are returned whole.
func ExtractUpMigration(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	body := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		return body[:downIdx]
	}
	return body
}

// IsAlreadyExistsError reports whether err indicates idempotent DDL success.
func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func isApplied(ctx context.Context, sqlDB *sql.DB, name string) (bool, error) {
	var found int
	err := sqlDB.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
