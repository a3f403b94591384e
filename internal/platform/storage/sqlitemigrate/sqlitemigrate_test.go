package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;"),
		},
	}

	if err := ApplyMigrations(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 1 {
		t.Fatalf("expected 1 migration row, got %d", rows)
	}
	if !tableExists(t, db, "items") {
		t.Fatal("expected applied table to exist")
	}
}

func TestApplyMigrationsSkipsAlreadyApplied(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);"),
		},
	}
	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(context.Background(), db, migrations, ""); err != nil {
			t.Fatalf("apply migrations pass %d: %v", i, err)
		}
	}
	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 1 {
		t.Fatalf("expected single migration row after replay, got %d", rows)
	}
}

func TestApplyMigrationsAppliesInLexicalOrder(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"002_index.sql":  &fstest.MapFile{Data: []byte("CREATE INDEX idx_items_name ON items(name);")},
		"001_create.sql": &fstest.MapFile{Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY, name TEXT);")},
		"README.md":      &fstest.MapFile{Data: []byte("not sql")},
	}
	if err := ApplyMigrations(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 2 {
		t.Fatalf("expected 2 migration rows, got %d", rows)
	}
}

func TestApplyMigrationsDoesNotRecordFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)

	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT table things(id INT);")},
	}
	if err := ApplyMigrations(context.Background(), db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 0 {
		t.Fatalf("expected failed migration to stay unrecorded, got %d rows", rows)
	}

	good := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE things(id INTEGER PRIMARY KEY);")},
	}
	if err := ApplyMigrations(context.Background(), db, good, ""); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 1 {
		t.Fatalf("expected fixed migration to be recorded, got %d rows", rows)
	}
}

func TestApplyMigrationsRespectsMigrationRoot(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"sessions/001_sessions.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE session_rows(id TEXT PRIMARY KEY);"),
		},
	}
	if err := ApplyMigrations(context.Background(), db, migrations, "sessions/"); err != nil {
		t.Fatalf("apply migrations with root: %v", err)
	}
	if key := queryString(t, db, "SELECT name FROM schema_migrations LIMIT 1"); key != "sessions/001_sessions.sql" {
		t.Fatalf("expected migration key with root path, got %q", key)
	}
	if !tableExists(t, db, "session_rows") {
		t.Fatal("expected migrated table in root-based migration")
	}
}

func TestApplyMigrationsRequiresInputs(t *testing.T) {
	if err := ApplyMigrations(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
	if err := ApplyMigrations(context.Background(), openInMemoryDB(t), nil, ""); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "SELECT 1;", want: "SELECT 1;"},
		{name: "up only", content: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		{name: "up and down", content: "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", want: "\nSELECT 1;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractUpMigration(tc.content); got != tc.want {
				t.Fatalf("ExtractUpMigration() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	t.Parallel()

	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error is not an already-exists error")
	}
	if !IsAlreadyExistsError(errors.New("table items already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: phone")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("unexpected match for syntax error")
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query int value: %v", err)
	}
	return value
}

func queryString(t *testing.T, db *sql.DB, query string) string {
	t.Helper()
	var value string
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query string value: %v", err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("table exists query: %v", err)
	}
	return found == name
}
