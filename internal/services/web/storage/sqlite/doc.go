// Package sqlite provides the web store backed by SQLite: sessions, carts,
// and derived cache entries.
package sqlite
