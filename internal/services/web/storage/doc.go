// Package storage declares persistence contracts for web-owned state.
//
// Sessions and carts are the only state the web tier owns; cache entries are
// derived from backend reads and can be discarded at any time.
package storage
