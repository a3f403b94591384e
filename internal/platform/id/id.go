// Package id generates opaque identifiers.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random version 4 UUID as 32 lowercase hex characters with
// the dashes removed, so it can be used as a cookie value as is.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ReplaceAll(value.String(), "-", ""), nil
}
