package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
)

// Claims are the access token fields the web tier reads. Signatures are the
// backend's concern; the web tier only decodes.
type Claims struct {
	jwt.RegisteredClaims
	Role   string     `json:"role"`
	UserID restapi.ID `json:"userId"`
	Name   string     `json:"name"`
}

// Email returns the subject claim, which carries the account email.
func (c Claims) Email() string {
	return strings.TrimSpace(c.Subject)
}

// ExpiredAt reports whether the token is past its exp claim at now. Tokens
// without exp never expire locally.
func (c Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

// ParseClaims decodes an access token without verifying its signature.
func ParseClaims(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, fmt.Errorf("access token is empty")
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("decode access token: %w", err)
	}
	return claims, nil
}
