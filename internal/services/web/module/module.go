// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"
	"strings"
)

// Role is the backend role claim that gates access to protected modules.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
	RoleChef     Role = "CHEF"
	RoleWaiter   Role = "WAITER"
)

// ParseRole normalizes a role claim. Unknown values return false.
func ParseRole(raw string) (Role, bool) {
	switch role := Role(strings.ToUpper(strings.TrimSpace(raw))); role {
	case RoleAdmin, RoleCustomer, RoleChef, RoleWaiter:
		return role, true
	default:
		return "", false
	}
}

// Viewer contains user-facing chrome data for authenticated pages.
type Viewer struct {
	UserID      string
	DisplayName string
	Email       string
	Role        Role
}

// SignedIn reports whether the viewer represents an authenticated principal.
func (v Viewer) SignedIn() bool {
	return strings.TrimSpace(v.UserID) != "" && v.Role != ""
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in actor.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the authenticated backend user id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ResolveSessionID returns the web session id bound to the request.
type ResolveSessionID func(*http.Request) string

// ResolveContext returns the request context with the signed-in session's
// backend credentials bound.
type ResolveContext func(*http.Request) context.Context

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// RoleGated is implemented by protected modules to declare which roles may
// reach their routes.
type RoleGated interface {
	AllowedRoles() []Role
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
