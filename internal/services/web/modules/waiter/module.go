// Package waiter serves the floor dashboard, the polled table order board
// and the waiter profile with password change.
package waiter

import (
	"net/http"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/polling"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures a waiter module.
type Option func(*Module)

// WithGateway sets the floor gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithPasswords sets the password changer used by the profile page.
func WithPasswords(p PasswordChanger) Option {
	return func(m *Module) { m.passwords = p }
}

// WithPollInterval sets how often the floor board refreshes.
func WithPollInterval(d time.Duration) Option {
	return func(m *Module) { m.poll = d }
}

// WithBase sets the shared module handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides floor routes.
type Module struct {
	gateway   Gateway
	passwords PasswordChanger
	poll      time.Duration
	base      modulehandler.Base
}

// New returns a waiter module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "waiter" }

// AllowedRoles restricts the module to waiters.
func (Module) AllowedRoles() []module.Role { return []module.Role{module.RoleWaiter} }

// Healthy reports whether the module has a working gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires floor routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.passwords), m.base, polling.Seconds(m.poll, polling.DefaultInterval))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.WaiterPrefix, Handler: mux}, nil
}
