// Package customer serves the signed-in customer area: dashboard, table
// booking, menu and cart, orders, profile and feedback.
package customer

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/cart"
	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures a customer module.
type Option func(*Module)

// WithGateway sets the customer backend gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithCarts sets the per-session cart repository.
func WithCarts(carts *cart.Repository) Option {
	return func(m *Module) { m.carts = carts }
}

// WithMenuCache sets the shared menu cache.
func WithMenuCache(c *cache.MenuCache) Option {
	return func(m *Module) { m.menu = c }
}

// WithBase sets the shared module handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides customer routes.
type Module struct {
	gateway Gateway
	carts   *cart.Repository
	menu    *cache.MenuCache
	base    modulehandler.Base
}

// New returns a customer module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "customer" }

// AllowedRoles restricts the module to customers.
func (Module) AllowedRoles() []module.Role { return []module.Role{module.RoleCustomer} }

// Healthy reports whether the module has an operational gateway and cart storage.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.carts == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires customer routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.carts, m.menu), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CustomerPrefix, Handler: mux}, nil
}
