// Package admin serves the administrator console: analytics, staff, menu,
// orders, customers, tables and feedback.
package admin

import (
	"net/http"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/polling"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures an admin module.
type Option func(*Module)

// WithGateway sets the admin gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithMenuCache sets the shared menu cache dropped on menu changes.
func WithMenuCache(c *cache.MenuCache) Option {
	return func(m *Module) { m.menu = c }
}

// WithPollIntervals sets the dashboard and order board refresh periods.
func WithPollIntervals(dashboard, orders time.Duration) Option {
	return func(m *Module) {
		m.dashboardPoll = dashboard
		m.ordersPoll = orders
	}
}

// WithBase sets the shared module handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides admin routes.
type Module struct {
	gateway       Gateway
	menu          *cache.MenuCache
	dashboardPoll time.Duration
	ordersPoll    time.Duration
	base          modulehandler.Base
}

// New returns an admin module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "admin" }

// AllowedRoles restricts the module to administrators.
func (Module) AllowedRoles() []module.Role { return []module.Role{module.RoleAdmin} }

// Healthy reports whether the module has a working gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires admin routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.menu), m.base, pollSeconds{
		dashboard: polling.Seconds(m.dashboardPoll, polling.AdminDashboardInterval),
		orders:    polling.Seconds(m.ordersPoll, polling.AdminOrdersInterval),
	})
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
