// Package chef serves the kitchen dashboard, the polled kitchen order board
// and the chef profile.
package chef

import (
	"net/http"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/polling"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures a chef module.
type Option func(*Module)

// WithGateway sets the kitchen gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithPollInterval sets how often the kitchen board refreshes.
func WithPollInterval(d time.Duration) Option {
	return func(m *Module) { m.poll = d }
}

// WithBase sets the shared module handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides kitchen routes.
type Module struct {
	gateway Gateway
	poll    time.Duration
	base    modulehandler.Base
}

// New returns a chef module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "chef" }

// AllowedRoles restricts the module to chefs.
func (Module) AllowedRoles() []module.Role { return []module.Role{module.RoleChef} }

// Healthy reports whether the module has a working gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires kitchen routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, polling.Seconds(m.poll, polling.DefaultInterval))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ChefPrefix, Handler: mux}, nil
}
