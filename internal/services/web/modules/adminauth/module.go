// Package adminauth serves the administrator portal sign-in and
// administrator self-registration.
package adminauth

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures an admin auth module.
type Option func(*Module)

// WithGateway sets the admin auth gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the shared public handler base.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides the admin portal entry routes.
type Module struct {
	gateway Gateway
	base    publichandler.Base
}

// New returns an admin auth module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "adminauth" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires admin portal routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AdminAuthPrefix, Handler: mux}, nil
}
