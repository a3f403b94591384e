// Package public serves the signed-out surface: landing, sign-in,
// registration, password recovery, logout and the health probe.
package public

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures a public module.
type Option func(*Module)

// WithGateway sets the auth gateway.
func WithGateway(g AuthGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the shared public handler base.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides unauthenticated root and auth routes.
type Module struct {
	gateway AuthGateway
	base    publichandler.Base
}

// New returns a public module configured by the given options.
// Without a gateway every sign-in attempt reports the backend unavailable.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Healthy reports whether the module has an operational auth gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public routes at the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
