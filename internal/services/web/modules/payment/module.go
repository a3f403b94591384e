// Package payment runs the customer checkout: order summary, Razorpay
// checkout bootstrap, payment verification, and receipt and invoice delivery.
package payment

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// Option configures a payment module.
type Option func(*Module)

// WithGateway sets the payment backend gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithRazorpayKey sets the public Razorpay key id handed to the checkout widget.
func WithRazorpayKey(keyID string) Option {
	return func(m *Module) { m.keyID = keyID }
}

// WithBase sets the shared module handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides payment routes.
type Module struct {
	gateway Gateway
	keyID   string
	base    modulehandler.Base
}

// New returns a payment module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "payment" }

// AllowedRoles restricts the module to customers.
func (Module) AllowedRoles() []module.Role { return []module.Role{module.RoleCustomer} }

// Healthy reports whether the module can take payments.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	if _, unavailable := m.gateway.(unavailableGateway); unavailable {
		return false
	}
	return newService(m.gateway, m.keyID).configured()
}

// Mount wires payment routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.keyID), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.PaymentPrefix, Handler: mux}, nil
}
