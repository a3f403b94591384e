package modules

import (
	"github.com/louisbranch/javabite/internal/services/web/modules/admin"
	"github.com/louisbranch/javabite/internal/services/web/modules/adminauth"
	"github.com/louisbranch/javabite/internal/services/web/modules/chef"
	"github.com/louisbranch/javabite/internal/services/web/modules/customer"
	"github.com/louisbranch/javabite/internal/services/web/modules/payment"
	"github.com/louisbranch/javabite/internal/services/web/modules/public"
	"github.com/louisbranch/javabite/internal/services/web/modules/waiter"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
)

// DefaultPublicModules returns the unauthenticated modules: the landing and
// account pages and the admin portal sign-in.
func DefaultPublicModules(deps Dependencies, res ModuleResolvers) []Module {
	base := publichandler.NewBase(
		publichandler.WithResolveViewer(res.ResolveViewer),
		publichandler.WithResolveViewerSignedIn(res.ResolveSignedIn),
		publichandler.WithSchemePolicy(res.SchemePolicy),
	)
	publicOpts := []public.Option{public.WithBase(base)}
	adminAuthOpts := []adminauth.Option{adminauth.WithBase(base)}
	if deps.Sessions != nil {
		publicOpts = append(publicOpts, public.WithGateway(deps.Sessions))
		adminAuthOpts = append(adminAuthOpts, adminauth.WithGateway(deps.Sessions))
	}
	return []Module{
		public.New(publicOpts...),
		adminauth.New(adminAuthOpts...),
	}
}

// DefaultProtectedModules returns the role-gated modules, one per staff role
// plus the customer area and its payment flow.
func DefaultProtectedModules(deps Dependencies, res ModuleResolvers) []Module {
	base := modulehandler.NewBase(
		res.ResolveUserID,
		res.ResolveLanguage,
		res.ResolveViewer,
		modulehandler.WithResolveContext(res.ResolveContext),
		modulehandler.WithResolveSessionID(res.ResolveSessionID),
		modulehandler.WithSchemePolicy(res.SchemePolicy),
	)
	waiterOpts := []waiter.Option{
		waiter.WithGateway(waiter.NewRESTGateway(deps.API)),
		waiter.WithPollInterval(deps.PollInterval),
		waiter.WithBase(base),
	}
	if deps.Sessions != nil {
		waiterOpts = append(waiterOpts, waiter.WithPasswords(deps.Sessions))
	}
	return []Module{
		customer.New(
			customer.WithGateway(customer.NewRESTGateway(deps.API)),
			customer.WithCarts(deps.Carts),
			customer.WithMenuCache(deps.MenuCache),
			customer.WithBase(base),
		),
		payment.New(
			payment.WithGateway(payment.NewRESTGateway(deps.API)),
			payment.WithRazorpayKey(deps.RazorpayKeyID),
			payment.WithBase(base),
		),
		chef.New(
			chef.WithGateway(chef.NewRESTGateway(deps.API)),
			chef.WithPollInterval(deps.PollInterval),
			chef.WithBase(base),
		),
		waiter.New(waiterOpts...),
		admin.New(
			admin.WithGateway(admin.NewRESTGateway(deps.API)),
			admin.WithMenuCache(deps.MenuCache),
			admin.WithBase(base),
		),
	}
}
