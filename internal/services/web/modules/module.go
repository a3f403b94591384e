// Package modules defines web module registry helpers.
package modules

import (
	"context"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/cart"
	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// ModuleResolvers carries request-scoped resolver functions derived from the
// principal resolver. The server constructs these after building the principal
// resolver and passes them to registry functions for module composition.
type ModuleResolvers struct {
	ResolveViewer    module.ResolveViewer
	ResolveSignedIn  module.ResolveSignedIn
	ResolveUserID    module.ResolveUserID
	ResolveLanguage  module.ResolveLanguage
	ResolveContext   module.ResolveContext
	ResolveSessionID module.ResolveSessionID
	SchemePolicy     requestmeta.SchemePolicy
}

// BackendAPI is the REST transport shared by every module gateway.
type BackendAPI interface {
	Do(ctx context.Context, req restapi.Request, out any) error
	Download(ctx context.Context, path string) (restapi.Document, error)
}

// Dependencies carries the backend transport and shared collaborators
// required to compose the web module registry. A nil API or Sessions leaves
// the affected modules mounted but reporting the backend as unavailable.
type Dependencies struct {
	API           BackendAPI
	Sessions      *session.Manager
	Carts         *cart.Repository
	MenuCache     *cache.MenuCache
	RazorpayKeyID string
	PollInterval  time.Duration
}
