// Package publichandler provides a shared base for unauthenticated web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across public modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/pagerender"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/javabite/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// Base provides shared error handling and page rendering for public modules.
type Base struct {
	resolveViewer         module.ResolveViewer
	resolveViewerSignedIn module.ResolveSignedIn
	policy                requestmeta.SchemePolicy
}

// Option configures a Base.
type Option func(*Base)

// WithResolveViewer attaches a viewer resolver used for signed-in redirects.
func WithResolveViewer(rv module.ResolveViewer) Option {
	return func(b *Base) { b.resolveViewer = rv }
}

// WithResolveViewerSignedIn attaches a direct signed-in resolver.
func WithResolveViewerSignedIn(resolver module.ResolveSignedIn) Option {
	return func(b *Base) { b.resolveViewerSignedIn = resolver }
}

// WithSchemePolicy sets the cookie security policy for session and flash cookies.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.policy = policy }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// SchemePolicy returns the cookie security policy.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// ResolveRequestViewer resolves viewer state for the request.
// Returns a zero Viewer when no resolver is configured.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// IsViewerSignedIn reports whether the current request is authenticated.
// Without a signed-in resolver the viewer itself decides.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	if b.resolveViewerSignedIn != nil {
		return b.resolveViewerSignedIn(r)
	}
	return b.ResolveRequestViewer(r).SignedIn()
}

// PageLocalizer resolves a localizer for the request.
func (Base) PageLocalizer(w http.ResponseWriter, r *http.Request) webtemplates.Localizer {
	loc, _ := webi18n.ResolveLocalizer(w, r, nil)
	return loc
}

// WritePublicPage renders a full public page using the auth layout.
func (Base) WritePublicPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	pagerender.WritePublicPage(w, r, title, statusCode, body)
}

// RedirectWithNotice stores a flash notice and redirects.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.policy)
	httpx.WriteRedirect(w, r, location)
}

// WriteNotFound renders a localized 404 error page using the public layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.writeErrorPage(w, r, http.StatusNotFound)
}

// WriteError renders a user-safe error response: app error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if weberror.ShouldRenderAppError(statusCode) {
		b.writeErrorPage(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, nil)
	http.Error(w, weberror.PublicMessage(loc, err), statusCode)
}

func (b Base) writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r, nil)
	home := webtemplates.RoleHome(b.ResolveRequestViewer(r).Role)
	pagerender.WritePublicPage(
		w,
		r,
		webtemplates.AppErrorPageTitle(statusCode, loc),
		statusCode,
		webtemplates.AppErrorState(statusCode, home, loc),
	)
}
