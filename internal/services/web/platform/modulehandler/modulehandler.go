// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules (customer, payment, chef, waiter, admin) share common handler
// infrastructure for principal resolution, localization, page rendering, flash
// notices and error handling. Modules embed Base rather than duplicating it.
package modulehandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/pagerender"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/javabite/internal/services/web/platform/weberror"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by protected module handlers.
type Base struct {
	resolveUserID    module.ResolveUserID
	resolveLanguage  module.ResolveLanguage
	resolveViewer    module.ResolveViewer
	resolveContext   module.ResolveContext
	resolveSessionID module.ResolveSessionID
	policy           requestmeta.SchemePolicy
}

// Option configures optional Base collaborators.
type Option func(*Base)

// WithResolveContext binds backend credentials to handler contexts.
func WithResolveContext(resolve module.ResolveContext) Option {
	return func(b *Base) { b.resolveContext = resolve }
}

// WithResolveSessionID exposes the web session id to handlers.
func WithResolveSessionID(resolve module.ResolveSessionID) Option {
	return func(b *Base) { b.resolveSessionID = resolve }
}

// WithSchemePolicy sets the cookie security policy used for flash notices.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.policy = policy }
}

// NewBase builds a handler base from explicit resolver functions.
func NewBase(resolveUserID module.ResolveUserID, resolveLanguage module.ResolveLanguage, resolveViewer module.ResolveViewer, opts ...Option) Base {
	b := Base{
		resolveUserID:   resolveUserID,
		resolveLanguage: resolveLanguage,
		resolveViewer:   resolveViewer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

// NewTestBase builds a handler base with fixed identity for handler tests.
func NewTestBase(userID string, role module.Role) Base {
	return Base{
		resolveUserID:   func(*http.Request) string { return userID },
		resolveLanguage: func(*http.Request) string { return "" },
		resolveViewer: func(*http.Request) module.Viewer {
			return module.Viewer{UserID: userID, DisplayName: "Test", Role: role}
		},
		resolveSessionID: func(*http.Request) string { return "session-" + userID },
	}
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// RequestUserID extracts the authenticated backend user ID from the request.
func (b Base) RequestUserID(r *http.Request) string {
	if r == nil || b.resolveUserID == nil {
		return ""
	}
	return strings.TrimSpace(b.resolveUserID(r))
}

// RequestSessionID returns the web session bound to the request.
func (b Base) RequestSessionID(r *http.Request) string {
	if r == nil || b.resolveSessionID == nil {
		return ""
	}
	return strings.TrimSpace(b.resolveSessionID(r))
}

// RequestContextAndUserID returns a context carrying the session's backend
// credentials and the raw user ID string.
func (b Base) RequestContextAndUserID(r *http.Request) (context.Context, string) {
	return b.requestContext(r), b.RequestUserID(r)
}

func (b Base) requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	if b.resolveContext != nil {
		if ctx := b.resolveContext(r); ctx != nil {
			return ctx
		}
	}
	return r.Context()
}

// RequestLocaleTag returns the resolved language tag for the request.
func (b Base) RequestLocaleTag(r *http.Request) language.Tag {
	return webi18n.ResolveTag(r, b.resolveLanguage)
}

// WritePage renders a full module page (HTMX-aware) with the given title, header,
// layout, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	header *webtemplates.AppMainHeader,
	layout webtemplates.AppMainLayoutOptions,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     header,
		Layout:     layout,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a bare HTMX swap target.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}

// RedirectWithNotice stores a flash notice and redirects.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.policy)
	httpx.WriteRedirect(w, r, location)
}

// RedirectWithError turns a failed mutation into an error notice on the
// target page. Unauthorized failures go back to sign-in and server failures
// render the app error page.
func (b Base) RedirectWithError(w http.ResponseWriter, r *http.Request, location string, err error) {
	switch {
	case apperrors.IsKind(err, apperrors.KindUnauthorized):
		httpx.WriteRedirect(w, r, routepath.Login)
	case apperrors.HTTPStatus(err) >= http.StatusInternalServerError && !apperrors.IsKind(err, apperrors.KindUnavailable):
		b.WriteError(w, r, err)
	default:
		b.RedirectWithNotice(w, r, location, ErrorNotice(err))
	}
}

// ErrorNotice builds the flash notice shown for err.
func ErrorNotice(err error) flashnotice.Notice {
	if key := apperrors.LocalizationKey(err); key != "" {
		return flashnotice.NoticeError(key, "")
	}
	if msg := apperrors.DisplayMessage(err); msg != "" {
		return flashnotice.NoticeError("", msg)
	}
	if apperrors.IsKind(err, apperrors.KindUnavailable) {
		return flashnotice.NoticeError("error.web.message.backend_unavailable", "")
	}
	return flashnotice.NoticeError("error.web.message.request_failed", "")
}
