// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/pagerender"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	return webi18n.LocalizeError(loc, err)
}

// WriteAppError writes a localized app-shell error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	var resolveLanguage module.ResolveLanguage
	viewer := module.Viewer{}
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		viewer = resolver.ResolveRequestViewer(r)
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, webtemplates.RoleHome(viewer.Role), loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. Backend
// 401s send the browser back to sign-in.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if apperrors.IsKind(err, apperrors.KindUnauthorized) {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolver)
		return
	}
	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
