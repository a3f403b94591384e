package adminauth

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.AdminAuthLogin)
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	if viewer := h.ResolveRequestViewer(r); viewer.SignedIn() {
		httpx.WriteRedirect(w, r, webtemplates.RoleHome(viewer.Role))
		return
	}
	h.renderLogin(w, r, http.StatusOK, webtemplates.AuthFormView{Admin: true})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_login_form", "failed to parse login form"))
		return
	}
	email := httpx.FormValue(r, "email")
	principal, err := h.service.login(r.Context(), email, r.FormValue("password"))
	if err != nil {
		h.writeFormError(w, r, err, func(status int, message string) {
			h.renderLogin(w, r, status, webtemplates.AuthFormView{Admin: true, Email: email, Error: message})
		})
		return
	}
	sessioncookie.Write(w, r, principal.SessionID, h.service.sessionTTL(), h.SchemePolicy())
	log.Printf("web admin session opened request_id=%s", httpx.RequestIDFrom(r))
	httpx.WriteRedirect(w, r, routepath.AdminDashboard)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AuthFormView) {
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.admin_login.title"), status, webtemplates.LoginPage(view, loc))
}

func (h handlers) handleRegisterGet(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, webtemplates.AuthFormView{Admin: true})
}

func (h handlers) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_register_form", "failed to parse registration form"))
		return
	}
	form := registration{
		Name:            httpx.FormValue(r, "name"),
		Email:           httpx.FormValue(r, "email"),
		Phone:           httpx.FormValue(r, "phone"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}
	if err := h.service.register(r.Context(), form); err != nil {
		h.writeFormError(w, r, err, func(status int, message string) {
			h.renderRegister(w, r, status, webtemplates.AuthFormView{Admin: true, Name: form.Name, Email: form.Email, Phone: form.Phone, Error: message})
		})
		return
	}
	h.RedirectWithNotice(w, r, routepath.AdminAuthLogin, flashnotice.NoticeSuccess("auth.notice.admin_registered"))
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AuthFormView) {
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.admin_register.title"), status, webtemplates.RegisterPage(view, loc))
}

func (h handlers) writeFormError(w http.ResponseWriter, r *http.Request, err error, render func(status int, message string)) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError && !apperrors.IsKind(err, apperrors.KindUnavailable) {
		h.WriteError(w, r, err)
		return
	}
	loc := h.PageLocalizer(w, r)
	render(status, webi18n.LocalizeError(loc, err))
}
