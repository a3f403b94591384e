package public

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/javabite/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	"github.com/louisbranch/javabite/internal/services/web/session"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// redirectSignedIn sends a signed-in visitor to their role home.
func (h handlers) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	viewer := h.ResolveRequestViewer(r)
	if !h.IsViewerSignedIn(r) || viewer.Role == "" {
		return false
	}
	httpx.WriteRedirect(w, r, webtemplates.RoleHome(viewer.Role))
	return true
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "landing.title"), http.StatusOK, webtemplates.LandingPage(loc))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.renderLogin(w, r, http.StatusOK, webtemplates.AuthFormView{})
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
			h.renderLogin(w, r, status, webtemplates.AuthFormView{Email: email, Error: message})
		})
		return
	}
	h.startSession(w, r, principal)
}

// startSession sets the session cookie and sends the visitor to the home
// page for their role.
func (h handlers) startSession(w http.ResponseWriter, r *http.Request, principal session.Principal) {
	sessioncookie.Write(w, r, principal.SessionID, h.service.sessionTTL(), h.SchemePolicy())
	log.Printf("web session opened role=%s request_id=%s", principal.Role, httpx.RequestIDFrom(r))
	httpx.WriteRedirect(w, r, webtemplates.RoleHome(principal.Role))
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AuthFormView) {
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.login.title"), status, webtemplates.LoginPage(view, loc))
}

func (h handlers) handleRegisterGet(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.renderRegister(w, r, http.StatusOK, webtemplates.AuthFormView{})
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
			h.renderRegister(w, r, status, webtemplates.AuthFormView{Name: form.Name, Email: form.Email, Phone: form.Phone, Error: message})
		})
		return
	}
	h.RedirectWithNotice(w, r, routepath.Login, flashnotice.NoticeSuccess("auth.notice.registered"))
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AuthFormView) {
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.register.title"), status, webtemplates.RegisterPage(view, loc))
}

func (h handlers) handleForgotGet(w http.ResponseWriter, r *http.Request) {
	h.renderForgot(w, r, http.StatusOK, webtemplates.ForgotPasswordView{})
}

func (h handlers) handleForgotPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_forgot_form", "failed to parse forgot password form"))
		return
	}
	email := httpx.FormValue(r, "email")
	if err := h.service.forgotPassword(r.Context(), email); err != nil {
		h.writeFormError(w, r, err, func(status int, message string) {
			h.renderForgot(w, r, status, webtemplates.ForgotPasswordView{Email: email, Error: message})
		})
		return
	}
	h.renderForgot(w, r, http.StatusOK, webtemplates.ForgotPasswordView{Email: email, Sent: true})
}

func (h handlers) renderForgot(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ForgotPasswordView) {
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.forgot.title"), status, webtemplates.ForgotPasswordPage(view, loc))
}

func (h handlers) handleResetGet(w http.ResponseWriter, r *http.Request) {
	token := httpx.FormValue(r, "token")
	if err := h.service.validateResetToken(r.Context(), token); err != nil {
		if apperrors.IsKind(err, apperrors.KindUnavailable) {
			h.WriteError(w, r, err)
			return
		}
		h.renderReset(w, r, http.StatusOK, webtemplates.ResetPasswordView{Token: token})
		return
	}
	h.renderReset(w, r, http.StatusOK, webtemplates.ResetPasswordView{Token: token, Valid: true})
}

func (h handlers) handleResetPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_reset_form", "failed to parse reset password form"))
		return
	}
	token := httpx.FormValue(r, "token")
	err := h.service.resetPassword(r.Context(), token, r.FormValue("newPassword"), r.FormValue("confirmPassword"))
	if err != nil {
		h.writeFormError(w, r, err, func(status int, message string) {
			h.renderReset(w, r, status, webtemplates.ResetPasswordView{Token: token, Valid: true, Error: message})
		})
		return
	}
	h.RedirectWithNotice(w, r, routepath.Login, flashnotice.NoticeSuccess("auth.notice.password_reset"))
}

func (h handlers) renderReset(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ResetPasswordView) {
	loc := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.reset.title"), status, webtemplates.ResetPasswordPage(view, loc))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessioncookie.Read(r)
	if ok && !requestmeta.HasSameOriginProof(r, h.SchemePolicy()) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if ok {
		if err := h.service.logout(r.Context(), sessionID); err != nil {
			log.Printf("web logout failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		}
	}
	sessioncookie.Clear(w, r, h.SchemePolicy())
	h.RedirectWithNotice(w, r, routepath.Login, flashnotice.NoticeSuccess("auth.notice.signed_out"))
}

// writeFormError re-renders the form inline for failures the visitor can fix
// or retry, and falls back to the error page otherwise.
func (h handlers) writeFormError(w http.ResponseWriter, r *http.Request, err error, render func(status int, message string)) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError && !apperrors.IsKind(err, apperrors.KindUnavailable) {
		h.WriteError(w, r, err)
		return
	}
	loc := h.PageLocalizer(w, r)
	render(status, webi18n.LocalizeError(loc, err))
}
