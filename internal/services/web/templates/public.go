package templates

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// AuthFormView carries sign-in and registration form state.
type AuthFormView struct {
	Email string
	Name  string
	Phone string
	Error string
	// Admin switches the form to the admin portal routes and copy.
	Admin bool
}

// LandingPage renders the public home page.
func LandingPage(loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="hero">`)
		h.element("h1", "", T(loc, "landing.title"))
		h.element("p", "lead", T(loc, "landing.subtitle"))
		h.raw(`<div class="actions"><a class="btn btn-primary"`)
		h.href(routepath.Login)
		h.raw(`>`)
		h.text(T(loc, "landing.action_login"))
		h.raw(`</a><a class="btn"`)
		h.href(routepath.Register)
		h.raw(`>`)
		h.text(T(loc, "landing.action_register"))
		h.raw(`</a></div></section><section class="features">`)
		for _, key := range []string{"landing.feature_booking", "landing.feature_menu", "landing.feature_payment"} {
			h.element("article", "card", T(loc, key))
		}
		h.raw(`</section>`)
	})
}

// LoginPage renders the sign-in form.
func LoginPage(view AuthFormView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		action := routepath.Login
		titleKey := "auth.login.title"
		if view.Admin {
			action = routepath.AdminAuthLogin
			titleKey = "auth.admin_login.title"
		}
		h.raw(`<section class="auth-card">`)
		h.element("h1", "", T(loc, titleKey))
		writeFormError(h, view.Error)
		h.raw(`<form method="post"`)
		h.attr("action", action)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "auth.field.email"), name: "email", kind: "email", value: view.Email, required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.password"), name: "password", kind: "password", required: true})
		writeSubmit(h, T(loc, "auth.login.submit"), "")
		h.raw(`</form><p class="auth-links">`)
		if view.Admin {
			h.raw(`<a`)
			h.href(routepath.AdminAuthRegister)
			h.raw(`>`)
			h.text(T(loc, "auth.admin_register.link"))
			h.raw(`</a>`)
		} else {
			h.raw(`<a`)
			h.href(routepath.ForgotPassword)
			h.raw(`>`)
			h.text(T(loc, "auth.forgot.link"))
			h.raw(`</a> <a`)
			h.href(routepath.Register)
			h.raw(`>`)
			h.text(T(loc, "auth.register.link"))
			h.raw(`</a>`)
		}
		h.raw(`</p></section>`)
	})
}

// RegisterPage renders the account registration form.
func RegisterPage(view AuthFormView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		action := routepath.Register
		titleKey := "auth.register.title"
		if view.Admin {
			action = routepath.AdminAuthRegister
			titleKey = "auth.admin_register.title"
		}
		h.raw(`<section class="auth-card">`)
		h.element("h1", "", T(loc, titleKey))
		writeFormError(h, view.Error)
		h.raw(`<form method="post"`)
		h.attr("action", action)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "auth.field.name"), name: "name", value: view.Name, required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.email"), name: "email", kind: "email", value: view.Email, required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.phone"), name: "phone", kind: "tel", value: view.Phone})
		writeInput(h, inputSpec{label: T(loc, "auth.field.password"), name: "password", kind: "password", required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.confirm_password"), name: "confirmPassword", kind: "password", required: true})
		writeSubmit(h, T(loc, "auth.register.submit"), "")
		h.raw(`</form><p class="auth-links"><a`)
		if view.Admin {
			h.href(routepath.AdminAuthLogin)
		} else {
			h.href(routepath.Login)
		}
		h.raw(`>`)
		h.text(T(loc, "auth.login.link"))
		h.raw(`</a></p></section>`)
	})
}

// ForgotPasswordView carries the forgot-password form state.
type ForgotPasswordView struct {
	Email string
	Sent  bool
	Error string
}

// ForgotPasswordPage renders the reset link request form.
func ForgotPasswordPage(view ForgotPasswordView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="auth-card">`)
		h.element("h1", "", T(loc, "auth.forgot.title"))
		if view.Sent {
			h.element("p", "notice notice-success", T(loc, "auth.forgot.sent"))
		} else {
			h.element("p", "muted", T(loc, "auth.forgot.help"))
			writeFormError(h, view.Error)
			h.raw(`<form method="post"`)
			h.attr("action", routepath.ForgotPassword)
			h.raw(`>`)
			writeInput(h, inputSpec{label: T(loc, "auth.field.email"), name: "email", kind: "email", value: view.Email, required: true})
			writeSubmit(h, T(loc, "auth.forgot.submit"), "")
			h.raw(`</form>`)
		}
		h.raw(`<p class="auth-links"><a`)
		h.href(routepath.Login)
		h.raw(`>`)
		h.text(T(loc, "auth.login.link"))
		h.raw(`</a></p></section>`)
	})
}

// ResetPasswordView carries the reset form state.
type ResetPasswordView struct {
	Token string
	Valid bool
	Error string
}

// ResetPasswordPage renders the new password form, or the invalid link notice.
func ResetPasswordPage(view ResetPasswordView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="auth-card">`)
		h.element("h1", "", T(loc, "auth.reset.title"))
		if !view.Valid {
			h.element("p", "form-error", T(loc, "error.web.message.reset_token_invalid"))
			h.raw(`<p class="auth-links"><a`)
			h.href(routepath.ForgotPassword)
			h.raw(`>`)
			h.text(T(loc, "auth.reset.request_new"))
			h.raw(`</a></p></section>`)
			return
		}
		writeFormError(h, view.Error)
		h.raw(`<form method="post"`)
		h.attr("action", routepath.ResetPassword)
		h.raw(`>`)
		writeHidden(h, "token", view.Token)
		writeInput(h, inputSpec{label: T(loc, "auth.field.new_password"), name: "newPassword", kind: "password", required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.confirm_password"), name: "confirmPassword", kind: "password", required: true})
		writeSubmit(h, T(loc, "auth.reset.submit"), "")
		h.raw(`</form></section>`)
	})
}
