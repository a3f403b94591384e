package public

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLoginPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleRegisterGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleRegisterPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.ForgotPassword, h.handleForgotGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.ForgotPassword, h.handleForgotPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.ResetPassword, h.handleResetGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.ResetPassword, h.handleResetPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.Root+"{rest...}", h.WriteNotFound)
}
