package adminauth

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminAuthPrefix+"{$}", h.redirectToLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminAuthLogin, h.handleLoginGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminAuthLogin, h.handleLoginPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminAuthRegister, h.handleRegisterGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminAuthRegister, h.handleRegisterPost)
	mux.HandleFunc(routepath.AdminAuthPrefix+"{rest...}", h.WriteNotFound)
}
