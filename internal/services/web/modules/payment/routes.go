package payment

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentPattern, h.handleSummary)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentStartPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.PaymentStartPattern, h.handleStart)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentVerifyPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.PaymentVerifyPattern, h.handleVerify)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentSuccessPattern, h.handleSuccess)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentDocumentPattern, h.handleDocument)
	mux.HandleFunc(http.MethodPost+" "+routepath.PaymentEmailPattern, h.handleEmail)
	mux.HandleFunc(routepath.PaymentPrefix+"{rest...}", h.WriteNotFound)
}
