package customer

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerPrefix+"{$}", h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerBookTable, h.handleBookTableGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerBookTable, h.handleBookTablePost)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerBookingPattern, h.handleBookingCancel)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerMenu, h.handleMenu)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerCart, h.handleCart)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerCartAdd, h.handleCartAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerCartClear, h.handleCartClear)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerCartItemPattern, h.handleCartItem)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerCheckout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerCheckout, h.handleCheckout)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerOrders, h.handleOrders)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerProfile, h.handleProfileGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerProfile, h.handleProfilePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerFeedback, h.handleFeedbackGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.CustomerFeedback, h.handleFeedbackPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.CustomerFeedbackHistory, h.handleFeedbackHistory)
	mux.HandleFunc(routepath.CustomerPrefix+"{rest...}", h.WriteNotFound)
}
