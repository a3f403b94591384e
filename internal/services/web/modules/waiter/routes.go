package waiter

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.WaiterPrefix+"{$}", h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.WaiterOrders, h.handleOrders)
	mux.HandleFunc(http.MethodGet+" "+routepath.WaiterOrdersBoard, h.handleBoard)
	mux.HandleFunc(http.MethodGet+" "+routepath.WaiterOrderStatus, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.WaiterOrderStatus, h.handleStatus)
	mux.HandleFunc(http.MethodGet+" "+routepath.WaiterProfile, h.handleProfile)
	mux.HandleFunc(http.MethodGet+" "+routepath.WaiterPassword, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.WaiterPassword, h.handlePassword)
	mux.HandleFunc(routepath.WaiterPrefix+"{rest...}", h.WriteNotFound)
}
