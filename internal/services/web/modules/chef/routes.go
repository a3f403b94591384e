package chef

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ChefPrefix+"{$}", h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChefOrders, h.handleOrders)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChefOrdersBoard, h.handleBoard)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChefOrderStatus, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.ChefOrderStatus, h.handleStatus)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChefProfile, h.handleProfileGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.ChefProfile, h.handleProfilePost)
	mux.HandleFunc(routepath.ChefPrefix+"{rest...}", h.WriteNotFound)
}
