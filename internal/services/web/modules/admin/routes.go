package admin

import (
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	postOnly := httpx.MethodNotAllowed(http.MethodPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminDashboard, h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminDashboardStats, h.handleDashboardStats)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminStaff, h.handleStaff)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminStaff, h.handleStaffCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminStaffDeletePattern, postOnly)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminStaffDeletePattern, h.handleStaffDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminMenu, h.handleMenu)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminMenu, h.handleMenuSave)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminMenuItemPattern, postOnly)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminMenuItemPattern, h.handleMenuSave)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminMenuDeletePattern, postOnly)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminMenuDeletePattern, h.handleMenuDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminOrders, h.handleOrders)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminOrdersBoard, h.handleOrdersBoard)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminCustomers, h.handleCustomers)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminTables, h.handleTables)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminTables, h.handleTableSave)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminTablePattern, postOnly)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminTablePattern, h.handleTableSave)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminTableDeletePattern, postOnly)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminTableDeletePattern, h.handleTableDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminTableMaintenancePat, postOnly)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminTableMaintenancePat, h.handleTableMaintenance)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminFeedback, h.handleFeedback)
	mux.HandleFunc(routepath.AdminPrefix+"{rest...}", h.WriteNotFound)
}
