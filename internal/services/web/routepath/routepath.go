// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	Login          = "/login"
	Logout         = "/logout"
	Register       = "/register"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password"
	Health         = "/up"
	StaticPrefix   = "/static/"

	AdminAuthPrefix   = "/admin/auth/"
	AdminAuthLogin    = "/admin/auth/login"
	AdminAuthRegister = "/admin/auth/register"

	CustomerPrefix          = "/customer/"
	Customer                = "/customer"
	CustomerBookTable       = "/customer/book-table"
	CustomerBookingPattern  = "/customer/bookings/{bookingID}/cancel"
	CustomerMenu            = "/customer/menu"
	CustomerCart            = "/customer/cart"
	CustomerCartAdd         = "/customer/cart/add"
	CustomerCartClear       = "/customer/cart/clear"
	CustomerCartItemPattern = "/customer/cart/{menuItemID}/{action}"
	CustomerCheckout        = "/customer/checkout"
	CustomerOrders          = "/customer/orders"
	CustomerProfile         = "/customer/profile"
	CustomerFeedback        = "/customer/feedback"
	CustomerFeedbackHistory = "/customer/feedback-history"

	PaymentPrefix              = "/payment/"
	PaymentPattern             = "/payment/{orderID}"
	PaymentStartPattern        = "/payment/{orderID}/start"
	PaymentVerifyPattern       = "/payment/{orderID}/verify"
	PaymentSuccessPattern      = "/payment/{orderID}/success"
	PaymentDocumentPattern     = "/payment/{orderID}/documents/{document}"
	PaymentEmailPattern        = "/payment/{orderID}/documents/{document}/email"
	PaymentDocumentReceipt     = "receipt"
	PaymentDocumentInvoice     = "invoice"
	PaymentSuccessPaymentIDKey = "paymentId"

	ChefPrefix        = "/chef/"
	Chef              = "/chef"
	ChefOrders        = "/chef/orders"
	ChefOrdersBoard   = "/chef/orders/board"
	ChefOrderStatus   = "/chef/orders/{orderID}/status"
	ChefProfile       = "/chef/profile"
	WaiterPrefix      = "/waiter/"
	Waiter            = "/waiter"
	WaiterOrders      = "/waiter/orders"
	WaiterOrdersBoard = "/waiter/orders/board"
	WaiterOrderStatus = "/waiter/orders/{orderID}/status"
	WaiterProfile     = "/waiter/profile"
	WaiterPassword    = "/waiter/profile/password"

	AdminPrefix              = "/admin/"
	Admin                    = "/admin"
	AdminDashboard           = "/admin/dashboard"
	AdminDashboardStats      = "/admin/dashboard/stats"
	AdminStaff               = "/admin/staff"
	AdminStaffDeletePattern  = "/admin/staff/{staffID}/delete"
	AdminMenu                = "/admin/menu"
	AdminMenuItemPattern     = "/admin/menu/{itemID}"
	AdminMenuDeletePattern   = "/admin/menu/{itemID}/delete"
	AdminOrders              = "/admin/orders"
	AdminOrdersBoard         = "/admin/orders/board"
	AdminCustomers           = "/admin/customers"
	AdminTables              = "/admin/tables"
	AdminTablePattern        = "/admin/tables/{tableID}"
	AdminTableDeletePattern  = "/admin/tables/{tableID}/delete"
	AdminTableMaintenancePat = "/admin/tables/{tableID}/maintenance"
	AdminFeedback            = "/admin/feedback"

	EditQueryKey = "edit"
)

// CustomerBookingCancel returns the booking cancel route.
func CustomerBookingCancel(bookingID string) string {
	return CustomerPrefix + "bookings/" + escapeSegment(bookingID) + "/cancel"
}

// CustomerCartItem returns a cart line action route (increment, decrement, remove).
func CustomerCartItem(menuItemID string, action string) string {
	return CustomerCart + "/" + escapeSegment(menuItemID) + "/" + escapeSegment(action)
}

// Payment returns the payment page for an order.
func Payment(orderID string) string {
	return PaymentPrefix + escapeSegment(orderID)
}

// PaymentStart returns the route that creates the gateway order.
func PaymentStart(orderID string) string {
	return Payment(orderID) + "/start"
}

// PaymentVerify returns the route that verifies a gateway callback.
func PaymentVerify(orderID string) string {
	return Payment(orderID) + "/verify"
}

// PaymentSuccess returns the order success page, optionally tagged with the gateway payment id.
func PaymentSuccess(orderID string, paymentID string) string {
	path := Payment(orderID) + "/success"
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return path
	}
	return path + "?" + PaymentSuccessPaymentIDKey + "=" + url.QueryEscape(paymentID)
}

// PaymentDocument returns the download route for a receipt or invoice.
func PaymentDocument(orderID string, document string) string {
	return Payment(orderID) + "/documents/" + escapeSegment(document)
}

// PaymentDocumentEmail returns the email route for a receipt or invoice.
func PaymentDocumentEmail(orderID string, document string) string {
	return PaymentDocument(orderID, document) + "/email"
}

// ChefOrderStatusUpdate returns the kitchen status update route.
func ChefOrderStatusUpdate(orderID string) string {
	return ChefOrders + "/" + escapeSegment(orderID) + "/status"
}

// WaiterOrderStatusUpdate returns the floor status update route.
func WaiterOrderStatusUpdate(orderID string) string {
	return WaiterOrders + "/" + escapeSegment(orderID) + "/status"
}

// AdminStaffDelete returns the staff delete route.
func AdminStaffDelete(staffID string) string {
	return AdminStaff + "/" + escapeSegment(staffID) + "/delete"
}

// AdminMenuItem returns the menu item update route.
func AdminMenuItem(itemID string) string {
	return AdminMenu + "/" + escapeSegment(itemID)
}

// AdminMenuItemDelete returns the menu item delete route.
func AdminMenuItemDelete(itemID string) string {
	return AdminMenuItem(itemID) + "/delete"
}

// AdminMenuEdit returns the menu page with an item opened for editing.
func AdminMenuEdit(itemID string) string {
	return AdminMenu + "?" + EditQueryKey + "=" + url.QueryEscape(strings.TrimSpace(itemID))
}

// AdminTable returns the table update route.
func AdminTable(tableID string) string {
	return AdminTables + "/" + escapeSegment(tableID)
}

// AdminTableDelete returns the table delete route.
func AdminTableDelete(tableID string) string {
	return AdminTable(tableID) + "/delete"
}

// AdminTableMaintenance returns the maintenance toggle route.
func AdminTableMaintenance(tableID string) string {
	return AdminTable(tableID) + "/maintenance"
}

// AdminTableEdit returns the tables page with a table opened for editing.
func AdminTableEdit(tableID string) string {
	return AdminTables + "?" + EditQueryKey + "=" + url.QueryEscape(strings.TrimSpace(tableID))
}

// ResetPasswordWithToken returns the reset page for a token.
func ResetPasswordWithToken(token string) string {
	return ResetPassword + "?token=" + url.QueryEscape(strings.TrimSpace(token))
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
