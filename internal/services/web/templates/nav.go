package templates

import (
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// NavItem is one sidebar link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

type navEntry struct {
	key  string
	href string
	// exact limits the active state to the path itself.
	exact bool
}

var navByRole = map[module.Role][]navEntry{
	module.RoleCustomer: {
		{key: "nav.customer.dashboard", href: routepath.Customer, exact: true},
		{key: "nav.customer.book_table", href: routepath.CustomerBookTable},
		{key: "nav.customer.menu", href: routepath.CustomerMenu},
		{key: "nav.customer.orders", href: routepath.CustomerOrders},
		{key: "nav.customer.feedback", href: routepath.CustomerFeedback, exact: true},
		{key: "nav.customer.feedback_history", href: routepath.CustomerFeedbackHistory},
		{key: "nav.customer.profile", href: routepath.CustomerProfile},
	},
	module.RoleChef: {
		{key: "nav.chef.dashboard", href: routepath.Chef, exact: true},
		{key: "nav.chef.orders", href: routepath.ChefOrders},
		{key: "nav.chef.profile", href: routepath.ChefProfile},
	},
	module.RoleWaiter: {
		{key: "nav.waiter.dashboard", href: routepath.Waiter, exact: true},
		{key: "nav.waiter.orders", href: routepath.WaiterOrders},
		{key: "nav.waiter.profile", href: routepath.WaiterProfile},
	},
	module.RoleAdmin: {
		{key: "nav.admin.dashboard", href: routepath.AdminDashboard},
		{key: "nav.admin.staff", href: routepath.AdminStaff},
		{key: "nav.admin.menu", href: routepath.AdminMenu},
		{key: "nav.admin.orders", href: routepath.AdminOrders},
		{key: "nav.admin.customers", href: routepath.AdminCustomers},
		{key: "nav.admin.tables", href: routepath.AdminTables},
		{key: "nav.admin.feedback", href: routepath.AdminFeedback},
	},
}

// NavItems returns the sidebar links for a role with the current page marked.
func NavItems(role module.Role, currentPath string, loc Localizer) []NavItem {
	entries := navByRole[role]
	currentPath = strings.TrimSpace(currentPath)
	items := make([]NavItem, 0, len(entries))
	for _, entry := range entries {
		active := currentPath == entry.href
		if !entry.exact && strings.HasPrefix(currentPath, entry.href+"/") {
			active = true
		}
		items = append(items, NavItem{Label: T(loc, entry.key), Href: entry.href, Active: active})
	}
	return items
}

// RoleHome returns the landing route for a signed-in role.
func RoleHome(role module.Role) string {
	switch role {
	case module.RoleAdmin:
		return routepath.AdminDashboard
	case module.RoleCustomer:
		return routepath.Customer
	case module.RoleChef:
		return routepath.Chef
	case module.RoleWaiter:
		return routepath.Waiter
	default:
		return routepath.Root
	}
}

func roleLabelKey(role module.Role) string {
	return "role." + strings.ToLower(string(role))
}

func moduleRole(raw string) module.Role {
	role, _ := module.ParseRole(raw)
	return role
}
