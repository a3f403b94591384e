package templates

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestNavItemsMarksActiveEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		role   module.Role
		path   string
		active string
		count  int
	}{
		{name: "customer dashboard exact", role: module.RoleCustomer, path: "/customer", active: routepath.Customer, count: 7},
		{name: "customer nested menu", role: module.RoleCustomer, path: "/customer/menu", active: routepath.CustomerMenu, count: 7},
		{name: "feedback does not light history", role: module.RoleCustomer, path: "/customer/feedback-history", active: routepath.CustomerFeedbackHistory, count: 7},
		{name: "chef board", role: module.RoleChef, path: "/chef/orders/board", active: routepath.ChefOrders, count: 3},
		{name: "waiter", role: module.RoleWaiter, path: "/waiter", active: routepath.Waiter, count: 3},
		{name: "admin tables", role: module.RoleAdmin, path: "/admin/tables", active: routepath.AdminTables, count: 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items := NavItems(tc.role, tc.path, nil)
			if len(items) != tc.count {
				t.Fatalf("len(items) = %d, want %d", len(items), tc.count)
			}
			var active []string
			for _, item := range items {
				if item.Active {
					active = append(active, item.Href)
				}
			}
			if len(active) != 1 || active[0] != tc.active {
				t.Fatalf("active = %v, want [%s]", active, tc.active)
			}
		})
	}
}

func TestRoleHome(t *testing.T) {
	t.Parallel()

	tests := map[module.Role]string{
		module.RoleAdmin:    routepath.AdminDashboard,
		module.RoleCustomer: routepath.Customer,
		module.RoleChef:     routepath.Chef,
		module.RoleWaiter:   routepath.Waiter,
		"":                  routepath.Root,
	}
	for role, want := range tests {
		if got := RoleHome(role); got != want {
			t.Fatalf("RoleHome(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestTFallsBackToFormattedKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "cart.empty"); got != "cart.empty" {
		t.Fatalf("T(nil) = %q, want key", got)
	}
	if got := T(nil, "Order #%s", "12"); got != "Order #12" {
		t.Fatalf("T(nil, args) = %q, want %q", got, "Order #12")
	}
}

func TestMoneyAndHumanize(t *testing.T) {
	t.Parallel()

	if got := Money(decimal.RequireFromString("12.5")); got != "₹12.50" {
		t.Fatalf("Money() = %q", got)
	}
	if got := Money(decimal.RequireFromString("-3")); got != "-₹3.00" {
		t.Fatalf("Money(negative) = %q", got)
	}
	if got := Humanize("FOOD_QUALITY"); got != "Food Quality" {
		t.Fatalf("Humanize() = %q", got)
	}
	if got := Stars(3); got != "★★★☆☆" {
		t.Fatalf("Stars(3) = %q", got)
	}
	if StatusTone("ready") != "success" || StatusTone("CANCELLED") != "danger" || StatusTone("??") != "neutral" {
		t.Fatalf("unexpected status tones")
	}
}

func TestAppLayoutRendersRoleNavigationAndLogout(t *testing.T) {
	t.Parallel()

	opts := LayoutOptions{
		Title:       "Menu",
		Lang:        "en",
		CurrentPath: routepath.CustomerMenu,
		Viewer:      module.Viewer{UserID: "7", DisplayName: "Ana <script>", Role: module.RoleCustomer},
		Toast:       &AppToast{Kind: "success", Message: "Saved"},
	}
	ctx := templ.WithChildren(context.Background(), component(func(h *htmlWriter) { h.raw(`<p id="child">x</p>`) }))
	var buf bytes.Buffer
	if err := AppLayout(opts, &AppMainHeader{Title: "Menu"}, AppMainLayoutOptions{}).Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := buf.String()
	for _, marker := range []string{
		`<title>Menu | JavaBite</title>`,
		`href="/customer/menu" class="active"`,
		`action="/logout"`,
		`id="main"`,
		`id="child"`,
		`toast toast-success`,
		`Ana &lt;script&gt;`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("layout missing %q: %s", marker, body)
		}
	}
	if strings.Contains(body, "/admin/staff") {
		t.Fatalf("customer layout should not link admin pages")
	}
}

func TestAppErrorStateStatus(t *testing.T) {
	t.Parallel()

	body := render(t, AppErrorState(http.StatusNotFound, "/customer", nil))
	if !strings.Contains(body, `data-status="404"`) || !strings.Contains(body, `href="/customer"`) {
		t.Fatalf("unexpected error state: %s", body)
	}
	body = render(t, AppErrorState(http.StatusBadGateway, "", nil))
	if !strings.Contains(body, `data-status="500"`) {
		t.Fatalf("non-404 statuses should collapse to 500: %s", body)
	}
}

func TestCartPanelDisablesDecrementAtOne(t *testing.T) {
	t.Parallel()

	view := CartView{
		Lines: []CartLineView{
			{MenuItemID: "1", Name: "Latte", Price: decimal.NewFromInt(120), Quantity: 1, Total: decimal.NewFromInt(120)},
			{MenuItemID: "2", Name: "Muffin", Price: decimal.NewFromInt(60), Quantity: 2, Total: decimal.NewFromInt(120)},
		},
		Total: decimal.NewFromInt(240),
		Count: 3,
	}
	body := render(t, CartPanel(view, nil))
	if strings.Count(body, `data-action="decrement" disabled`) != 1 {
		t.Fatalf("expected exactly one disabled decrement: %s", body)
	}
	if !strings.Contains(body, `hx-post="/customer/cart/1/increment"`) || !strings.Contains(body, `action="/customer/checkout"`) {
		t.Fatalf("missing cart actions: %s", body)
	}

	empty := render(t, CartPanel(CartView{}, nil))
	if strings.Contains(empty, "/customer/checkout") {
		t.Fatalf("empty cart should not offer checkout")
	}
}

func TestOrderBoardPollsWithFilter(t *testing.T) {
	t.Parallel()

	view := OrderBoardView{
		Filter:      "ready",
		PollPath:    routepath.WaiterOrdersBoard,
		PollSeconds: 30,
		Orders: []BoardOrder{{
			Order:  restapi.Order{ID: "5", Status: "READY"},
			Action: &OrderAction{LabelKey: "waiter.action.serve", Status: restapi.OrderServed, Path: routepath.WaiterOrderStatusUpdate("5")},
		}},
		Tables: &TableCounts{Occupied: 2, Available: 3, Total: 5},
	}
	body := render(t, OrderBoard(view, nil))
	for _, marker := range []string{
		`hx-get="/waiter/orders/board?filter=ready"`,
		`hx-trigger="every 30s"`,
		`hx-post="/waiter/orders/5/status"`,
		`name="status" value="SERVED"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("board missing %q: %s", marker, body)
		}
	}
}

func TestCanPay(t *testing.T) {
	t.Parallel()

	if !CanPay(restapi.Order{Status: "pending"}) {
		t.Fatalf("pending unpaid order should be payable")
	}
	if CanPay(restapi.Order{Status: "PENDING", PaymentStatus: "PAID"}) {
		t.Fatalf("paid order should not be payable")
	}
	if CanPay(restapi.Order{Status: "READY"}) {
		t.Fatalf("ready order should not be payable")
	}
}
