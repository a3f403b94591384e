package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// CartElementID is the swap target for cart fragments.
const CartElementID = "cart"

// OrderStatsView summarizes a customer's orders.
type OrderStatsView struct {
	Total     int
	Active    int
	Completed int
	Spent     decimal.Decimal
}

// CustomerDashboardView is the customer landing page data.
type CustomerDashboardView struct {
	Name          string
	ActiveBooking *restapi.Booking
	RecentOrders  []restapi.Order
	Stats         OrderStatsView
}

// CustomerDashboardPage renders the customer landing page.
func CustomerDashboardPage(view CustomerDashboardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.element("p", "lead", T(loc, "customer.dashboard.welcome", view.Name))
		writeOrderStats(h, view.Stats, loc)
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, "customer.dashboard.active_booking"))
		if view.ActiveBooking == nil {
			writeEmpty(h, T(loc, "customer.dashboard.no_active_booking"))
			h.raw(`<a class="btn"`)
			h.href(routepath.CustomerBookTable)
			h.raw(`>`)
			h.text(T(loc, "nav.customer.book_table"))
			h.raw(`</a>`)
		} else {
			writeBookingSummary(h, *view.ActiveBooking, loc)
		}
		h.raw(`</section><section class="card">`)
		h.element("h2", "", T(loc, "customer.recent_orders"))
		writeOrderList(h, view.RecentOrders, false, loc)
		h.raw(`<a class="btn btn-primary"`)
		h.href(routepath.CustomerMenu)
		h.raw(`>`)
		h.text(T(loc, "customer.dashboard.order_now"))
		h.raw(`</a></section>`)
	})
}

func writeOrderStats(h *htmlWriter, stats OrderStatsView, loc Localizer) {
	h.raw(`<div class="stats">`)
	writeStat(h, T(loc, "customer.stats.total_orders"), itoa(stats.Total), "")
	writeStat(h, T(loc, "customer.stats.active_orders"), itoa(stats.Active), "info")
	writeStat(h, T(loc, "customer.stats.completed_orders"), itoa(stats.Completed), "success")
	writeStat(h, T(loc, "customer.stats.total_spent"), Money(stats.Spent), "")
	h.raw(`</div>`)
}

func writeBookingSummary(h *htmlWriter, booking restapi.Booking, loc Localizer) {
	h.raw(`<dl class="summary">`)
	writeTerm(h, T(loc, "booking.table"), booking.TableNumber)
	writeTerm(h, T(loc, "booking.date"), booking.BookingDate)
	writeTerm(h, T(loc, "booking.slot"), Humanize(booking.Slot))
	writeTerm(h, T(loc, "booking.guests"), itoa(booking.NumberOfGuests))
	h.raw(`</dl>`)
	statusBadge(h, booking.Status)
	if status := strings.ToUpper(booking.Status); status != "CANCELLED" && status != "COMPLETED" && !booking.ID.IsZero() {
		writeActionForm(h, routepath.CustomerBookingCancel(booking.ID.String()), T(loc, "booking.cancel"), "btn btn-danger", T(loc, "booking.cancel_confirm"))
	}
}

func writeTerm(h *htmlWriter, term, value string) {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	h.element("dt", "", term)
	h.element("dd", "", value)
}

// writeOrderList renders order cards. Unpaid pending orders link to payment
// when withPay is set.
func writeOrderList(h *htmlWriter, orders []restapi.Order, withPay bool, loc Localizer) {
	if len(orders) == 0 {
		writeEmpty(h, T(loc, "orders.empty"))
		return
	}
	h.raw(`<ul class="orders">`)
	for _, order := range orders {
		h.raw(`<li class="order-card">`)
		h.raw(`<div class="order-head">`)
		h.element("strong", "", T(loc, "orders.number", order.ID.String()))
		statusBadge(h, order.NormalizedStatus())
		h.raw(`</div>`)
		h.element("span", "muted", DateTime(order.CreatedAt))
		h.raw(`<ul class="order-items">`)
		for _, item := range order.OrderItems {
			h.raw(`<li>`)
			h.text(itoa(item.Quantity) + " × " + item.MenuItemName)
			h.element("span", "price", Money(item.LineTotal()))
			h.raw(`</li>`)
		}
		h.raw(`</ul><div class="order-foot">`)
		h.element("span", "total", T(loc, "orders.total", Money(order.TotalAmount)))
		if withPay && CanPay(order) {
			h.raw(`<a class="btn btn-primary"`)
			h.href(routepath.Payment(order.ID.String()))
			h.raw(`>`)
			h.text(T(loc, "orders.pay_now"))
			h.raw(`</a>`)
		}
		h.raw(`</div></li>`)
	}
	h.raw(`</ul>`)
}

// CanPay reports whether an order still awaits payment.
func CanPay(order restapi.Order) bool {
	return order.NormalizedStatus() == restapi.OrderPending && !order.IsPaid()
}

// BookTableView is the booking search and result state.
type BookTableView struct {
	Date            string
	MinDate         string
	Slot            string
	Guests          int
	SpecialRequests string
	Searched        bool
	Tables          []restapi.Table
	ActiveBooking   *restapi.Booking
	Error           string
}

// BookingSlots lists the bookable slots in display order.
var BookingSlots = []string{"MORNING", "AFTERNOON", "EVENING", "NIGHT"}

// BookTablePage renders the table search form and available tables.
func BookTablePage(view BookTableView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		if view.ActiveBooking != nil {
			h.raw(`<section class="card">`)
			h.element("h2", "", T(loc, "customer.dashboard.active_booking"))
			writeBookingSummary(h, *view.ActiveBooking, loc)
			h.raw(`</section>`)
		}
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, "booking.search.title"))
		writeFormError(h, view.Error)
		h.raw(`<form method="get" class="grid-form"`)
		h.attr("action", routepath.CustomerBookTable)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "booking.date"), name: "date", kind: "date", value: view.Date, min: view.MinDate, required: true})
		writeSelect(h, T(loc, "booking.slot"), "slot", view.Slot, slotOptions(loc), true)
		writeInput(h, inputSpec{label: T(loc, "booking.guests"), name: "guests", kind: "number", value: itoa(max(view.Guests, 1)), min: "1", max: "20"})
		writeSubmit(h, T(loc, "booking.search.submit"), "")
		h.raw(`</form></section>`)
		if !view.Searched {
			return
		}
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, "booking.available_tables"))
		if len(view.Tables) == 0 {
			writeEmpty(h, T(loc, "booking.no_tables"))
			h.raw(`</section>`)
			return
		}
		h.raw(`<div class="table-grid">`)
		for _, table := range view.Tables {
			h.raw(`<article class="table-card">`)
			h.element("h3", "", T(loc, "booking.table_number", table.TableNumber))
			h.element("p", "muted", T(loc, "booking.capacity", table.Capacity))
			if table.Location != "" {
				h.element("p", "", table.Location)
			}
			h.raw(`<form method="post"`)
			h.attr("action", routepath.CustomerBookTable)
			h.raw(`>`)
			writeHidden(h, "tableId", table.ID.String())
			writeHidden(h, "date", view.Date)
			writeHidden(h, "slot", view.Slot)
			writeHidden(h, "guests", itoa(max(view.Guests, 1)))
			writeTextarea(h, T(loc, "booking.special_requests"), "specialRequests", view.SpecialRequests, false)
			writeSubmit(h, T(loc, "booking.book"), "")
			h.raw(`</form></article>`)
		}
		h.raw(`</div></section>`)
	})
}

func slotOptions(loc Localizer) []Option {
	options := []Option{{Value: "", Label: T(loc, "booking.slot_select")}}
	for _, slot := range BookingSlots {
		options = append(options, Option{Value: slot, Label: T(loc, "booking.slot."+strings.ToLower(slot))})
	}
	return options
}

// CartLineView is one cart line ready to render.
type CartLineView struct {
	MenuItemID string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Total      decimal.Decimal
}

// CartView is the cart panel state.
type CartView struct {
	Lines []CartLineView
	Total decimal.Decimal
	Count int
}

// MenuView is the customer menu page state.
type MenuView struct {
	Items        []restapi.MenuItem
	Categories   []string
	Category     string
	Query        string
	Cart         CartView
	RecentOrders []restapi.Order
}

// MenuPage renders the menu, filters and cart.
func MenuPage(view MenuView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="menu-layout"><section class="menu">`)
		h.raw(`<form method="get" class="filters"`)
		h.attr("action", routepath.CustomerMenu)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "menu.search"), name: "q", kind: "search", value: view.Query, placeholder: T(loc, "menu.search_placeholder")})
		options := []Option{{Value: "", Label: T(loc, "menu.category_all")}}
		for _, category := range view.Categories {
			options = append(options, Option{Value: category, Label: Humanize(category)})
		}
		writeSelect(h, T(loc, "menu.category"), "category", view.Category, options, false)
		writeSubmit(h, T(loc, "menu.filter"), "btn")
		h.raw(`</form>`)
		if len(view.Items) == 0 {
			writeEmpty(h, T(loc, "menu.empty"))
		}
		h.raw(`<div class="menu-grid">`)
		for _, item := range view.Items {
			writeMenuCard(h, item, loc)
		}
		h.raw(`</div></section><aside class="menu-side">`)
		h.render(CartPanel(view.Cart, loc))
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, "customer.recent_orders"))
		writeOrderList(h, view.RecentOrders, true, loc)
		h.raw(`</section></aside></div>`)
	})
}

func writeMenuCard(h *htmlWriter, item restapi.MenuItem, loc Localizer) {
	h.raw(`<article class="menu-card">`)
	if item.ImageURL != "" {
		h.raw(`<img loading="lazy"`)
		h.attr("src", item.ImageURL)
		h.attr("alt", item.Name)
		h.raw(`>`)
	}
	h.element("h3", "", item.Name)
	h.element("span", "badge badge-neutral", Humanize(item.Category))
	h.element("p", "muted", item.Description)
	if item.PreparationTime > 0 {
		h.element("p", "muted", T(loc, "menu.prep_time", item.PreparationTime))
	}
	h.raw(`<div class="menu-card-foot">`)
	h.element("strong", "price", Money(item.Price))
	h.raw(`<form method="post"`)
	h.attr("action", routepath.CustomerCartAdd)
	h.attr("hx-post", routepath.CustomerCartAdd)
	h.attr("hx-target", "#"+CartElementID)
	h.raw(` hx-swap="outerHTML">`)
	writeHidden(h, "menuItemId", item.ID.String())
	h.raw(`<input type="number" name="quantity" value="1" min="1" max="20" class="qty">`)
	writeSubmit(h, T(loc, "menu.add_to_cart"), "")
	h.raw(`</form></div></article>`)
}

// CartPanel renders the swappable cart fragment.
func CartPanel(view CartView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card cart"`)
		h.attr("id", CartElementID)
		h.raw(`>`)
		h.element("h2", "", T(loc, "cart.title", view.Count))
		if len(view.Lines) == 0 {
			writeEmpty(h, T(loc, "cart.empty"))
			h.raw(`</section>`)
			return
		}
		h.raw(`<ul class="cart-lines">`)
		for _, line := range view.Lines {
			h.raw(`<li>`)
			h.element("span", "cart-name", line.Name)
			h.raw(`<span class="cart-qty">`)
			writeCartAction(h, line.MenuItemID, "decrement", "−", line.Quantity <= 1)
			h.element("span", "", itoa(line.Quantity))
			writeCartAction(h, line.MenuItemID, "increment", "+", false)
			h.raw(`</span>`)
			h.element("span", "price", Money(line.Total))
			writeCartAction(h, line.MenuItemID, "remove", "×", false)
			h.raw(`</li>`)
		}
		h.raw(`</ul><p class="cart-total">`)
		h.text(T(loc, "cart.total", Money(view.Total)))
		h.raw(`</p><form method="post"`)
		h.attr("action", routepath.CustomerCheckout)
		h.raw(`>`)
		writeTextarea(h, T(loc, "cart.special_instructions"), "specialInstructions", "", false)
		writeSubmit(h, T(loc, "cart.checkout"), "")
		h.raw(`</form><form method="post"`)
		h.attr("action", routepath.CustomerCartClear)
		h.attr("hx-post", routepath.CustomerCartClear)
		h.attr("hx-target", "#"+CartElementID)
		h.raw(` hx-swap="outerHTML">`)
		writeSubmit(h, T(loc, "cart.clear"), "btn btn-ghost")
		h.raw(`</form></section>`)
	})
}

func writeCartAction(h *htmlWriter, menuItemID, action, label string, disabled bool) {
	path := routepath.CustomerCartItem(menuItemID, action)
	h.raw(`<form method="post" class="inline"`)
	h.attr("action", path)
	h.attr("hx-post", path)
	h.attr("hx-target", "#"+CartElementID)
	h.raw(` hx-swap="outerHTML"><button type="submit" class="btn btn-icon"`)
	h.attr("data-action", action)
	h.boolAttr("disabled", disabled)
	h.raw(`>`)
	h.text(label)
	h.raw(`</button></form>`)
}

// CustomerOrdersPage renders the order history.
func CustomerOrdersPage(orders []restapi.Order, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		writeOrderList(h, orders, true, loc)
	})
}

// ProfileView is the profile form state shared by customers and staff.
type ProfileView struct {
	Name   string
	Email  string
	Phone  string
	Role   string
	Action string
	// Stale marks a profile read from the session after the backend failed.
	Stale bool
	Stats *OrderStatsView
	// PasswordAction enables the change password form.
	PasswordAction string
}

// ProfilePage renders profile details, edit and password forms.
func ProfilePage(view ProfileView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		if view.Stats != nil {
			writeOrderStats(h, *view.Stats, loc)
		}
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, "profile.details"))
		if view.Stale {
			h.element("p", "notice notice-warning", T(loc, "profile.stale"))
		}
		if view.Action == "" {
			h.raw(`<dl class="summary">`)
			writeTerm(h, T(loc, "auth.field.name"), view.Name)
			writeTerm(h, T(loc, "auth.field.email"), view.Email)
			writeTerm(h, T(loc, "profile.role"), Humanize(view.Role))
			h.raw(`</dl>`)
		} else {
			h.raw(`<form method="post"`)
			h.attr("action", view.Action)
			h.raw(`>`)
			writeInput(h, inputSpec{label: T(loc, "auth.field.name"), name: "name", value: view.Name, required: true})
			writeInput(h, inputSpec{label: T(loc, "auth.field.email"), name: "email", kind: "email", value: view.Email, required: true})
			writeInput(h, inputSpec{label: T(loc, "auth.field.phone"), name: "phone", kind: "tel", value: view.Phone})
			writeSubmit(h, T(loc, "profile.save"), "")
			h.raw(`</form>`)
		}
		h.raw(`</section>`)
		if view.PasswordAction != "" {
			h.raw(`<section class="card">`)
			h.element("h2", "", T(loc, "profile.change_password"))
			h.raw(`<form method="post"`)
			h.attr("action", view.PasswordAction)
			h.raw(`>`)
			writeInput(h, inputSpec{label: T(loc, "auth.field.current_password"), name: "currentPassword", kind: "password", required: true})
			writeInput(h, inputSpec{label: T(loc, "auth.field.new_password"), name: "newPassword", kind: "password", required: true})
			writeInput(h, inputSpec{label: T(loc, "auth.field.confirm_password"), name: "confirmPassword", kind: "password", required: true})
			writeSubmit(h, T(loc, "profile.change_password"), "")
			h.raw(`</form></section>`)
		}
	})
}

// FeedbackCategories lists the accepted feedback categories.
var FeedbackCategories = []string{"SERVICE", "FOOD_QUALITY", "AMBIENCE", "CLEANLINESS", "PRICING", "DELIVERY", "OTHER"}

// FeedbackFormView is the feedback form state.
type FeedbackFormView struct {
	Orders   []restapi.Order
	OrderID  string
	Rating   int
	Category string
	Comment  string
	Error    string
}

// FeedbackFormPage renders the feedback form.
func FeedbackFormPage(view FeedbackFormView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card">`)
		writeFormError(h, view.Error)
		h.raw(`<form method="post"`)
		h.attr("action", routepath.CustomerFeedback)
		h.raw(`>`)
		orders := []Option{{Value: "", Label: T(loc, "feedback.order_none")}}
		for _, order := range view.Orders {
			orders = append(orders, Option{Value: order.ID.String(), Label: T(loc, "orders.number", order.ID.String()) + " · " + Date(order.CreatedAt)})
		}
		writeSelect(h, T(loc, "feedback.order"), "orderId", view.OrderID, orders, false)
		h.raw(`<fieldset class="rating"><legend>`)
		h.text(T(loc, "feedback.rating"))
		h.raw(`</legend>`)
		for rating := 1; rating <= 5; rating++ {
			h.raw(`<label><input type="radio" name="rating" required`)
			h.attr("value", itoa(rating))
			h.boolAttr("checked", rating == view.Rating)
			h.raw(`>`)
			h.text(Stars(rating))
			h.raw(`</label>`)
		}
		h.raw(`</fieldset>`)
		categories := []Option{{Value: "", Label: T(loc, "feedback.category_select")}}
		for _, category := range FeedbackCategories {
			categories = append(categories, Option{Value: category, Label: Humanize(category)})
		}
		writeSelect(h, T(loc, "feedback.category"), "category", view.Category, categories, true)
		writeTextarea(h, T(loc, "feedback.comment"), "comment", view.Comment, false)
		writeSubmit(h, T(loc, "feedback.submit"), "")
		h.raw(`</form></section>`)
	})
}

// FeedbackHistoryPage renders a customer's submitted feedback.
func FeedbackHistoryPage(entries []restapi.Feedback, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		writeFeedbackList(h, entries, false, loc)
	})
}

func writeFeedbackList(h *htmlWriter, entries []restapi.Feedback, withCustomer bool, loc Localizer) {
	if len(entries) == 0 {
		writeEmpty(h, T(loc, "feedback.empty"))
		return
	}
	h.raw(`<ul class="feedback-list">`)
	for _, entry := range entries {
		h.raw(`<li class="card">`)
		h.raw(`<div class="order-head">`)
		h.element("span", "stars", Stars(entry.Rating))
		h.element("span", "badge badge-neutral", Humanize(entry.Category))
		statusBadge(h, entry.Status)
		h.raw(`</div>`)
		if withCustomer {
			h.element("strong", "", strings.TrimSpace(entry.CustomerName+" "+entry.CustomerEmail))
		}
		h.element("p", "", entry.Comment)
		if !entry.OrderID.IsZero() {
			h.element("span", "muted", T(loc, "orders.number", entry.OrderID.String()))
		}
		h.element("span", "muted", Date(entry.CreatedAt))
		if entry.AdminNotes != "" {
			h.element("p", "admin-notes", T(loc, "feedback.admin_notes", entry.AdminNotes))
		}
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}
