package templates

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
)

// BoardElementID is the swap target for polled order boards.
const BoardElementID = "board"

// OrderAction is the next status a staff member can move an order to.
type OrderAction struct {
	LabelKey string
	Status   string
	Path     string
}

// BoardOrder pairs an order with its next action, if any.
type BoardOrder struct {
	Order  restapi.Order
	Action *OrderAction
}

// OrderBoardView is a polled order board.
type OrderBoardView struct {
	Orders      []BoardOrder
	Filter      string
	Filters     []string
	BasePath    string
	PollPath    string
	PollSeconds int
	// Tables summarizes floor occupancy on the waiter board.
	Tables *TableCounts
	// Table narrows the board to one table number when set.
	Table        string
	TableOptions []string
}

// TableCounts summarizes floor tables by status.
type TableCounts struct {
	Occupied  int
	Available int
	Total     int
}

// OrderBoardPage renders the filter tabs around a polled board.
func OrderBoardPage(view OrderBoardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		if len(view.Filters) > 0 {
			h.raw(`<nav class="tabs">`)
			for _, filter := range view.Filters {
				class := "tab"
				if filter == view.Filter {
					class += " active"
				}
				h.raw(`<a`)
				h.attr("class", class)
				h.href(boardURL(view.BasePath, filter, view.Table))
				h.raw(`>`)
				h.text(T(loc, "board.filter."+filter))
				h.raw(`</a>`)
			}
			h.raw(`</nav>`)
		}
		if len(view.TableOptions) > 0 {
			writeTableFilter(h, view, loc)
		}
		h.render(OrderBoard(view, loc))
	})
}

// OrderBoard renders the polled board fragment.
func OrderBoard(view OrderBoardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="board"`)
		h.attr("id", BoardElementID)
		if view.PollPath != "" && view.PollSeconds > 0 {
			h.attr("hx-get", boardURL(view.PollPath, view.Filter, view.Table))
			h.attr("hx-trigger", "every "+strconv.Itoa(view.PollSeconds)+"s")
			h.raw(` hx-swap="outerHTML" hx-sync="this:replace"`)
		}
		h.raw(`>`)
		if view.Tables != nil {
			h.raw(`<div class="stats">`)
			writeStat(h, T(loc, "waiter.tables.occupied"), itoa(view.Tables.Occupied), "info")
			writeStat(h, T(loc, "waiter.tables.available"), itoa(view.Tables.Available), "success")
			writeStat(h, T(loc, "waiter.tables.total"), itoa(view.Tables.Total), "")
			h.raw(`</div>`)
		}
		if len(view.Orders) == 0 {
			writeEmpty(h, T(loc, "board.empty"))
			h.raw(`</section>`)
			return
		}
		h.raw(`<div class="board-grid">`)
		for _, entry := range view.Orders {
			writeBoardCard(h, entry, view, loc)
		}
		h.raw(`</div></section>`)
	})
}

func writeTableFilter(h *htmlWriter, view OrderBoardView, loc Localizer) {
	options := []Option{{Value: "", Label: T(loc, "board.filter.all_tables")}}
	for _, table := range view.TableOptions {
		options = append(options, Option{Value: table, Label: T(loc, "booking.table_number", table)})
	}
	h.raw(`<form method="get" class="inline filters"`)
	h.attr("action", view.BasePath)
	h.raw(`>`)
	writeHidden(h, "filter", view.Filter)
	writeSelect(h, T(loc, "board.table"), "table", view.Table, options, false)
	writeSubmit(h, T(loc, "board.apply"), "btn btn-ghost")
	h.raw(`</form>`)
}

func writeBoardCard(h *htmlWriter, entry BoardOrder, view OrderBoardView, loc Localizer) {
	order := entry.Order
	h.raw(`<article class="order-card"`)
	h.attr("data-status", order.NormalizedStatus())
	h.raw(`><div class="order-head">`)
	h.element("strong", "", T(loc, "orders.number", order.ID.String()))
	statusBadge(h, order.NormalizedStatus())
	h.raw(`</div><p class="muted">`)
	if table := order.TableNumber(); table != "" {
		h.text(T(loc, "booking.table_number", table) + " · ")
	}
	if name := order.CustomerName(); name != "" {
		h.text(name + " · ")
	}
	h.text(Clock(order.CreatedAt))
	h.raw(`</p><ul class="order-items">`)
	for _, item := range order.OrderItems {
		h.raw(`<li>`)
		h.text(itoa(item.Quantity) + " × " + item.MenuItemName)
		if item.SpecialInstructions != "" {
			h.element("em", "muted", item.SpecialInstructions)
		}
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
	if order.SpecialInstructions != "" {
		h.element("p", "notice notice-warning", order.SpecialInstructions)
	}
	h.raw(`<div class="order-foot">`)
	h.element("span", "total", Money(order.TotalAmount))
	if action := entry.Action; action != nil {
		h.raw(`<form method="post" class="inline"`)
		h.attr("action", action.Path)
		h.attr("hx-post", action.Path)
		h.attr("hx-target", "#"+BoardElementID)
		h.raw(` hx-swap="outerHTML">`)
		writeHidden(h, "status", action.Status)
		writeHidden(h, "filter", view.Filter)
		if view.Table != "" {
			writeHidden(h, "table", view.Table)
		}
		writeSubmit(h, T(loc, action.LabelKey), "btn btn-primary")
		h.raw(`</form>`)
	}
	h.raw(`</div></article>`)
}

func boardURL(path, filter, table string) string {
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}
	if table != "" {
		query.Set("table", table)
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// StatusCount is one bar of a status distribution.
type StatusCount struct {
	Status string
	Count  int
}

// ChefDashboardView is the kitchen summary.
type ChefDashboardView struct {
	Total          int
	Today          int
	Active         int
	Ready          int
	CompletedToday int
	RevenueToday   decimal.Decimal
	Distribution   []StatusCount
}

// ChefDashboardPage renders kitchen statistics.
func ChefDashboardPage(view ChefDashboardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="stats">`)
		writeStat(h, T(loc, "chef.stats.total"), itoa(view.Total), "")
		writeStat(h, T(loc, "chef.stats.today"), itoa(view.Today), "")
		writeStat(h, T(loc, "chef.stats.active"), itoa(view.Active), "warning")
		writeStat(h, T(loc, "chef.stats.ready"), itoa(view.Ready), "success")
		writeStat(h, T(loc, "chef.stats.completed_today"), itoa(view.CompletedToday), "success")
		writeStat(h, T(loc, "chef.stats.revenue_today"), Money(view.RevenueToday), "")
		h.raw(`</div>`)
		writeDistribution(h, T(loc, "chef.stats.distribution"), view.Distribution, view.Total)
	})
}

func writeDistribution(h *htmlWriter, title string, counts []StatusCount, total int) {
	h.raw(`<section class="card">`)
	h.element("h2", "", title)
	h.raw(`<ul class="distribution">`)
	for _, entry := range counts {
		percent := 0
		if total > 0 {
			percent = entry.Count * 100 / total
		}
		h.raw(`<li>`)
		statusBadge(h, entry.Status)
		h.raw(`<span class="bar"><span`)
		h.attr("class", "bar-fill bar-"+StatusTone(entry.Status))
		h.attr("style", "width:"+itoa(percent)+"%")
		h.raw(`></span></span>`)
		h.element("span", "count", itoa(entry.Count))
		h.raw(`</li>`)
	}
	h.raw(`</ul></section>`)
}

// WaiterDashboardView is the floor summary.
type WaiterDashboardView struct {
	Ready       int
	Served      int
	Active      int
	Tables      TableCounts
	ReadyOrders []restapi.Order
}

// WaiterDashboardPage renders floor statistics and orders ready to serve.
func WaiterDashboardPage(view WaiterDashboardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="stats">`)
		writeStat(h, T(loc, "waiter.stats.ready"), itoa(view.Ready), "success")
		writeStat(h, T(loc, "waiter.stats.served"), itoa(view.Served), "info")
		writeStat(h, T(loc, "waiter.stats.active"), itoa(view.Active), "warning")
		writeStat(h, T(loc, "waiter.tables.occupied"), itoa(view.Tables.Occupied), "info")
		writeStat(h, T(loc, "waiter.tables.available"), itoa(view.Tables.Available), "success")
		h.raw(`</div><section class="card">`)
		h.element("h2", "", T(loc, "waiter.ready_to_serve"))
		writeOrderList(h, view.ReadyOrders, false, loc)
		h.raw(`</section>`)
	})
}
