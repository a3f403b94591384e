package templates

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// StatsElementID is the swap target for the polled admin analytics.
const StatsElementID = "dashboard-stats"

// AdminDashboardView is the analytics snapshot.
type AdminDashboardView struct {
	Stats       restapi.DashboardStats
	Feedback    *restapi.FeedbackStats
	PollPath    string
	PollSeconds int
}

// AdminDashboardStats renders the polled analytics fragment.
func AdminDashboardStats(view AdminDashboardView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section`)
		h.attr("id", StatsElementID)
		if view.PollPath != "" && view.PollSeconds > 0 {
			h.attr("hx-get", view.PollPath)
			h.attr("hx-trigger", "every "+strconv.Itoa(view.PollSeconds)+"s")
			h.raw(` hx-swap="outerHTML" hx-sync="this:replace"`)
		}
		h.raw(`><div class="stats">`)
		s := view.Stats
		writeStat(h, T(loc, "admin.stats.customers"), i64toa(s.Customers), "")
		writeStat(h, T(loc, "admin.stats.staff"), i64toa(s.Staff), "")
		writeStat(h, T(loc, "admin.stats.orders"), i64toa(s.Orders), "")
		writeStat(h, T(loc, "admin.stats.tables"), i64toa(s.Tables), "")
		h.raw(`</div>`)
		distribution := []StatusCount{
			{Status: restapi.OrderPending, Count: int(s.PendingOrders)},
			{Status: restapi.OrderConfirmed, Count: int(s.ConfirmedOrders)},
			{Status: restapi.OrderPreparing, Count: int(s.PreparingOrders)},
			{Status: restapi.OrderServed, Count: int(s.ServedOrders)},
			{Status: restapi.OrderCompleted, Count: int(s.CompletedOrders)},
		}
		writeDistribution(h, T(loc, "admin.stats.order_pipeline"), distribution, int(s.Orders))
		if view.Feedback != nil {
			writeFeedbackStats(h, *view.Feedback, loc)
		}
		h.raw(`</section>`)
	})
}

func writeFeedbackStats(h *htmlWriter, stats restapi.FeedbackStats, loc Localizer) {
	h.raw(`<div class="stats">`)
	writeStat(h, T(loc, "admin.feedback.total"), i64toa(stats.TotalFeedback), "")
	writeStat(h, T(loc, "admin.feedback.average"), strconv.FormatFloat(stats.AverageRating, 'f', 1, 64), "")
	writeStat(h, T(loc, "admin.feedback.pending"), i64toa(stats.PendingCount), "warning")
	writeStat(h, T(loc, "admin.feedback.resolved"), i64toa(stats.ResolvedCount), "success")
	h.raw(`</div>`)
}

// StaffFormView is the create-staff form state.
type StaffFormView struct {
	Name  string
	Email string
	Role  string
	Error string
}

// StaffRoles lists the roles that can be assigned to new staff.
var StaffRoles = []string{"CHEF", "WAITER"}

// AdminStaffPage renders the staff list and create form.
func AdminStaffPage(staff []restapi.User, form StaffFormView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, "admin.staff.create"))
		writeFormError(h, form.Error)
		h.raw(`<form method="post" class="grid-form"`)
		h.attr("action", routepath.AdminStaff)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "auth.field.name"), name: "name", value: form.Name, required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.email"), name: "email", kind: "email", value: form.Email, required: true})
		writeInput(h, inputSpec{label: T(loc, "auth.field.password"), name: "password", kind: "password", required: true})
		roles := make([]Option, 0, len(StaffRoles))
		for _, role := range StaffRoles {
			roles = append(roles, Option{Value: role, Label: T(loc, roleLabelKey(moduleRole(role)))})
		}
		writeSelect(h, T(loc, "profile.role"), "role", form.Role, roles, true)
		writeSubmit(h, T(loc, "admin.staff.submit"), "")
		h.raw(`</form></section><section class="card">`)
		if len(staff) == 0 {
			writeEmpty(h, T(loc, "admin.staff.empty"))
		} else {
			h.raw(`<table class="data"><thead><tr>`)
			writeHeaders(h, loc, "auth.field.name", "auth.field.email", "profile.role", "admin.column.actions")
			h.raw(`</tr></thead><tbody>`)
			for _, member := range staff {
				h.raw(`<tr>`)
				h.element("td", "", member.Name)
				h.element("td", "", member.Email)
				h.raw(`<td>`)
				h.element("span", "badge badge-role", Humanize(member.Role))
				h.raw(`</td><td>`)
				writeActionForm(h, routepath.AdminStaffDelete(member.ID.String()), T(loc, "admin.delete"), "btn btn-danger", T(loc, "admin.staff.delete_confirm", member.Name))
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}
		h.raw(`</section>`)
	})
}

func writeHeaders(h *htmlWriter, loc Localizer, keys ...string) {
	for _, key := range keys {
		h.element("th", "", T(loc, key))
	}
}

// AdminMenuView is the menu management state.
type AdminMenuView struct {
	Items      []restapi.MenuItem
	Categories []string
	Category   string
	Editing    *restapi.MenuItem
	Error      string
}

// AdminMenuPage renders the menu list with category tabs and the item form.
func AdminMenuPage(view AdminMenuView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card">`)
		action := routepath.AdminMenu
		item := restapi.MenuItem{}
		titleKey := "admin.menu.add"
		if view.Editing != nil {
			item = *view.Editing
			action = routepath.AdminMenuItem(item.ID.String())
			titleKey = "admin.menu.edit"
		}
		h.element("h2", "", T(loc, titleKey))
		writeFormError(h, view.Error)
		h.raw(`<form method="post" enctype="multipart/form-data" class="grid-form"`)
		h.attr("action", action)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "admin.menu.name"), name: "name", value: item.Name, required: true})
		writeInput(h, inputSpec{label: T(loc, "admin.menu.price"), name: "price", kind: "number", value: priceValue(item), min: "0", step: "0.01", required: true})
		h.raw(`<label class="field"><span>`)
		h.text(T(loc, "menu.category"))
		h.raw(`</span><input name="category" list="menu-categories" required`)
		h.attr("value", item.Category)
		h.raw(`><datalist id="menu-categories">`)
		for _, category := range view.Categories {
			h.raw(`<option`)
			h.attr("value", category)
			h.raw(`>`)
		}
		h.raw(`</datalist></label>`)
		writeInput(h, inputSpec{label: T(loc, "admin.menu.prep_time"), name: "preparationTime", kind: "number", value: prepValue(item), min: "0"})
		writeTextarea(h, T(loc, "admin.menu.description"), "description", item.Description, false)
		writeInput(h, inputSpec{label: T(loc, "admin.menu.image"), name: "image", kind: "file"})
		writeSubmit(h, T(loc, "profile.save"), "")
		if view.Editing != nil {
			h.raw(`<a class="btn btn-ghost"`)
			h.href(routepath.AdminMenu)
			h.raw(`>`)
			h.text(T(loc, "admin.cancel"))
			h.raw(`</a>`)
		}
		h.raw(`</form></section>`)

		h.raw(`<nav class="tabs">`)
		writeTab(h, routepath.AdminMenu, T(loc, "menu.category_all"), view.Category == "")
		for _, category := range view.Categories {
			writeTab(h, routepath.AdminMenu+"?category="+url.QueryEscape(category), Humanize(category), strings.EqualFold(category, view.Category))
		}
		h.raw(`</nav><section class="card">`)
		if len(view.Items) == 0 {
			writeEmpty(h, T(loc, "menu.empty"))
		} else {
			h.raw(`<table class="data"><thead><tr>`)
			writeHeaders(h, loc, "admin.menu.name", "menu.category", "admin.menu.price", "admin.menu.availability", "admin.column.actions")
			h.raw(`</tr></thead><tbody>`)
			for _, entry := range view.Items {
				h.raw(`<tr>`)
				h.element("td", "", entry.Name)
				h.element("td", "", Humanize(entry.Category))
				h.element("td", "", Money(entry.Price))
				h.raw(`<td>`)
				if entry.IsAvailable() {
					h.element("span", "badge badge-success", T(loc, "admin.menu.available"))
				} else {
					h.element("span", "badge badge-danger", T(loc, "admin.menu.unavailable"))
				}
				h.raw(`</td><td><a class="btn btn-ghost"`)
				h.href(routepath.AdminMenuEdit(entry.ID.String()))
				h.raw(`>`)
				h.text(T(loc, "admin.edit"))
				h.raw(`</a>`)
				writeActionForm(h, routepath.AdminMenuItemDelete(entry.ID.String()), T(loc, "admin.delete"), "btn btn-danger", T(loc, "admin.menu.delete_confirm", entry.Name))
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}
		h.raw(`</section>`)
	})
}

func writeTab(h *htmlWriter, href, label string, active bool) {
	class := "tab"
	if active {
		class += " active"
	}
	h.raw(`<a`)
	h.attr("class", class)
	h.href(href)
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

func priceValue(item restapi.MenuItem) string {
	if item.ID.IsZero() {
		return ""
	}
	return item.Price.StringFixed(2)
}

func prepValue(item restapi.MenuItem) string {
	if item.PreparationTime <= 0 {
		return ""
	}
	return itoa(item.PreparationTime)
}

// AdminCustomersPage renders the customer directory.
func AdminCustomersPage(customers []restapi.User, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card">`)
		if len(customers) == 0 {
			writeEmpty(h, T(loc, "admin.customers.empty"))
			h.raw(`</section>`)
			return
		}
		h.raw(`<table class="data"><thead><tr>`)
		writeHeaders(h, loc, "auth.field.name", "auth.field.email", "auth.field.phone", "admin.customers.joined")
		h.raw(`</tr></thead><tbody>`)
		for _, customer := range customers {
			h.raw(`<tr>`)
			h.element("td", "", customer.Name)
			h.element("td", "", customer.Email)
			h.element("td", "", orDash(customer.Phone))
			h.element("td", "", Date(customer.CreatedAt))
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// AdminTablesView is the table management state.
type AdminTablesView struct {
	Tables  []restapi.Table
	Editing *restapi.Table
	Error   string
}

// AdminTablesPage renders the tables list and the add or edit form.
func AdminTablesPage(view AdminTablesView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		table := restapi.Table{}
		action := routepath.AdminTables
		titleKey := "admin.tables.add"
		if view.Editing != nil {
			table = *view.Editing
			action = routepath.AdminTable(table.ID.String())
			titleKey = "admin.tables.edit"
		}
		h.raw(`<section class="card">`)
		h.element("h2", "", T(loc, titleKey))
		writeFormError(h, view.Error)
		h.raw(`<form method="post" class="grid-form"`)
		h.attr("action", action)
		h.raw(`>`)
		writeInput(h, inputSpec{label: T(loc, "admin.tables.number"), name: "tableNumber", value: table.TableNumber, required: true})
		capacity := ""
		if table.Capacity > 0 {
			capacity = itoa(table.Capacity)
		}
		writeInput(h, inputSpec{label: T(loc, "admin.tables.capacity"), name: "capacity", kind: "number", value: capacity, min: "1", required: true})
		writeInput(h, inputSpec{label: T(loc, "admin.tables.location"), name: "location", value: table.Location})
		writeTextarea(h, T(loc, "admin.tables.description"), "description", table.Description, false)
		writeSubmit(h, T(loc, "profile.save"), "")
		if view.Editing != nil {
			h.raw(`<a class="btn btn-ghost"`)
			h.href(routepath.AdminTables)
			h.raw(`>`)
			h.text(T(loc, "admin.cancel"))
			h.raw(`</a>`)
		}
		h.raw(`</form></section><section class="card">`)
		if len(view.Tables) == 0 {
			writeEmpty(h, T(loc, "admin.tables.empty"))
			h.raw(`</section>`)
			return
		}
		h.raw(`<table class="data"><thead><tr>`)
		writeHeaders(h, loc, "admin.tables.number", "admin.tables.capacity", "admin.tables.location", "admin.column.status", "admin.column.actions")
		h.raw(`</tr></thead><tbody>`)
		for _, entry := range view.Tables {
			id := entry.ID.String()
			h.raw(`<tr>`)
			h.element("td", "", entry.TableNumber)
			h.element("td", "", itoa(entry.Capacity))
			h.element("td", "", orDash(entry.Location))
			h.raw(`<td>`)
			statusBadge(h, entry.Status)
			h.raw(`</td><td><a class="btn btn-ghost"`)
			h.href(routepath.AdminTableEdit(id))
			h.raw(`>`)
			h.text(T(loc, "admin.edit"))
			h.raw(`</a>`)
			toggleKey := "admin.tables.set_maintenance"
			if strings.EqualFold(entry.Status, restapi.TableMaintenance) {
				toggleKey = "admin.tables.set_available"
			}
			writeActionForm(h, routepath.AdminTableMaintenance(id), T(loc, toggleKey), "btn", "")
			writeActionForm(h, routepath.AdminTableDelete(id), T(loc, "admin.delete"), "btn btn-danger", T(loc, "admin.tables.delete_confirm", entry.TableNumber))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
}

// FeedbackStatuses lists the admin review states.
var FeedbackStatuses = []string{"PENDING", "REVIEWED", "RESOLVED", "REJECTED"}

// AdminFeedbackView is the feedback analytics page state.
type AdminFeedbackView struct {
	Stats    *restapi.FeedbackStats
	Entries  []restapi.Feedback
	Status   string
	Category string
	// Error reports a failed list read while stats are still shown.
	Error string
}

// AdminFeedbackPage renders feedback statistics, filters and entries.
func AdminFeedbackPage(view AdminFeedbackView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		if view.Stats != nil {
			writeFeedbackStats(h, *view.Stats, loc)
			if len(view.Stats.CategoryCount) > 0 {
				counts := make([]StatusCount, 0, len(FeedbackCategories))
				for _, category := range FeedbackCategories {
					if n, ok := view.Stats.CategoryCount[category]; ok {
						counts = append(counts, StatusCount{Status: category, Count: int(n)})
					}
				}
				writeDistribution(h, T(loc, "admin.feedback.by_category"), counts, int(view.Stats.TotalFeedback))
			}
		}
		h.raw(`<form method="get" class="filters"`)
		h.attr("action", routepath.AdminFeedback)
		h.raw(`>`)
		statuses := []Option{{Value: "", Label: T(loc, "admin.feedback.status_all")}}
		for _, status := range FeedbackStatuses {
			statuses = append(statuses, Option{Value: status, Label: Humanize(status)})
		}
		writeSelect(h, T(loc, "admin.column.status"), "status", view.Status, statuses, false)
		categories := []Option{{Value: "", Label: T(loc, "menu.category_all")}}
		for _, category := range FeedbackCategories {
			categories = append(categories, Option{Value: category, Label: Humanize(category)})
		}
		writeSelect(h, T(loc, "feedback.category"), "category", view.Category, categories, false)
		writeSubmit(h, T(loc, "menu.filter"), "btn")
		h.raw(`</form>`)
		writeFormError(h, view.Error)
		writeFeedbackList(h, view.Entries, true, loc)
	})
}
