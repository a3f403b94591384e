package admin

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

const (
	// maxImageBytes caps menu image uploads.
	maxImageBytes = 5 << 20
	maxMenuForm   = maxImageBytes + 1<<20
)

type pollSeconds struct {
	dashboard int
	orders    int
}

type handlers struct {
	modulehandler.Base
	service service
	poll    pollSeconds
}

func newHandlers(s service, base modulehandler.Base, poll pollSeconds) handlers {
	return handlers{Base: base, service: s, poll: poll}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, titleKey string, status int, build func(webtemplates.Localizer) templ.Component) {
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, titleKey)
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title}, webtemplates.AppMainLayoutOptions{MainClass: "admin"}, build(loc))
}

// writeFormFailure handles a rejected form: sign-in for expired sessions,
// the error page for server failures and an inline re-render otherwise.
func (h handlers) writeFormFailure(w http.ResponseWriter, r *http.Request, err error, render func(message string, status int)) {
	if apperrors.IsKind(err, apperrors.KindUnauthorized) {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError && !apperrors.IsKind(err, apperrors.KindUnavailable) {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	render(webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.AdminDashboard)
}

func (h handlers) dashboardView(r *http.Request) (webtemplates.AdminDashboardView, error) {
	ctx, _ := h.RequestContextAndUserID(r)
	stats, feedback, err := h.service.dashboard(ctx)
	if err != nil {
		return webtemplates.AdminDashboardView{}, err
	}
	return webtemplates.AdminDashboardView{
		Stats:       stats,
		Feedback:    feedback,
		PollPath:    routepath.AdminDashboardStats,
		PollSeconds: h.poll.dashboard,
	}, nil
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboardView(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.admin.dashboard", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.AdminDashboardStats(view, loc)
	})
}

func (h handlers) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	view, err := h.dashboardView(r)
	if err != nil {
		http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
		return
	}
	h.WriteFragment(w, r, webtemplates.AdminDashboardStats(view, loc))
}

func (h handlers) handleStaff(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	staff, err := h.service.staff(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderStaff(w, r, http.StatusOK, staff, webtemplates.StaffFormView{})
}

func (h handlers) renderStaff(w http.ResponseWriter, r *http.Request, status int, staff []restapi.User, form webtemplates.StaffFormView) {
	h.writePage(w, r, "nav.admin.staff", status, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.AdminStaffPage(staff, form, loc)
	})
}

func (h handlers) handleStaffCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_staff_form", "failed to parse staff form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	form := webtemplates.StaffFormView{
		Name:  httpx.FormValue(r, "name"),
		Email: httpx.FormValue(r, "email"),
		Role:  strings.ToUpper(httpx.FormValue(r, "role")),
	}
	input, err := parseStaff(form.Name, form.Email, r.PostFormValue("password"), form.Role)
	if err == nil {
		err = h.service.createStaff(ctx, input)
	}
	if err != nil {
		h.writeFormFailure(w, r, err, func(message string, status int) {
			staff, _ := h.service.staff(ctx)
			form.Error = message
			h.renderStaff(w, r, status, staff, form)
		})
		return
	}
	h.RedirectWithNotice(w, r, routepath.AdminStaff, flashnotice.NoticeSuccess("admin.staff.notice.created"))
}

func (h handlers) handleStaffDelete(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	if err := h.service.deleteStaff(ctx, r.PathValue("staffID")); err != nil {
		h.RedirectWithError(w, r, routepath.AdminStaff, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.AdminStaff, flashnotice.NoticeSuccess("admin.staff.notice.deleted"))
}

func (h handlers) handleMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.renderMenu(w, r, http.StatusOK, query.Get("category"), query.Get(routepath.EditQueryKey), "")
}

func (h handlers) renderMenu(w http.ResponseWriter, r *http.Request, status int, category, editID, message string) {
	ctx, _ := h.RequestContextAndUserID(r)
	page, err := h.service.menuPage(ctx, category, editID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if editID != "" && page.Editing == nil && message == "" {
		h.WriteNotFound(w, r)
		return
	}
	view := webtemplates.AdminMenuView{
		Items:      page.Items,
		Categories: page.Categories,
		Category:   strings.ToUpper(strings.TrimSpace(category)),
		Editing:    page.Editing,
		Error:      message,
	}
	h.writePage(w, r, "nav.admin.menu", status, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.AdminMenuPage(view, loc)
	})
}

// handleMenuSave adds an item on the collection route and updates one on the
// item route.
func (h handlers) handleMenuSave(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMenuForm)
	if err := r.ParseMultipartForm(maxMenuForm); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_menu_form", "failed to parse menu form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	itemID := strings.TrimSpace(r.PathValue("itemID"))
	input, err := parseMenuItem(
		r.FormValue("name"),
		r.FormValue("description"),
		r.FormValue("price"),
		r.FormValue("category"),
		r.FormValue("preparationTime"),
	)
	if err == nil {
		input.Image, err = readImage(r)
	}
	if err == nil {
		err = h.service.saveMenuItem(ctx, itemID, input)
	}
	if err != nil {
		h.writeFormFailure(w, r, err, func(message string, status int) {
			h.renderMenu(w, r, status, "", itemID, message)
		})
		return
	}
	notice := "admin.menu.notice.added"
	if itemID != "" {
		notice = "admin.menu.notice.updated"
	}
	h.RedirectWithNotice(w, r, routepath.AdminMenu, flashnotice.NoticeSuccess(notice))
}

// readImage returns the uploaded image, or nil when none was sent.
func readImage(r *http.Request) (*restapi.FormFile, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_image_invalid", "Image upload failed")
	}
	defer file.Close()
	if header.Size == 0 {
		return nil, nil
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_image_invalid", "Image upload failed")
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil || len(data) > maxImageBytes {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_image_invalid", "Image upload failed")
	}
	return &restapi.FormFile{Field: "image", Filename: header.Filename, ContentType: contentType, Data: data}, nil
}

func (h handlers) handleMenuDelete(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	if err := h.service.deleteMenuItem(ctx, r.PathValue("itemID")); err != nil {
		h.RedirectWithError(w, r, routepath.AdminMenu, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.AdminMenu, flashnotice.NoticeSuccess("admin.menu.notice.deleted"))
}

func (h handlers) ordersView(r *http.Request) (webtemplates.OrderBoardView, error) {
	ctx, _ := h.RequestContextAndUserID(r)
	orders, err := h.service.orders(ctx)
	if err != nil {
		return webtemplates.OrderBoardView{}, err
	}
	return webtemplates.OrderBoardView{
		Orders:      orders,
		BasePath:    routepath.AdminOrders,
		PollPath:    routepath.AdminOrdersBoard,
		PollSeconds: h.poll.orders,
	}, nil
}

func (h handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	view, err := h.ordersView(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.admin.orders", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.OrderBoardPage(view, loc)
	})
}

func (h handlers) handleOrdersBoard(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	view, err := h.ordersView(r)
	if err != nil {
		http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
		return
	}
	h.WriteFragment(w, r, webtemplates.OrderBoard(view, loc))
}

func (h handlers) handleCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	customers, err := h.service.customers(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.admin.customers", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.AdminCustomersPage(customers, loc)
	})
}

func (h handlers) handleTables(w http.ResponseWriter, r *http.Request) {
	h.renderTables(w, r, http.StatusOK, r.URL.Query().Get(routepath.EditQueryKey), "")
}

func (h handlers) renderTables(w http.ResponseWriter, r *http.Request, status int, editID, message string) {
	ctx, _ := h.RequestContextAndUserID(r)
	tables, err := h.service.tables(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.AdminTablesView{Tables: tables, Error: message}
	if editID = strings.TrimSpace(editID); editID != "" {
		for i := range tables {
			if tables[i].ID.String() == editID {
				view.Editing = &tables[i]
				break
			}
		}
		if view.Editing == nil && message == "" {
			h.WriteNotFound(w, r)
			return
		}
	}
	h.writePage(w, r, "nav.admin.tables", status, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.AdminTablesPage(view, loc)
	})
}

// handleTableSave adds a table on the collection route and updates one on the
// table route.
func (h handlers) handleTableSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_table_form", "failed to parse table form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	tableID := strings.TrimSpace(r.PathValue("tableID"))
	input, err := parseTable(
		httpx.FormValue(r, "tableNumber"),
		httpx.FormValue(r, "capacity"),
		httpx.FormValue(r, "location"),
		httpx.FormValue(r, "description"),
	)
	if err == nil {
		if tableID == "" {
			err = h.service.addTable(ctx, input)
		} else {
			err = h.service.updateTable(ctx, tableID, input)
		}
	}
	if err != nil {
		h.writeFormFailure(w, r, err, func(message string, status int) {
			h.renderTables(w, r, status, tableID, message)
		})
		return
	}
	notice := "admin.tables.notice.added"
	if tableID != "" {
		notice = "admin.tables.notice.updated"
	}
	h.RedirectWithNotice(w, r, routepath.AdminTables, flashnotice.NoticeSuccess(notice))
}

func (h handlers) handleTableDelete(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	if err := h.service.deleteTable(ctx, r.PathValue("tableID")); err != nil {
		h.RedirectWithError(w, r, routepath.AdminTables, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.AdminTables, flashnotice.NoticeSuccess("admin.tables.notice.deleted"))
}

func (h handlers) handleTableMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	status, err := h.service.toggleMaintenance(ctx, r.PathValue("tableID"))
	if err != nil {
		h.RedirectWithError(w, r, routepath.AdminTables, err)
		return
	}
	notice := "admin.tables.notice.available"
	if status == restapi.TableMaintenance {
		notice = "admin.tables.notice.maintenance"
	}
	h.RedirectWithNotice(w, r, routepath.AdminTables, flashnotice.NoticeSuccess(notice))
}

func (h handlers) handleFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	query := r.URL.Query()
	filter := parseFeedbackFilter(query.Get("status"), query.Get("category"))
	page, err := h.service.feedback(ctx, filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.admin.feedback", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		view := webtemplates.AdminFeedbackView{
			Stats:    &page.Stats,
			Entries:  page.Entries,
			Status:   filter.Status,
			Category: filter.Category,
		}
		if page.ListErr != nil {
			view.Error = webi18n.LocalizeError(loc, page.ListErr)
		}
		return webtemplates.AdminFeedbackPage(view, loc)
	})
}
