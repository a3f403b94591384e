package waiter

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service     service
	pollSeconds int
}

func newHandlers(s service, base modulehandler.Base, pollSeconds int) handlers {
	return handlers{Base: base, service: s, pollSeconds: pollSeconds}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, titleKey string, build func(webtemplates.Localizer) templ.Component) {
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, titleKey)
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title}, webtemplates.AppMainLayoutOptions{MainClass: "floor"}, build(loc))
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	view, err := h.service.dashboard(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.waiter.dashboard", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.WaiterDashboardPage(view, loc)
	})
}

func (h handlers) boardView(r *http.Request, filter, table string) (webtemplates.OrderBoardView, error) {
	ctx, _ := h.RequestContextAndUserID(r)
	data, err := h.service.board(ctx, filter, table)
	if err != nil {
		return webtemplates.OrderBoardView{}, err
	}
	return webtemplates.OrderBoardView{
		Orders:       data.Orders,
		Filter:       filter,
		Filters:      boardFilters,
		BasePath:     routepath.WaiterOrders,
		PollPath:     routepath.WaiterOrdersBoard,
		PollSeconds:  h.pollSeconds,
		Tables:       &data.Tables,
		Table:        table,
		TableOptions: data.TableOptions,
	}, nil
}

func boardQuery(r *http.Request) (string, string) {
	query := r.URL.Query()
	return parseFilter(query.Get("filter")), strings.TrimSpace(query.Get("table"))
}

func (h handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	filter, table := boardQuery(r)
	view, err := h.boardView(r, filter, table)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.waiter.orders", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.OrderBoardPage(view, loc)
	})
}

func (h handlers) handleBoard(w http.ResponseWriter, r *http.Request) {
	filter, table := boardQuery(r)
	h.writeBoard(w, r, filter, table)
}

func (h handlers) writeBoard(w http.ResponseWriter, r *http.Request, filter, table string) {
	loc, _ := h.PageLocalizer(w, r)
	view, err := h.boardView(r, filter, table)
	if err != nil {
		http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
		return
	}
	h.WriteFragment(w, r, webtemplates.OrderBoard(view, loc))
}

func ordersLocation(filter, table string) string {
	query := url.Values{"filter": {filter}}
	if table != "" {
		query.Set("table", table)
	}
	return routepath.WaiterOrders + "?" + query.Encode()
}

func (h handlers) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_status_form", "failed to parse status form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	filter := parseFilter(httpx.FormValue(r, "filter"))
	table := httpx.FormValue(r, "table")
	err := h.service.updateStatus(ctx, r.PathValue("orderID"), httpx.FormValue(r, "status"))
	if httpx.IsHTMXRequest(r) {
		if err != nil {
			loc, _ := h.PageLocalizer(w, r)
			http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
			return
		}
		h.writeBoard(w, r, filter, table)
		return
	}
	if err != nil {
		h.RedirectWithError(w, r, ordersLocation(filter, table), err)
		return
	}
	h.RedirectWithNotice(w, r, ordersLocation(filter, table), flashnotice.NoticeSuccess("board.notice.status_updated"))
}

// handleProfile shows the session profile; waiters edit only their password.
func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	viewer := h.ResolveRequestViewer(r)
	view := webtemplates.ProfileView{
		Name:           viewer.DisplayName,
		Email:          viewer.Email,
		Role:           string(viewer.Role),
		PasswordAction: routepath.WaiterPassword,
	}
	h.writePage(w, r, "nav.waiter.profile", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.ProfilePage(view, loc)
	})
}

func (h handlers) handlePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_password_form", "failed to parse password form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	// Passwords are not trimmed.
	err := h.service.changePassword(ctx, r.PostForm.Get("currentPassword"), r.PostForm.Get("newPassword"), r.PostForm.Get("confirmPassword"))
	if err != nil {
		h.RedirectWithError(w, r, routepath.WaiterProfile, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.WaiterProfile, flashnotice.NoticeSuccess("profile.notice.password_changed"))
}
