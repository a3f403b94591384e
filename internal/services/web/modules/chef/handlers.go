package chef

import (
	"net/http"
	"net/url"

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
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title}, webtemplates.AppMainLayoutOptions{MainClass: "kitchen"}, build(loc))
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	view, err := h.service.dashboard(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.chef.dashboard", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.ChefDashboardPage(view, loc)
	})
}

func (h handlers) boardView(r *http.Request, filter string) (webtemplates.OrderBoardView, error) {
	ctx, _ := h.RequestContextAndUserID(r)
	orders, err := h.service.board(ctx, filter)
	if err != nil {
		return webtemplates.OrderBoardView{}, err
	}
	return webtemplates.OrderBoardView{
		Orders:      orders,
		Filter:      filter,
		Filters:     boardFilters,
		BasePath:    routepath.ChefOrders,
		PollPath:    routepath.ChefOrdersBoard,
		PollSeconds: h.pollSeconds,
	}, nil
}

func (h handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	view, err := h.boardView(r, parseFilter(r.URL.Query().Get("filter")))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.chef.orders", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.OrderBoardPage(view, loc)
	})
}

func (h handlers) handleBoard(w http.ResponseWriter, r *http.Request) {
	h.writeBoard(w, r, parseFilter(r.URL.Query().Get("filter")))
}

func (h handlers) writeBoard(w http.ResponseWriter, r *http.Request, filter string) {
	loc, _ := h.PageLocalizer(w, r)
	view, err := h.boardView(r, filter)
	if err != nil {
		http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
		return
	}
	h.WriteFragment(w, r, webtemplates.OrderBoard(view, loc))
}

func (h handlers) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_status_form", "failed to parse status form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	filter := parseFilter(httpx.FormValue(r, "filter"))
	err := h.service.updateStatus(ctx, r.PathValue("orderID"), httpx.FormValue(r, "status"))
	back := routepath.ChefOrders + "?filter=" + url.QueryEscape(filter)
	if httpx.IsHTMXRequest(r) {
		if err != nil {
			loc, _ := h.PageLocalizer(w, r)
			http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
			return
		}
		h.writeBoard(w, r, filter)
		return
	}
	if err != nil {
		h.RedirectWithError(w, r, back, err)
		return
	}
	h.RedirectWithNotice(w, r, back, flashnotice.NoticeSuccess("board.notice.status_updated"))
}

func (h handlers) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	viewer := h.ResolveRequestViewer(r)
	fallback := restapi.User{ID: restapi.ID(viewer.UserID), Name: viewer.DisplayName, Email: viewer.Email, Role: string(viewer.Role)}
	user, stale, err := h.service.profile(ctx, userID, fallback)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	role := user.Role
	if role == "" {
		role = string(viewer.Role)
	}
	view := webtemplates.ProfileView{
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   role,
		Action: routepath.ChefProfile,
		Stale:  stale,
	}
	h.writePage(w, r, "nav.chef.profile", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.ProfilePage(view, loc)
	})
}

func (h handlers) handleProfilePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_profile_form", "failed to parse profile form"))
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	input := ProfileInput{
		Name:  httpx.FormValue(r, "name"),
		Email: httpx.FormValue(r, "email"),
		Phone: httpx.FormValue(r, "phone"),
	}
	if err := h.service.saveProfile(ctx, userID, input); err != nil {
		h.RedirectWithError(w, r, routepath.ChefProfile, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.ChefProfile, flashnotice.NoticeSuccess("profile.notice.saved"))
}
