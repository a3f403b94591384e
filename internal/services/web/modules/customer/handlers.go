package customer

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/cart"
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
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// writePage renders a customer page titled by its navigation label.
func (h handlers) writePage(w http.ResponseWriter, r *http.Request, titleKey string, status int, build func(webtemplates.Localizer) templ.Component) {
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, titleKey)
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title}, webtemplates.AppMainLayoutOptions{}, build(loc))
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	data, err := h.service.dashboard(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.CustomerDashboardView{
		Name:          h.ResolveRequestViewer(r).DisplayName,
		ActiveBooking: data.Booking,
		RecentOrders:  data.Recent,
		Stats:         data.Stats,
	}
	h.writePage(w, r, "nav.customer.dashboard", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.CustomerDashboardPage(view, loc)
	})
}

func (h handlers) handleBookTableGet(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	query := r.URL.Query()
	view := webtemplates.BookTableView{
		Date:    strings.TrimSpace(query.Get("date")),
		MinDate: h.service.now().Format("2006-01-02"),
		Slot:    strings.ToUpper(strings.TrimSpace(query.Get("slot"))),
		Guests:  normalizeGuests(atoi(query.Get("guests"))),
	}
	view.ActiveBooking = h.service.activeBooking(ctx, userID)
	status := http.StatusOK
	if query.Has("date") || query.Has("slot") {
		tables, err := h.service.searchTables(ctx, TableQuery{Date: view.Date, Slot: view.Slot, Guests: view.Guests})
		if err != nil {
			if apperrors.HTTPStatus(err) >= http.StatusInternalServerError && !apperrors.IsKind(err, apperrors.KindUnavailable) {
				h.WriteError(w, r, err)
				return
			}
			loc, _ := h.PageLocalizer(w, r)
			view.Error = webi18n.LocalizeError(loc, err)
			status = apperrors.HTTPStatus(err)
		} else {
			view.Searched = true
			view.Tables = tables
		}
	}
	h.writePage(w, r, "nav.customer.book_table", status, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.BookTablePage(view, loc)
	})
}

func (h handlers) handleBookTablePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_booking_form", "failed to parse booking form"))
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	req := BookingRequest{
		UserID:          userID,
		TableID:         httpx.FormValue(r, "tableId"),
		Date:            httpx.FormValue(r, "date"),
		Slot:            httpx.FormValue(r, "slot"),
		Guests:          atoi(r.FormValue("guests")),
		SpecialRequests: httpx.FormValue(r, "specialRequests"),
	}
	if err := h.service.bookTable(ctx, req); err != nil {
		h.RedirectWithError(w, r, bookTableSearch(req), err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.Customer, flashnotice.NoticeSuccess("booking.notice.booked"))
}

func bookTableSearch(req BookingRequest) string {
	if req.Date == "" && req.Slot == "" {
		return routepath.CustomerBookTable
	}
	values := url.Values{}
	values.Set("date", req.Date)
	values.Set("slot", req.Slot)
	values.Set("guests", strconv.Itoa(normalizeGuests(req.Guests)))
	return routepath.CustomerBookTable + "?" + values.Encode()
}

func (h handlers) handleBookingCancel(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	if err := h.service.cancelBooking(ctx, r.PathValue("bookingID")); err != nil {
		h.RedirectWithError(w, r, routepath.Customer, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.Customer, flashnotice.NoticeSuccess("booking.notice.cancelled"))
}

func (h handlers) handleMenu(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	filter := menuFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
	}
	page, err := h.service.menuPage(ctx, userID, h.RequestSessionID(r), filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.MenuView{
		Items:        page.Items,
		Categories:   page.Categories,
		Category:     strings.ToUpper(filter.Category),
		Query:        filter.Query,
		Cart:         cartView(page.Cart),
		RecentOrders: page.Recent,
	}
	h.writePage(w, r, "nav.customer.menu", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.MenuPage(view, loc)
	})
}

func (h handlers) handleCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.cart(r.Context(), h.RequestSessionID(r))
	h.writeCart(w, r, c, err)
}

func (h handlers) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeCart(w, r, nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_cart_form", "failed to parse cart form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	qty, ok := parseQuantity(r.FormValue("quantity"))
	if !ok {
		h.writeCart(w, r, nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.cart_quantity_too_large", "Quantity is too large"))
		return
	}
	c, err := h.service.addToCart(ctx, h.RequestSessionID(r), httpx.FormValue(r, "menuItemId"), qty)
	h.writeCart(w, r, c, err)
}

func (h handlers) handleCartItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.updateCartLine(r.Context(), h.RequestSessionID(r), strings.TrimSpace(r.PathValue("menuItemID")), r.PathValue("action"))
	h.writeCart(w, r, c, err)
}

func (h handlers) handleCartClear(w http.ResponseWriter, r *http.Request) {
	err := h.service.clearCart(r.Context(), h.RequestSessionID(r))
	h.writeCart(w, r, cart.New(), err)
}

// writeCart answers a cart mutation: HTMX requests get the cart fragment or a
// plain-text error, full page posts go back to the menu.
func (h handlers) writeCart(w http.ResponseWriter, r *http.Request, c *cart.Cart, err error) {
	if !httpx.IsHTMXRequest(r) {
		if err != nil {
			h.RedirectWithError(w, r, routepath.CustomerMenu, err)
			return
		}
		httpx.WriteRedirect(w, r, routepath.CustomerMenu)
		return
	}
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		http.Error(w, webi18n.LocalizeError(loc, err), apperrors.HTTPStatus(err))
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, webtemplates.CartPanel(cartView(c), loc))
}

func (h handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_checkout_form", "failed to parse checkout form"))
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	order, err := h.service.checkout(ctx, userID, h.RequestSessionID(r), r.FormValue("specialInstructions"))
	if err != nil {
		h.RedirectWithError(w, r, routepath.CustomerMenu, err)
		return
	}
	if order.ID.IsZero() {
		h.RedirectWithNotice(w, r, routepath.CustomerOrders, flashnotice.NoticeSuccess("orders.notice.placed"))
		return
	}
	h.RedirectWithNotice(w, r, routepath.Payment(order.ID.String()), flashnotice.NoticeSuccess("orders.notice.placed"))
}

func (h handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	orders, err := h.service.orders(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.customer.orders", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.CustomerOrdersPage(orders, loc)
	})
}

func (h handlers) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	viewer := h.ResolveRequestViewer(r)
	fallback := restapi.User{ID: restapi.ID(viewer.UserID), Name: viewer.DisplayName, Email: viewer.Email, Role: string(viewer.Role)}
	data, err := h.service.profile(ctx, userID, fallback)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	role := data.User.Role
	if role == "" {
		role = string(viewer.Role)
	}
	view := webtemplates.ProfileView{
		Name:   data.User.Name,
		Email:  data.User.Email,
		Phone:  data.User.Phone,
		Role:   role,
		Action: routepath.CustomerProfile,
		Stale:  data.Stale,
		Stats:  data.Stats,
	}
	h.writePage(w, r, "nav.customer.profile", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
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
		h.RedirectWithError(w, r, routepath.CustomerProfile, err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.CustomerProfile, flashnotice.NoticeSuccess("profile.notice.saved"))
}

func (h handlers) handleFeedbackGet(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	view := webtemplates.FeedbackFormView{
		Orders:  h.service.feedbackOrders(ctx, userID),
		OrderID: strings.TrimSpace(r.URL.Query().Get("orderId")),
	}
	h.renderFeedback(w, r, http.StatusOK, view)
}

func (h handlers) handleFeedbackPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_feedback_form", "failed to parse feedback form"))
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	view := webtemplates.FeedbackFormView{
		OrderID:  httpx.FormValue(r, "orderId"),
		Rating:   atoi(r.FormValue("rating")),
		Category: strings.ToUpper(httpx.FormValue(r, "category")),
		Comment:  httpx.FormValue(r, "comment"),
	}
	input, err := parseFeedback(view.OrderID, r.FormValue("rating"), view.Category, view.Comment)
	if err == nil {
		err = h.service.submitFeedback(ctx, input)
	}
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindUnauthorized) {
			httpx.WriteRedirect(w, r, routepath.Login)
			return
		}
		if apperrors.HTTPStatus(err) >= http.StatusInternalServerError && !apperrors.IsKind(err, apperrors.KindUnavailable) {
			h.WriteError(w, r, err)
			return
		}
		loc, _ := h.PageLocalizer(w, r)
		view.Error = webi18n.LocalizeError(loc, err)
		view.Orders = h.service.feedbackOrders(ctx, userID)
		h.renderFeedback(w, r, apperrors.HTTPStatus(err), view)
		return
	}
	h.RedirectWithNotice(w, r, routepath.CustomerFeedbackHistory, flashnotice.NoticeSuccess("feedback.notice.submitted"))
}

func (h handlers) renderFeedback(w http.ResponseWriter, r *http.Request, status int, view webtemplates.FeedbackFormView) {
	h.writePage(w, r, "nav.customer.feedback", status, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.FeedbackFormPage(view, loc)
	})
}

func (h handlers) handleFeedbackHistory(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndUserID(r)
	entries, err := h.service.feedbackHistory(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePage(w, r, "nav.customer.feedback_history", http.StatusOK, func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.FeedbackHistoryPage(entries, loc)
	})
}

// parseQuantity reads an optional form quantity. Blank or non-numeric input
// means one; a number too large for int is rejected.
func parseQuantity(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, true
	}
	value, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if err != nil {
		return 1, true
	}
	return value, true
}

func atoi(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
