package chef

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// Board filters.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterPreparing = "preparing"
	FilterReady     = "ready"
)

var boardFilters = []string{FilterAll, FilterPending, FilterPreparing, FilterReady}

// Gateway talks to the kitchen endpoints of the backend.
type Gateway interface {
	Orders(ctx context.Context) ([]restapi.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Profile(ctx context.Context, userID string) (restapi.User, error)
	SaveProfile(ctx context.Context, userID string, input ProfileInput) (restapi.User, error)
}

// ProfileInput is the editable part of a chef profile.
type ProfileInput struct {
	Name  string
	Email string
	Phone string
}

type profileSyncer interface {
	UpdateProfile(ctx context.Context, name, email string) error
}

type service struct {
	gateway Gateway
	now     func() time.Time
	logger  *log.Logger
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, now: time.Now, logger: log.Default()}
}

func (s service) dashboard(ctx context.Context) (webtemplates.ChefDashboardView, error) {
	orders, err := s.gateway.Orders(ctx)
	if err != nil {
		return webtemplates.ChefDashboardView{}, err
	}
	return kitchenStats(orders, s.now()), nil
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// kitchenStats summarizes the kitchen queue. Revenue counts orders completed
// today only.
func kitchenStats(orders []restapi.Order, now time.Time) webtemplates.ChefDashboardView {
	view := webtemplates.ChefDashboardView{Total: len(orders), RevenueToday: decimal.Zero}
	counts := map[string]int{}
	for _, order := range orders {
		status := order.NormalizedStatus()
		counts[status]++
		today := sameDay(order.CreatedAt.Time, now)
		if today {
			view.Today++
		}
		switch status {
		case restapi.OrderPending, restapi.OrderPreparing:
			view.Active++
		case restapi.OrderReady:
			view.Ready++
		case restapi.OrderCompleted:
			if today {
				view.CompletedToday++
				view.RevenueToday = view.RevenueToday.Add(order.TotalAmount)
			}
		}
	}
	for _, status := range []string{restapi.OrderPending, restapi.OrderPreparing, restapi.OrderReady, restapi.OrderCompleted} {
		if counts[status] > 0 {
			view.Distribution = append(view.Distribution, webtemplates.StatusCount{Status: status, Count: counts[status]})
		}
	}
	return view
}

func parseFilter(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, filter := range boardFilters {
		if raw == filter {
			return filter
		}
	}
	return FilterAll
}

func matchesFilter(order restapi.Order, filter string) bool {
	switch filter {
	case FilterPending:
		return order.NormalizedStatus() == restapi.OrderPending
	case FilterPreparing:
		return order.NormalizedStatus() == restapi.OrderPreparing
	case FilterReady:
		return order.NormalizedStatus() == restapi.OrderReady
	default:
		return true
	}
}

// nextAction returns the kitchen step offered for an order's current status.
func nextAction(order restapi.Order) *webtemplates.OrderAction {
	var labelKey, status string
	switch order.NormalizedStatus() {
	case restapi.OrderPending, restapi.OrderConfirmed:
		labelKey, status = "chef.action.start_preparing", restapi.OrderPreparing
	case restapi.OrderPreparing:
		labelKey, status = "chef.action.mark_ready", restapi.OrderReady
	case restapi.OrderReady:
		labelKey, status = "chef.action.mark_completed", restapi.OrderCompleted
	default:
		return nil
	}
	return &webtemplates.OrderAction{LabelKey: labelKey, Status: status, Path: routepath.ChefOrderStatusUpdate(order.ID.String())}
}

func (s service) board(ctx context.Context, filter string) ([]webtemplates.BoardOrder, error) {
	orders, err := s.gateway.Orders(ctx)
	if err != nil {
		return nil, err
	}
	board := make([]webtemplates.BoardOrder, 0, len(orders))
	for _, order := range orders {
		if !matchesFilter(order, filter) {
			continue
		}
		board = append(board, webtemplates.BoardOrder{Order: order, Action: nextAction(order)})
	}
	return board, nil
}

// updateStatus forwards a kitchen status change. The backend owns the
// transition rules.
func (s service) updateStatus(ctx context.Context, orderID, status string) error {
	orderID = strings.TrimSpace(orderID)
	status = strings.ToUpper(strings.TrimSpace(status))
	if orderID == "" {
		return apperrors.EK(apperrors.KindNotFound, "error.web.message.order_not_found", "Order not found")
	}
	switch status {
	case restapi.OrderPreparing, restapi.OrderReady, restapi.OrderCompleted:
	default:
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.invalid_order_status", "Unsupported order status")
	}
	if err := s.gateway.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.logger.Printf("kitchen order status updated order_id=%s status=%s", orderID, status)
	return nil
}

func (s service) profile(ctx context.Context, userID string, fallback restapi.User) (restapi.User, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return restapi.User{}, false, apperrors.E(apperrors.KindUnauthorized, "user id is required")
	}
	user, err := s.gateway.Profile(ctx, userID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindUnauthorized) {
			return restapi.User{}, false, err
		}
		s.logger.Printf("chef profile read failed user_id=%s err=%v", userID, err)
		return fallback, true, nil
	}
	return user, false, nil
}

func (s service) saveProfile(ctx context.Context, userID string, input ProfileInput) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.E(apperrors.KindUnauthorized, "user id is required")
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" || input.Email == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.profile_fields_required", "Name and email are required")
	}
	if _, err := s.gateway.SaveProfile(ctx, userID, input); err != nil {
		return err
	}
	if creds, ok := restapi.CredentialsFrom(ctx); ok {
		if syncer, ok := creds.(profileSyncer); ok {
			if err := syncer.UpdateProfile(ctx, input.Name, input.Email); err != nil {
				s.logger.Printf("chef session profile sync failed user_id=%s err=%v", userID, err)
			}
		}
	}
	return nil
}
