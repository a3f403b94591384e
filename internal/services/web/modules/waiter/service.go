package waiter

import (
	"context"
	"log"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// Board filters.
const (
	FilterReady  = "ready"
	FilterServed = "served"
	FilterAll    = "all"
)

var boardFilters = []string{FilterReady, FilterServed, FilterAll}

// Gateway talks to the floor endpoints of the backend.
type Gateway interface {
	Orders(ctx context.Context) ([]restapi.Order, error)
	Tables(ctx context.Context) ([]restapi.Table, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// PasswordChanger changes the signed-in user's password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, current, password, confirm string) error
}

type service struct {
	gateway   Gateway
	passwords PasswordChanger
	logger    *log.Logger
}

func newService(gateway Gateway, passwords PasswordChanger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, passwords: passwords, logger: log.Default()}
}

func tableCounts(tables []restapi.Table) webtemplates.TableCounts {
	counts := webtemplates.TableCounts{Total: len(tables)}
	for _, table := range tables {
		switch strings.ToUpper(strings.TrimSpace(table.Status)) {
		case restapi.TableOccupied:
			counts.Occupied++
		case restapi.TableAvailable:
			counts.Available++
		}
	}
	return counts
}

// floor loads orders and tables together. Tables only feed counters, so a
// table failure leaves them empty.
func (s service) floor(ctx context.Context) ([]restapi.Order, webtemplates.TableCounts, error) {
	var (
		orders []restapi.Order
		tables []restapi.Table
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.gateway.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tables, err = s.gateway.Tables(gctx)
		if err != nil {
			s.logger.Printf("waiter tables unavailable err=%v", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, webtemplates.TableCounts{}, err
	}
	return orders, tableCounts(tables), nil
}

func (s service) dashboard(ctx context.Context) (webtemplates.WaiterDashboardView, error) {
	orders, tables, err := s.floor(ctx)
	if err != nil {
		return webtemplates.WaiterDashboardView{}, err
	}
	view := webtemplates.WaiterDashboardView{Tables: tables}
	for _, order := range orders {
		switch order.NormalizedStatus() {
		case restapi.OrderReady:
			view.Ready++
			view.ReadyOrders = append(view.ReadyOrders, order)
		case restapi.OrderServed:
			view.Served++
		}
		switch order.NormalizedStatus() {
		case restapi.OrderCompleted, restapi.OrderCancelled:
		default:
			view.Active++
		}
	}
	return view, nil
}

func parseFilter(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if slices.Contains(boardFilters, raw) {
		return raw
	}
	return FilterReady
}

func matchesFilter(order restapi.Order, filter, table string) bool {
	if table != "" && order.TableNumber() != table {
		return false
	}
	switch filter {
	case FilterReady:
		return order.NormalizedStatus() == restapi.OrderReady
	case FilterServed:
		return order.NormalizedStatus() == restapi.OrderServed
	default:
		return true
	}
}

// nextAction returns the floor step offered for an order's current status.
func nextAction(order restapi.Order) *webtemplates.OrderAction {
	var labelKey, status string
	switch order.NormalizedStatus() {
	case restapi.OrderReady:
		labelKey, status = "waiter.action.mark_served", restapi.OrderServed
	case restapi.OrderServed:
		labelKey, status = "waiter.action.mark_completed", restapi.OrderCompleted
	default:
		return nil
	}
	return &webtemplates.OrderAction{LabelKey: labelKey, Status: status, Path: routepath.WaiterOrderStatusUpdate(order.ID.String())}
}

type board struct {
	Orders       []webtemplates.BoardOrder
	Tables       webtemplates.TableCounts
	TableOptions []string
}

func (s service) board(ctx context.Context, filter, table string) (board, error) {
	orders, tables, err := s.floor(ctx)
	if err != nil {
		return board{}, err
	}
	result := board{Tables: tables}
	for _, order := range orders {
		if number := order.TableNumber(); number != "" && !slices.Contains(result.TableOptions, number) {
			result.TableOptions = append(result.TableOptions, number)
		}
		if !matchesFilter(order, filter, table) {
			continue
		}
		result.Orders = append(result.Orders, webtemplates.BoardOrder{Order: order, Action: nextAction(order)})
	}
	slices.Sort(result.TableOptions)
	return result, nil
}

func (s service) updateStatus(ctx context.Context, orderID, status string) error {
	orderID = strings.TrimSpace(orderID)
	status = strings.ToUpper(strings.TrimSpace(status))
	if orderID == "" {
		return apperrors.EK(apperrors.KindNotFound, "error.web.message.order_not_found", "Order not found")
	}
	if status != restapi.OrderServed && status != restapi.OrderCompleted {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.invalid_order_status", "Unsupported order status")
	}
	if err := s.gateway.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.logger.Printf("floor order status updated order_id=%s status=%s", orderID, status)
	return nil
}

func (s service) changePassword(ctx context.Context, current, password, confirm string) error {
	if s.passwords == nil {
		return apperrors.E(apperrors.KindUnavailable, "password service is not configured")
	}
	return s.passwords.ChangePassword(ctx, current, password, confirm)
}
