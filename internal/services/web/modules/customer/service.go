package customer

import (
	"context"
	"log"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/javabite/internal/services/web/cart"
	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

const (
	recentOrderLimit = 3
	bookingDuration  = 2
	maxGuests        = 20
)

// Gateway reads and writes customer data on the backend.
type Gateway interface {
	// ActiveBooking returns nil when the customer has no active booking.
	ActiveBooking(ctx context.Context, userID string) (*restapi.Booking, error)
	AvailableTables(ctx context.Context, query TableQuery) ([]restapi.Table, error)
	BookTable(ctx context.Context, req BookingRequest) error
	CancelBooking(ctx context.Context, bookingID string) error
	Menu(ctx context.Context) ([]restapi.MenuItem, error)
	Orders(ctx context.Context, userID string) ([]restapi.Order, error)
	PlaceOrder(ctx context.Context, req OrderRequest) (restapi.Order, error)
	Profile(ctx context.Context, userID string) (restapi.User, error)
	SaveProfile(ctx context.Context, userID string, input ProfileInput) (restapi.User, error)
	SubmitFeedback(ctx context.Context, input FeedbackInput) error
	FeedbackHistory(ctx context.Context) ([]restapi.Feedback, error)
}

// TableQuery searches free tables for a date and slot.
type TableQuery struct {
	Date   string
	Slot   string
	Guests int
}

// BookingRequest reserves one table.
type BookingRequest struct {
	UserID          string
	TableID         string
	Date            string
	Slot            string
	Guests          int
	SpecialRequests string
}

// OrderRequest places the cart as an order.
type OrderRequest struct {
	UserID              string
	SpecialInstructions string
	Lines               []cart.Line
}

// ProfileInput is the editable part of a customer profile.
type ProfileInput struct {
	Name  string
	Email string
	Phone string
}

// FeedbackInput is one feedback submission. OrderID is optional.
type FeedbackInput struct {
	OrderID  string
	Rating   int
	Category string
	Comment  string
}

// profileSyncer is implemented by session credentials that cache the
// signed-in profile.
type profileSyncer interface {
	UpdateProfile(ctx context.Context, name, email string) error
}

type service struct {
	gateway Gateway
	carts   *cart.Repository
	menu    *cache.MenuCache
	now     func() time.Time
	logger  *log.Logger
}

func newService(gateway Gateway, carts *cart.Repository, menu *cache.MenuCache) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, carts: carts, menu: menu, now: time.Now, logger: log.Default()}
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.E(apperrors.KindUnauthorized, "user id is required")
	}
	return nil
}

type dashboard struct {
	Booking *restapi.Booking
	Recent  []restapi.Order
	Stats   webtemplates.OrderStatsView
}

// dashboard loads the active booking and order history in parallel. A failed
// booking read leaves the booking empty.
func (s service) dashboard(ctx context.Context, userID string) (dashboard, error) {
	if err := requireUser(userID); err != nil {
		return dashboard{}, err
	}
	var (
		booking *restapi.Booking
		orders  []restapi.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.gateway.ActiveBooking(gctx, userID)
		if err != nil {
			s.logger.Printf("customer active booking failed user_id=%s err=%v", userID, err)
			return nil
		}
		booking = b
		return nil
	})
	g.Go(func() error {
		list, err := s.gateway.Orders(gctx, userID)
		if err != nil {
			return err
		}
		orders = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard{}, err
	}
	sortNewestFirst(orders)
	return dashboard{Booking: booking, Recent: recent(orders), Stats: orderStats(orders)}, nil
}

func recent(orders []restapi.Order) []restapi.Order {
	if len(orders) > recentOrderLimit {
		return orders[:recentOrderLimit]
	}
	return orders
}

func sortNewestFirst(orders []restapi.Order) {
	slices.SortStableFunc(orders, func(a, b restapi.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
}

// orderStats counts every order as spent, whatever its status.
func orderStats(orders []restapi.Order) webtemplates.OrderStatsView {
	stats := webtemplates.OrderStatsView{Total: len(orders), Spent: decimal.Zero}
	for _, order := range orders {
		switch order.NormalizedStatus() {
		case restapi.OrderCompleted:
			stats.Completed++
		case restapi.OrderCancelled:
		default:
			stats.Active++
		}
		stats.Spent = stats.Spent.Add(order.TotalAmount)
	}
	return stats
}

func (s service) activeBooking(ctx context.Context, userID string) *restapi.Booking {
	booking, err := s.gateway.ActiveBooking(ctx, userID)
	if err != nil {
		s.logger.Printf("customer active booking failed user_id=%s err=%v", userID, err)
		return nil
	}
	return booking
}

func validSlot(slot string) bool {
	return slices.Contains(webtemplates.BookingSlots, slot)
}

func normalizeGuests(guests int) int {
	return min(max(guests, 1), maxGuests)
}

func (s service) searchTables(ctx context.Context, query TableQuery) ([]restapi.Table, error) {
	query.Date = strings.TrimSpace(query.Date)
	query.Slot = strings.ToUpper(strings.TrimSpace(query.Slot))
	if query.Date == "" || query.Slot == "" {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.booking_date_slot_required", "Please select a date and a time slot")
	}
	if !validSlot(query.Slot) {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.booking_slot_invalid", "Unknown time slot")
	}
	query.Guests = normalizeGuests(query.Guests)
	return s.gateway.AvailableTables(ctx, query)
}

func (s service) bookTable(ctx context.Context, req BookingRequest) error {
	if err := requireUser(req.UserID); err != nil {
		return err
	}
	req.Date = strings.TrimSpace(req.Date)
	req.Slot = strings.ToUpper(strings.TrimSpace(req.Slot))
	if req.Date == "" || req.Slot == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.booking_date_slot_required", "Please select a date and a time slot")
	}
	if !validSlot(req.Slot) {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.booking_slot_invalid", "Unknown time slot")
	}
	if strings.TrimSpace(req.TableID) == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.booking_table_required", "Please choose a table")
	}
	req.Guests = normalizeGuests(req.Guests)
	return s.gateway.BookTable(ctx, req)
}

func (s service) cancelBooking(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return apperrors.E(apperrors.KindNotFound, "booking not found")
	}
	return s.gateway.CancelBooking(ctx, bookingID)
}

// availableMenu returns the orderable items, served from the menu cache when
// one is configured.
func (s service) availableMenu(ctx context.Context) ([]restapi.MenuItem, error) {
	items, err := s.menu.Load(ctx, s.gateway.Menu)
	if err != nil {
		return nil, err
	}
	available := make([]restapi.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable() {
			available = append(available, item)
		}
	}
	return available, nil
}

type menuFilter struct {
	Category string
	Query    string
}

type menuPage struct {
	Items      []restapi.MenuItem
	Categories []string
	Recent     []restapi.Order
	Cart       *cart.Cart
}

// menuPage loads the menu and recent orders in parallel. Order history is
// optional on this page.
func (s service) menuPage(ctx context.Context, userID, sessionID string, filter menuFilter) (menuPage, error) {
	var (
		items  []restapi.MenuItem
		orders []restapi.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.availableMenu(gctx)
		items = list
		return err
	})
	g.Go(func() error {
		list, err := s.gateway.Orders(gctx, userID)
		if err != nil {
			s.logger.Printf("customer menu orders failed user_id=%s err=%v", userID, err)
			return nil
		}
		orders = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return menuPage{}, err
	}
	c, err := s.cart(ctx, sessionID)
	if err != nil {
		return menuPage{}, err
	}
	sortNewestFirst(orders)
	return menuPage{
		Items:      filterMenu(items, filter),
		Categories: menuCategories(items),
		Recent:     recent(orders),
		Cart:       c,
	}, nil
}

func menuCategories(items []restapi.MenuItem) []string {
	categories := make([]string, 0, len(items))
	for _, item := range items {
		category := strings.ToUpper(strings.TrimSpace(item.Category))
		if category != "" && !slices.Contains(categories, category) {
			categories = append(categories, category)
		}
	}
	slices.Sort(categories)
	return categories
}

func filterMenu(items []restapi.MenuItem, filter menuFilter) []restapi.MenuItem {
	category := strings.ToUpper(strings.TrimSpace(filter.Category))
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	filtered := make([]restapi.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && strings.ToUpper(strings.TrimSpace(item.Category)) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func (s service) requireCarts() error {
	if s.carts == nil {
		return apperrors.E(apperrors.KindUnavailable, "cart storage is not configured")
	}
	return nil
}

func (s service) cart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if err := s.requireCarts(); err != nil {
		return nil, err
	}
	return s.carts.Load(ctx, sessionID)
}

// addToCart looks the item up on the menu so the cart never trusts a
// browser-supplied price.
func (s service) addToCart(ctx context.Context, sessionID, menuItemID string, qty int) (*cart.Cart, error) {
	if err := s.requireCarts(); err != nil {
		return nil, err
	}
	if qty > cart.MaxQuantity {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.cart_quantity_too_large", "Quantity is too large")
	}
	menuItemID = strings.TrimSpace(menuItemID)
	items, err := s.availableMenu(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(items, func(item restapi.MenuItem) bool { return item.ID.String() == menuItemID })
	if menuItemID == "" || idx < 0 {
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_item_unavailable", "This item is not available")
	}
	item := items[idx]
	return s.carts.Update(ctx, sessionID, func(c *cart.Cart) {
		c.Add(cart.Line{MenuItemID: item.ID.String(), Name: item.Name, Price: item.Price}, qty)
	})
}

const (
	cartIncrement = "increment"
	cartDecrement = "decrement"
	cartRemove    = "remove"
)

func (s service) updateCartLine(ctx context.Context, sessionID, menuItemID, action string) (*cart.Cart, error) {
	if err := s.requireCarts(); err != nil {
		return nil, err
	}
	var mutate func(*cart.Cart)
	switch action {
	case cartIncrement:
		mutate = func(c *cart.Cart) { c.Increment(menuItemID) }
	case cartDecrement:
		mutate = func(c *cart.Cart) { c.Decrement(menuItemID) }
	case cartRemove:
		mutate = func(c *cart.Cart) { c.Remove(menuItemID) }
	default:
		return nil, apperrors.E(apperrors.KindNotFound, "unknown cart action")
	}
	return s.carts.Update(ctx, sessionID, mutate)
}

func (s service) clearCart(ctx context.Context, sessionID string) error {
	if err := s.requireCarts(); err != nil {
		return err
	}
	return s.carts.Clear(ctx, sessionID)
}

// checkout places the session cart as an order and empties the cart.
func (s service) checkout(ctx context.Context, userID, sessionID, instructions string) (restapi.Order, error) {
	if err := requireUser(userID); err != nil {
		return restapi.Order{}, err
	}
	if err := s.requireCarts(); err != nil {
		return restapi.Order{}, err
	}
	var order restapi.Order
	placed := false
	err := s.carts.Drain(ctx, sessionID, func(c *cart.Cart) error {
		if c.IsEmpty() {
			return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.cart_empty", "Your cart is empty")
		}
		var err error
		order, err = s.gateway.PlaceOrder(ctx, OrderRequest{
			UserID:              userID,
			SpecialInstructions: strings.TrimSpace(instructions),
			Lines:               c.Lines(),
		})
		if err != nil {
			return err
		}
		placed = true
		return nil
	})
	if err != nil {
		if !placed {
			return restapi.Order{}, err
		}
		s.logger.Printf("customer cart clear after checkout failed err=%v", err)
	}
	return order, nil
}

func (s service) orders(ctx context.Context, userID string) ([]restapi.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	orders, err := s.gateway.Orders(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

type profile struct {
	User  restapi.User
	Stale bool
	Stats *webtemplates.OrderStatsView
}

// profile reads the backend profile and order stats. When the profile read
// fails the session copy is shown instead and marked stale.
func (s service) profile(ctx context.Context, userID string, fallback restapi.User) (profile, error) {
	if err := requireUser(userID); err != nil {
		return profile{}, err
	}
	var (
		user    restapi.User
		userErr error
		stats   *webtemplates.OrderStatsView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, userErr = s.gateway.Profile(gctx, userID)
		return nil
	})
	g.Go(func() error {
		orders, err := s.gateway.Orders(gctx, userID)
		if err != nil {
			s.logger.Printf("customer profile orders failed user_id=%s err=%v", userID, err)
			return nil
		}
		computed := orderStats(orders)
		stats = &computed
		return nil
	})
	_ = g.Wait()
	if userErr != nil {
		if apperrors.IsKind(userErr, apperrors.KindUnauthorized) {
			return profile{}, userErr
		}
		s.logger.Printf("customer profile read failed user_id=%s err=%v", userID, userErr)
		return profile{User: fallback, Stale: true, Stats: stats}, nil
	}
	return profile{User: user, Stats: stats}, nil
}

func (s service) saveProfile(ctx context.Context, userID string, input ProfileInput) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" || input.Email == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.profile_fields_required", "Name and email are required")
	}
	saved, err := s.gateway.SaveProfile(ctx, userID, input)
	if err != nil {
		return err
	}
	name, email := saved.Name, saved.Email
	if strings.TrimSpace(name) == "" {
		name = input.Name
	}
	if strings.TrimSpace(email) == "" {
		email = input.Email
	}
	if creds, ok := restapi.CredentialsFrom(ctx); ok {
		if syncer, ok := creds.(profileSyncer); ok {
			if err := syncer.UpdateProfile(ctx, name, email); err != nil {
				s.logger.Printf("customer session profile sync failed user_id=%s err=%v", userID, err)
			}
		}
	}
	return nil
}

// parseFeedback validates the raw feedback form.
func parseFeedback(orderID, rating, category, comment string) (FeedbackInput, error) {
	value, err := strconv.Atoi(strings.TrimSpace(rating))
	if err != nil || value < 1 || value > 5 {
		return FeedbackInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.feedback_rating_required", "Please select a rating")
	}
	category = strings.ToUpper(strings.TrimSpace(category))
	if !slices.Contains(webtemplates.FeedbackCategories, category) {
		return FeedbackInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.feedback_category_required", "Please select a category")
	}
	return FeedbackInput{
		OrderID:  strings.TrimSpace(orderID),
		Rating:   value,
		Category: category,
		Comment:  strings.TrimSpace(comment),
	}, nil
}

func (s service) submitFeedback(ctx context.Context, input FeedbackInput) error {
	return s.gateway.SubmitFeedback(ctx, input)
}

func (s service) feedbackHistory(ctx context.Context) ([]restapi.Feedback, error) {
	entries, err := s.gateway.FeedbackHistory(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(entries, func(a, b restapi.Feedback) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
	return entries, nil
}

// feedbackOrders lists the orders a customer can attach feedback to. A failed
// read leaves the list empty.
func (s service) feedbackOrders(ctx context.Context, userID string) []restapi.Order {
	orders, err := s.orders(ctx, userID)
	if err != nil {
		s.logger.Printf("customer feedback orders failed user_id=%s err=%v", userID, err)
		return nil
	}
	return orders
}

func cartView(c *cart.Cart) webtemplates.CartView {
	if c == nil {
		return webtemplates.CartView{Total: decimal.Zero}
	}
	lines := c.Lines()
	view := webtemplates.CartView{Lines: make([]webtemplates.CartLineView, 0, len(lines)), Total: c.Total(), Count: c.Count()}
	for _, line := range lines {
		view.Lines = append(view.Lines, webtemplates.CartLineView{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Total:      line.Total(),
		})
	}
	return view
}
