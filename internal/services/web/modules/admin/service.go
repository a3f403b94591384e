package admin

import (
	"cmp"
	"context"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/session"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// Gateway talks to the administration endpoints of the backend.
type Gateway interface {
	DashboardStats(ctx context.Context) (restapi.DashboardStats, error)
	FeedbackStats(ctx context.Context) (restapi.FeedbackStats, error)
	Staff(ctx context.Context) ([]restapi.User, error)
	CreateStaff(ctx context.Context, input StaffInput) error
	DeleteStaff(ctx context.Context, staffID string) error
	Menu(ctx context.Context) ([]restapi.MenuItem, error)
	// SaveMenuItem adds the item when itemID is empty and updates it otherwise.
	SaveMenuItem(ctx context.Context, itemID string, input MenuItemInput) error
	DeleteMenuItem(ctx context.Context, itemID string) error
	Orders(ctx context.Context) ([]restapi.Order, error)
	Customers(ctx context.Context) ([]restapi.User, error)
	Tables(ctx context.Context) ([]restapi.Table, error)
	// SaveTable adds the table when its ID is empty and updates it otherwise.
	SaveTable(ctx context.Context, table restapi.Table) error
	DeleteTable(ctx context.Context, tableID string) error
	Feedback(ctx context.Context, filter FeedbackFilter) ([]restapi.Feedback, error)
}

// StaffInput creates a chef or waiter account.
type StaffInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// MenuItemInput is the menu item form. Image is optional.
type MenuItemInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	Category        string
	PreparationTime int
	Image           *restapi.FormFile
}

// TableInput is the table form.
type TableInput struct {
	TableNumber string
	Capacity    int
	Location    string
	Description string
}

// FeedbackFilter narrows the admin feedback list. Empty fields match all.
type FeedbackFilter struct {
	Status   string
	Category string
}

type service struct {
	gateway Gateway
	menu    *cache.MenuCache
	logger  *log.Logger
}

func newService(gateway Gateway, menu *cache.MenuCache) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, menu: menu, logger: log.Default()}
}

// dashboard loads analytics and feedback stats concurrently. Feedback stats
// are optional.
func (s service) dashboard(ctx context.Context) (restapi.DashboardStats, *restapi.FeedbackStats, error) {
	var (
		stats    restapi.DashboardStats
		feedback *restapi.FeedbackStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.gateway.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		fs, err := s.gateway.FeedbackStats(gctx)
		if err != nil {
			s.logger.Printf("admin feedback stats failed err=%v", err)
			return nil
		}
		feedback = &fs
		return nil
	})
	if err := g.Wait(); err != nil {
		return restapi.DashboardStats{}, nil, err
	}
	return stats, feedback, nil
}

func (s service) staff(ctx context.Context) ([]restapi.User, error) {
	return s.gateway.Staff(ctx)
}

func parseStaff(name, email, password, role string) (StaffInput, error) {
	input := StaffInput{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     strings.ToUpper(strings.TrimSpace(role)),
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return StaffInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.staff_fields_required", "Name, email and password are required")
	}
	if !slices.Contains(webtemplates.StaffRoles, input.Role) {
		return StaffInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.staff_role_invalid", "Staff role must be chef or waiter")
	}
	if len([]rune(input.Password)) < session.MinPasswordLength {
		return StaffInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.password_too_short", "Password must be at least 6 characters")
	}
	return input, nil
}

func (s service) createStaff(ctx context.Context, input StaffInput) error {
	if err := s.gateway.CreateStaff(ctx, input); err != nil {
		return err
	}
	s.logger.Printf("staff account created role=%s", input.Role)
	return nil
}

func (s service) deleteStaff(ctx context.Context, staffID string) error {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return apperrors.E(apperrors.KindNotFound, "staff member not found")
	}
	return s.gateway.DeleteStaff(ctx, staffID)
}

type menuPage struct {
	Items      []restapi.MenuItem
	Categories []string
	Editing    *restapi.MenuItem
}

// menuPage lists every menu item, available or not, under an optional
// category tab.
func (s service) menuPage(ctx context.Context, category, editID string) (menuPage, error) {
	items, err := s.gateway.Menu(ctx)
	if err != nil {
		return menuPage{}, err
	}
	page := menuPage{}
	category = strings.ToUpper(strings.TrimSpace(category))
	editID = strings.TrimSpace(editID)
	for i, item := range items {
		itemCategory := strings.ToUpper(strings.TrimSpace(item.Category))
		if itemCategory != "" && !slices.Contains(page.Categories, itemCategory) {
			page.Categories = append(page.Categories, itemCategory)
		}
		if editID != "" && item.ID.String() == editID {
			page.Editing = &items[i]
		}
		if category == "" || itemCategory == category {
			page.Items = append(page.Items, item)
		}
	}
	slices.Sort(page.Categories)
	return page, nil
}

func parseMenuItem(name, description, price, category, preparationTime string) (MenuItemInput, error) {
	input := MenuItemInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Category:    strings.ToUpper(strings.TrimSpace(category)),
	}
	if input.Name == "" || input.Category == "" {
		return MenuItemInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_fields_required", "Name, price and category are required")
	}
	value, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || value.IsNegative() {
		return MenuItemInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_price_invalid", "Enter a valid price")
	}
	input.Price = value
	if raw := strings.TrimSpace(preparationTime); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return MenuItemInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.menu_prep_time_invalid", "Preparation time must be a whole number of minutes")
		}
		input.PreparationTime = minutes
	}
	return input, nil
}

// saveMenuItem writes the item and drops the shared customer menu.
func (s service) saveMenuItem(ctx context.Context, itemID string, input MenuItemInput) error {
	if err := s.gateway.SaveMenuItem(ctx, strings.TrimSpace(itemID), input); err != nil {
		return err
	}
	s.menu.Invalidate(ctx)
	return nil
}

func (s service) deleteMenuItem(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return apperrors.EK(apperrors.KindNotFound, "error.web.message.menu_item_unavailable", "Menu item not found")
	}
	if err := s.gateway.DeleteMenuItem(ctx, itemID); err != nil {
		return err
	}
	s.menu.Invalidate(ctx)
	return nil
}

func sortNewestFirst(orders []restapi.Order) {
	slices.SortStableFunc(orders, func(a, b restapi.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
}

func (s service) orders(ctx context.Context) ([]webtemplates.BoardOrder, error) {
	orders, err := s.gateway.Orders(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	board := make([]webtemplates.BoardOrder, 0, len(orders))
	for _, order := range orders {
		board = append(board, webtemplates.BoardOrder{Order: order})
	}
	return board, nil
}

func (s service) customers(ctx context.Context) ([]restapi.User, error) {
	customers, err := s.gateway.Customers(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(customers, func(a, b restapi.User) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return customers, nil
}

func (s service) tables(ctx context.Context) ([]restapi.Table, error) {
	tables, err := s.gateway.Tables(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(tables, func(a, b restapi.Table) int {
		return cmp.Compare(a.TableNumber, b.TableNumber)
	})
	return tables, nil
}

func (s service) table(ctx context.Context, tableID string) (restapi.Table, error) {
	tables, err := s.gateway.Tables(ctx)
	if err != nil {
		return restapi.Table{}, err
	}
	tableID = strings.TrimSpace(tableID)
	for _, table := range tables {
		if tableID != "" && table.ID.String() == tableID {
			return table, nil
		}
	}
	return restapi.Table{}, apperrors.EK(apperrors.KindNotFound, "error.web.message.table_not_found", "Table not found")
}

func parseTable(number, capacity, location, description string) (TableInput, error) {
	input := TableInput{
		TableNumber: strings.TrimSpace(number),
		Location:    strings.TrimSpace(location),
		Description: strings.TrimSpace(description),
	}
	seats, err := strconv.Atoi(strings.TrimSpace(capacity))
	if input.TableNumber == "" || err != nil || seats < 1 {
		return TableInput{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.table_fields_required", "Table number and a capacity of at least 1 are required")
	}
	input.Capacity = seats
	return input, nil
}

// addTable creates a table ready for bookings.
func (s service) addTable(ctx context.Context, input TableInput) error {
	return s.gateway.SaveTable(ctx, restapi.Table{
		TableNumber: input.TableNumber,
		Capacity:    input.Capacity,
		Location:    input.Location,
		Description: input.Description,
		Status:      restapi.TableAvailable,
	})
}

// updateTable rewrites a table's details and keeps its status.
func (s service) updateTable(ctx context.Context, tableID string, input TableInput) error {
	table, err := s.table(ctx, tableID)
	if err != nil {
		return err
	}
	table.TableNumber = input.TableNumber
	table.Capacity = input.Capacity
	table.Location = input.Location
	table.Description = input.Description
	return s.gateway.SaveTable(ctx, table)
}

// toggleMaintenance flips a table between MAINTENANCE and AVAILABLE.
func (s service) toggleMaintenance(ctx context.Context, tableID string) (string, error) {
	table, err := s.table(ctx, tableID)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(table.Status, restapi.TableMaintenance) {
		table.Status = restapi.TableAvailable
	} else {
		table.Status = restapi.TableMaintenance
	}
	if err := s.gateway.SaveTable(ctx, table); err != nil {
		return "", err
	}
	return table.Status, nil
}

func (s service) deleteTable(ctx context.Context, tableID string) error {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return apperrors.EK(apperrors.KindNotFound, "error.web.message.table_not_found", "Table not found")
	}
	return s.gateway.DeleteTable(ctx, tableID)
}

func parseFeedbackFilter(status, category string) FeedbackFilter {
	filter := FeedbackFilter{
		Status:   strings.ToUpper(strings.TrimSpace(status)),
		Category: strings.ToUpper(strings.TrimSpace(category)),
	}
	if !slices.Contains(webtemplates.FeedbackStatuses, filter.Status) {
		filter.Status = ""
	}
	if !slices.Contains(webtemplates.FeedbackCategories, filter.Category) {
		filter.Category = ""
	}
	return filter
}

type feedbackPage struct {
	Stats   restapi.FeedbackStats
	Entries []restapi.Feedback
	ListErr error
}

// feedback loads stats and the filtered list. Stats are required; a list
// failure is reported alongside them.
func (s service) feedback(ctx context.Context, filter FeedbackFilter) (feedbackPage, error) {
	var page feedbackPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Stats, err = s.gateway.FeedbackStats(gctx)
		return err
	})
	g.Go(func() error {
		entries, err := s.gateway.Feedback(gctx, filter)
		if err != nil {
			s.logger.Printf("admin feedback list failed status=%s category=%s err=%v", filter.Status, filter.Category, err)
			page.ListErr = err
			return nil
		}
		slices.SortStableFunc(entries, func(a, b restapi.Feedback) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
		page.Entries = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return feedbackPage{}, err
	}
	return page, nil
}
