package admin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
)

// API is the backend transport used by the admin gateway.
type API interface {
	Do(ctx context.Context, req restapi.Request, out any) error
}

type restGateway struct {
	api API
}

// NewRESTGateway returns a Gateway backed by the JavaBite REST API.
func NewRESTGateway(api API) Gateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) get(ctx context.Context, path string, query url.Values, out any) error {
	return g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (g restGateway) DashboardStats(ctx context.Context) (restapi.DashboardStats, error) {
	var stats restapi.DashboardStats
	err := g.get(ctx, "/admin/dashboard/stats", nil, &stats)
	return stats, err
}

func (g restGateway) FeedbackStats(ctx context.Context) (restapi.FeedbackStats, error) {
	var stats restapi.FeedbackStats
	err := g.get(ctx, "/feedback/admin/stats", nil, &stats)
	return stats, err
}

func (g restGateway) Staff(ctx context.Context) ([]restapi.User, error) {
	var staff []restapi.User
	if err := g.get(ctx, "/admin/staff", nil, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (g restGateway) CreateStaff(ctx context.Context, input StaffInput) error {
	return g.api.Do(ctx, restapi.Request{
		Method: http.MethodPost,
		Path:   "/auth/create-staff",
		Body: struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}{Name: input.Name, Email: input.Email, Password: input.Password, Role: input.Role},
	}, nil)
}

func (g restGateway) DeleteStaff(ctx context.Context, staffID string) error {
	return g.api.Do(ctx, restapi.Request{Method: http.MethodDelete, Path: "/admin/staff/" + url.PathEscape(staffID)}, nil)
}

func (g restGateway) Menu(ctx context.Context) ([]restapi.MenuItem, error) {
	var items []restapi.MenuItem
	if err := g.get(ctx, "/admin/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveMenuItem sends the item as a multipart form so an image can ride along.
func (g restGateway) SaveMenuItem(ctx context.Context, itemID string, input MenuItemInput) error {
	form := &restapi.MultipartForm{
		Fields: []restapi.FormField{
			{Name: "name", Value: input.Name},
			{Name: "description", Value: input.Description},
			{Name: "price", Value: input.Price.String()},
			{Name: "category", Value: input.Category},
			{Name: "preparationTime", Value: strconv.Itoa(input.PreparationTime)},
		},
	}
	if input.Image != nil {
		image := *input.Image
		image.Field = "image"
		form.Files = append(form.Files, image)
	}
	req := restapi.Request{Method: http.MethodPost, Path: "/admin/menu/add", Form: form}
	if itemID != "" {
		req.Method = http.MethodPut
		req.Path = "/admin/menu/update/" + url.PathEscape(itemID)
	}
	return g.api.Do(ctx, req, nil)
}

func (g restGateway) DeleteMenuItem(ctx context.Context, itemID string) error {
	return g.api.Do(ctx, restapi.Request{Method: http.MethodDelete, Path: "/admin/menu/delete/" + url.PathEscape(itemID)}, nil)
}

func (g restGateway) Orders(ctx context.Context) ([]restapi.Order, error) {
	var orders []restapi.Order
	if err := g.get(ctx, "/admin/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g restGateway) Customers(ctx context.Context) ([]restapi.User, error) {
	var customers []restapi.User
	if err := g.get(ctx, "/admin/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (g restGateway) Tables(ctx context.Context) ([]restapi.Table, error) {
	var tables []restapi.Table
	if err := g.get(ctx, "/admin/tables", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (g restGateway) SaveTable(ctx context.Context, table restapi.Table) error {
	req := restapi.Request{Method: http.MethodPost, Path: "/admin/tables/add", Body: table}
	if !table.ID.IsZero() {
		req.Method = http.MethodPut
		req.Path = "/admin/tables/update/" + url.PathEscape(table.ID.String())
	}
	return g.api.Do(ctx, req, nil)
}

func (g restGateway) DeleteTable(ctx context.Context, tableID string) error {
	return g.api.Do(ctx, restapi.Request{Method: http.MethodDelete, Path: "/admin/tables/delete/" + url.PathEscape(tableID)}, nil)
}

func (g restGateway) Feedback(ctx context.Context, filter FeedbackFilter) ([]restapi.Feedback, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	var entries []restapi.Feedback
	if err := g.get(ctx, "/feedback/admin", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
