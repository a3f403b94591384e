package chef

import (
	"context"
	"net/http"
	"net/url"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
)

// API is the backend transport used by the chef gateway.
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

func (g restGateway) Orders(ctx context.Context) ([]restapi.Order, error) {
	var orders []restapi.Order
	if err := g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: "/chef/orders"}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g restGateway) UpdateStatus(ctx context.Context, orderID, status string) error {
	return g.api.Do(ctx, restapi.Request{
		Method: http.MethodPut,
		Path:   "/chef/orders/" + url.PathEscape(orderID) + "/status",
		Query:  url.Values{"status": {status}},
	}, nil)
}

func (g restGateway) Profile(ctx context.Context, userID string) (restapi.User, error) {
	var user restapi.User
	err := g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: "/chef/profile/" + url.PathEscape(userID)}, &user)
	return user, err
}

func (g restGateway) SaveProfile(ctx context.Context, userID string, input ProfileInput) (restapi.User, error) {
	var user restapi.User
	err := g.api.Do(ctx, restapi.Request{
		Method: http.MethodPut,
		Path:   "/chef/profile/" + url.PathEscape(userID),
		Body: struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Phone string `json:"phone"`
		}{Name: input.Name, Email: input.Email, Phone: input.Phone},
	}, &user)
	return user, err
}
