package waiter

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

// API is the backend transport used by the waiter gateway.
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
	if err := g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: "/waiter/orders"}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Tables reads the floor tables, retrying once on the admin listing when the
// waiter endpoint fails. An expired session is not retried.
func (g restGateway) Tables(ctx context.Context) ([]restapi.Table, error) {
	var tables []restapi.Table
	err := g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: "/waiter/tables"}, &tables)
	if err == nil {
		return tables, nil
	}
	if apperrors.IsKind(err, apperrors.KindUnauthorized) {
		return nil, err
	}
	log.Printf("waiter tables failed, trying admin tables err=%v", err)
	tables = nil
	if err := g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: "/admin/tables"}, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (g restGateway) UpdateStatus(ctx context.Context, orderID, status string) error {
	return g.api.Do(ctx, restapi.Request{
		Method: http.MethodPut,
		Path:   "/waiter/orders/" + url.PathEscape(orderID) + "/status",
		Query:  url.Values{"status": {status}},
	}, nil)
}
