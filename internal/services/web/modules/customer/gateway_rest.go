package customer

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

// API is the backend transport used by the customer gateway.
type API interface {
	Do(ctx context.Context, req restapi.Request, out any) error
}

type restGateway struct {
	api API
}

// NewRESTGateway returns a Gateway backed by the JavaBite REST API. A nil api
// yields the unavailable gateway.
func NewRESTGateway(api API) Gateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) get(ctx context.Context, path string, query url.Values, out any) error {
	return g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (g restGateway) ActiveBooking(ctx context.Context, userID string) (*restapi.Booking, error) {
	var booking restapi.Booking
	err := g.get(ctx, "/customer/booking/active/"+url.PathEscape(userID), nil, &booking)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if booking.ID.IsZero() {
		return nil, nil
	}
	return &booking, nil
}

func (g restGateway) AvailableTables(ctx context.Context, query TableQuery) ([]restapi.Table, error) {
	values := url.Values{}
	values.Set("date", query.Date)
	values.Set("slot", query.Slot)
	values.Set("guests", strconv.Itoa(query.Guests))
	var tables []restapi.Table
	if err := g.get(ctx, "/customer/tables/available", values, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

type idRef struct {
	ID restapi.ID `json:"id"`
}

type bookingPayload struct {
	User            idRef  `json:"user"`
	Table           idRef  `json:"table"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	Duration        int    `json:"duration"`
	BookingDate     string `json:"bookingDate"`
	Slot            string `json:"slot"`
	SpecialRequests string `json:"specialRequests"`
}

func (g restGateway) BookTable(ctx context.Context, req BookingRequest) error {
	return g.api.Do(ctx, restapi.Request{
		Method: http.MethodPost,
		Path:   "/customer/book",
		Body: bookingPayload{
			User:            idRef{ID: restapi.ID(req.UserID)},
			Table:           idRef{ID: restapi.ID(req.TableID)},
			NumberOfGuests:  req.Guests,
			Duration:        bookingDuration,
			BookingDate:     req.Date,
			Slot:            req.Slot,
			SpecialRequests: req.SpecialRequests,
		},
	}, nil)
}

func (g restGateway) CancelBooking(ctx context.Context, bookingID string) error {
	return g.api.Do(ctx, restapi.Request{
		Method: http.MethodPut,
		Path:   "/customer/booking/" + url.PathEscape(bookingID) + "/cancel",
	}, nil)
}

func (g restGateway) Menu(ctx context.Context) ([]restapi.MenuItem, error) {
	var items []restapi.MenuItem
	if err := g.get(ctx, "/customer/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g restGateway) Orders(ctx context.Context, userID string) ([]restapi.Order, error) {
	var orders []restapi.Order
	if err := g.get(ctx, "/customer/orders/"+url.PathEscape(userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type orderItemPayload struct {
	MenuItemID          restapi.ID `json:"menuItemId"`
	Quantity            int        `json:"quantity"`
	SpecialInstructions string     `json:"specialInstructions"`
}

type orderPayload struct {
	UserID              restapi.ID         `json:"userId"`
	SpecialInstructions string             `json:"specialInstructions"`
	OrderItems          []orderItemPayload `json:"orderItems"`
}

func (g restGateway) PlaceOrder(ctx context.Context, req OrderRequest) (restapi.Order, error) {
	payload := orderPayload{
		UserID:              restapi.ID(req.UserID),
		SpecialInstructions: req.SpecialInstructions,
		OrderItems:          make([]orderItemPayload, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		payload.OrderItems = append(payload.OrderItems, orderItemPayload{
			MenuItemID: restapi.ID(line.MenuItemID),
			Quantity:   line.Quantity,
		})
	}
	var order restapi.Order
	err := g.api.Do(ctx, restapi.Request{Method: http.MethodPost, Path: "/customer/order", Body: payload}, &order)
	return order, err
}

func (g restGateway) Profile(ctx context.Context, userID string) (restapi.User, error) {
	var user restapi.User
	err := g.get(ctx, "/customer/profile/"+url.PathEscape(userID), nil, &user)
	return user, err
}

func (g restGateway) SaveProfile(ctx context.Context, userID string, input ProfileInput) (restapi.User, error) {
	var user restapi.User
	err := g.api.Do(ctx, restapi.Request{
		Method: http.MethodPut,
		Path:   "/customer/profile/" + url.PathEscape(userID),
		Body: map[string]string{
			"name":  input.Name,
			"email": input.Email,
			"phone": input.Phone,
		},
	}, &user)
	return user, err
}

type feedbackPayload struct {
	OrderID  *restapi.ID `json:"orderId"`
	Rating   int         `json:"rating"`
	Comment  string      `json:"comment"`
	Category string      `json:"category"`
}

func (g restGateway) SubmitFeedback(ctx context.Context, input FeedbackInput) error {
	payload := feedbackPayload{Rating: input.Rating, Comment: input.Comment, Category: input.Category}
	if orderID := strings.TrimSpace(input.OrderID); orderID != "" {
		id := restapi.ID(orderID)
		payload.OrderID = &id
	}
	return g.api.Do(ctx, restapi.Request{Method: http.MethodPost, Path: "/feedback", Body: payload}, nil)
}

func (g restGateway) FeedbackHistory(ctx context.Context) ([]restapi.Feedback, error) {
	var entries []restapi.Feedback
	if err := g.get(ctx, "/feedback/customer", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
