package customer

import (
	"context"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func errCustomerUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "customer service is not configured")
}

func (unavailableGateway) ActiveBooking(context.Context, string) (*restapi.Booking, error) {
	return nil, errCustomerUnavailable()
}

func (unavailableGateway) AvailableTables(context.Context, TableQuery) ([]restapi.Table, error) {
	return nil, errCustomerUnavailable()
}

func (unavailableGateway) BookTable(context.Context, BookingRequest) error {
	return errCustomerUnavailable()
}

func (unavailableGateway) CancelBooking(context.Context, string) error {
	return errCustomerUnavailable()
}

func (unavailableGateway) Menu(context.Context) ([]restapi.MenuItem, error) {
	return nil, errCustomerUnavailable()
}

func (unavailableGateway) Orders(context.Context, string) ([]restapi.Order, error) {
	return nil, errCustomerUnavailable()
}

func (unavailableGateway) PlaceOrder(context.Context, OrderRequest) (restapi.Order, error) {
	return restapi.Order{}, errCustomerUnavailable()
}

func (unavailableGateway) Profile(context.Context, string) (restapi.User, error) {
	return restapi.User{}, errCustomerUnavailable()
}

func (unavailableGateway) SaveProfile(context.Context, string, ProfileInput) (restapi.User, error) {
	return restapi.User{}, errCustomerUnavailable()
}

func (unavailableGateway) SubmitFeedback(context.Context, FeedbackInput) error {
	return errCustomerUnavailable()
}

func (unavailableGateway) FeedbackHistory(context.Context) ([]restapi.Feedback, error) {
	return nil, errCustomerUnavailable()
}
