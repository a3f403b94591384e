package payment

import (
	"context"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func errPaymentUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "payment service is not configured")
}

func (unavailableGateway) Orders(context.Context, string) ([]restapi.Order, error) {
	return nil, errPaymentUnavailable()
}

func (unavailableGateway) CreatePayment(context.Context, CreateRequest) (restapi.PaymentResponse, error) {
	return restapi.PaymentResponse{}, errPaymentUnavailable()
}

func (unavailableGateway) VerifyPayment(context.Context, VerifyRequest) (restapi.PaymentResponse, error) {
	return restapi.PaymentResponse{}, errPaymentUnavailable()
}

func (unavailableGateway) Document(context.Context, string, string) (restapi.Document, error) {
	return restapi.Document{}, errPaymentUnavailable()
}

func (unavailableGateway) EmailDocument(context.Context, string, string) error {
	return errPaymentUnavailable()
}
