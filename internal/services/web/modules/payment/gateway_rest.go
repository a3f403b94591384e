package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

// API is the backend transport used by the payment gateway.
type API interface {
	Do(ctx context.Context, req restapi.Request, out any) error
	Download(ctx context.Context, path string) (restapi.Document, error)
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

func (g restGateway) Orders(ctx context.Context, userID string) ([]restapi.Order, error) {
	var orders []restapi.Order
	err := g.api.Do(ctx, restapi.Request{Method: http.MethodGet, Path: "/customer/orders/" + url.PathEscape(userID)}, &orders)
	return orders, err
}

func (g restGateway) CreatePayment(ctx context.Context, req CreateRequest) (restapi.PaymentResponse, error) {
	var resp restapi.PaymentResponse
	err := g.api.Do(ctx, restapi.Request{
		Method: http.MethodPost,
		Path:   "/payment/create-razorpay-order",
		Body: struct {
			OrderID  restapi.ID  `json:"orderId"`
			Amount   json.Number `json:"amount"`
			Currency string      `json:"currency"`
		}{OrderID: restapi.ID(req.OrderID), Amount: json.Number(req.Amount.String()), Currency: req.Currency},
	}, &resp)
	return resp, err
}

func (g restGateway) VerifyPayment(ctx context.Context, req VerifyRequest) (restapi.PaymentResponse, error) {
	var resp restapi.PaymentResponse
	err := g.api.Do(ctx, restapi.Request{
		Method: http.MethodPost,
		Path:   "/payment/verify-razorpay",
		Body: struct {
			RazorpayOrderID   string     `json:"razorpayOrderId"`
			RazorpayPaymentID string     `json:"razorpayPaymentId"`
			RazorpaySignature string     `json:"razorpaySignature"`
			OrderID           restapi.ID `json:"orderId"`
		}{
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpaySignature: req.RazorpaySignature,
			OrderID:           restapi.ID(req.OrderID),
		},
	}, &resp)
	return resp, err
}

func (g restGateway) Document(ctx context.Context, orderID, document string) (restapi.Document, error) {
	return g.api.Download(ctx, "/orders/"+url.PathEscape(orderID)+"/"+document)
}

type emailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (g restGateway) EmailDocument(ctx context.Context, orderID, document string) error {
	var resp emailResponse
	err := g.api.Do(ctx, restapi.Request{
		Method: http.MethodPost,
		Path:   "/orders/" + url.PathEscape(orderID) + "/email-" + document,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return apperrors.EK(apperrors.KindUnavailable, "error.web.message.email_failed", "Failed to send email. Please try again.")
	}
	return nil
}
