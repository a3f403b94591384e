package payment

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

const (
	currencyINR = "INR"
	// keyPlaceholder marks the sample key id shipped in example configs.
	keyPlaceholder = "xxxxxxxxxxxxxx"
)

// Gateway talks to the backend payment and order document endpoints.
type Gateway interface {
	Orders(ctx context.Context, userID string) ([]restapi.Order, error)
	CreatePayment(ctx context.Context, req CreateRequest) (restapi.PaymentResponse, error)
	VerifyPayment(ctx context.Context, req VerifyRequest) (restapi.PaymentResponse, error)
	Document(ctx context.Context, orderID, document string) (restapi.Document, error)
	EmailDocument(ctx context.Context, orderID, document string) error
}

// CreateRequest asks the backend to open a gateway order.
type CreateRequest struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
}

// VerifyRequest carries the gateway callback for signature verification.
type VerifyRequest struct {
	OrderID           string
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
}

type service struct {
	gateway Gateway
	keyID   string
}

func newService(gateway Gateway, keyID string) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, keyID: strings.TrimSpace(keyID)}
}

// order finds one of the customer's own orders.
func (s service) order(ctx context.Context, userID, orderID string) (restapi.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if strings.TrimSpace(userID) == "" {
		return restapi.Order{}, apperrors.E(apperrors.KindUnauthorized, "user id is required")
	}
	orders, err := s.gateway.Orders(ctx, userID)
	if err != nil {
		return restapi.Order{}, err
	}
	idx := slices.IndexFunc(orders, func(o restapi.Order) bool { return o.ID.String() == orderID })
	if orderID == "" || idx < 0 {
		return restapi.Order{}, apperrors.EK(apperrors.KindNotFound, "error.web.message.order_not_found", "Order not found")
	}
	return orders[idx], nil
}

func (s service) configured() bool {
	return s.keyID != "" && !strings.Contains(s.keyID, keyPlaceholder)
}

// start opens a gateway order for an unpaid order and returns the widget
// bootstrap.
func (s service) start(ctx context.Context, userID, orderID string, viewer restapi.User) (webtemplates.CheckoutView, error) {
	if !s.configured() {
		return webtemplates.CheckoutView{}, apperrors.EK(apperrors.KindUnavailable, "error.web.message.payment_not_configured", "Razorpay key not configured.")
	}
	order, err := s.order(ctx, userID, orderID)
	if err != nil {
		return webtemplates.CheckoutView{}, err
	}
	if !webtemplates.CanPay(order) {
		return webtemplates.CheckoutView{}, apperrors.EK(apperrors.KindConflict, "error.web.message.order_not_payable", "This order is not awaiting payment")
	}
	resp, err := s.gateway.CreatePayment(ctx, CreateRequest{OrderID: order.ID.String(), Amount: order.TotalAmount, Currency: currencyINR})
	if err != nil {
		return webtemplates.CheckoutView{}, err
	}
	if !resp.Success || strings.TrimSpace(resp.RazorpayOrderID) == "" {
		return webtemplates.CheckoutView{}, failure(resp.Message, "Failed to create payment order")
	}
	amount := resp.Amount
	if amount.IsZero() {
		amount = order.TotalAmount
	}
	currency := strings.TrimSpace(resp.Currency)
	if currency == "" {
		currency = currencyINR
	}
	return webtemplates.CheckoutView{
		OrderID:         order.ID.String(),
		KeyID:           s.keyID,
		RazorpayOrderID: resp.RazorpayOrderID,
		AmountPaise:     toPaise(amount),
		Currency:        currency,
		CustomerName:    viewer.Name,
		CustomerEmail:   viewer.Email,
	}, nil
}

// toPaise converts rupees to the smallest currency unit.
func toPaise(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func failure(message, fallback string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fallback
	}
	return apperrors.E(apperrors.KindInvalidInput, message)
}

// verify forwards the gateway callback. A response without success is a
// failed payment.
func (s service) verify(ctx context.Context, req VerifyRequest) (string, error) {
	if strings.TrimSpace(req.RazorpayPaymentID) == "" || strings.TrimSpace(req.RazorpaySignature) == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "error.web.message.payment_incomplete", "Payment was not completed")
	}
	resp, err := s.gateway.VerifyPayment(ctx, req)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", failure(resp.Message, "Payment verification failed")
	}
	paymentID := strings.TrimSpace(resp.PaymentID)
	if paymentID == "" {
		paymentID = strings.TrimSpace(req.RazorpayPaymentID)
	}
	return paymentID, nil
}

func validDocument(document string) bool {
	return document == routepath.PaymentDocumentReceipt || document == routepath.PaymentDocumentInvoice
}

func (s service) document(ctx context.Context, userID, orderID, document string) (restapi.Document, error) {
	if !validDocument(document) {
		return restapi.Document{}, apperrors.E(apperrors.KindNotFound, "unknown document")
	}
	if _, err := s.order(ctx, userID, orderID); err != nil {
		return restapi.Document{}, err
	}
	doc, err := s.gateway.Document(ctx, orderID, document)
	if err != nil {
		return restapi.Document{}, err
	}
	if strings.TrimSpace(doc.Filename) == "" {
		doc.Filename = documentFilename(orderID, document)
	}
	if doc.ContentType == "" || doc.ContentType == "application/octet-stream" {
		doc.ContentType = "application/pdf"
	}
	return doc, nil
}

func documentFilename(orderID, document string) string {
	title := "Receipt"
	if document == routepath.PaymentDocumentInvoice {
		title = "Invoice"
	}
	return fmt.Sprintf("JavaBite-%s-Order-%s.pdf", title, orderID)
}

func (s service) emailDocument(ctx context.Context, userID, orderID, document string) error {
	if !validDocument(document) {
		return apperrors.E(apperrors.KindNotFound, "unknown document")
	}
	if _, err := s.order(ctx, userID, orderID); err != nil {
		return err
	}
	return s.gateway.EmailDocument(ctx, orderID, document)
}
