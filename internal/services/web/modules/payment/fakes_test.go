package payment

import (
	"context"
	"net/http"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
)

type fakeGateway struct {
	orders    []restapi.Order
	ordersErr error
	created   restapi.PaymentResponse
	createErr error
	verified  restapi.PaymentResponse
	verifyErr error
	doc       restapi.Document
	docErr    error
	emailErr  error

	lastCreate CreateRequest
	lastVerify VerifyRequest
	emailed    []string
}

func (f *fakeGateway) Orders(context.Context, string) ([]restapi.Order, error) {
	return f.orders, f.ordersErr
}

func (f *fakeGateway) CreatePayment(_ context.Context, req CreateRequest) (restapi.PaymentResponse, error) {
	f.lastCreate = req
	return f.created, f.createErr
}

func (f *fakeGateway) VerifyPayment(_ context.Context, req VerifyRequest) (restapi.PaymentResponse, error) {
	f.lastVerify = req
	return f.verified, f.verifyErr
}

func (f *fakeGateway) Document(context.Context, string, string) (restapi.Document, error) {
	return f.doc, f.docErr
}

func (f *fakeGateway) EmailDocument(_ context.Context, orderID, document string) error {
	f.emailed = append(f.emailed, orderID+":"+document)
	return f.emailErr
}

const testKey = "rzp_test_abc123"

func mountWith(g Gateway, keyID string) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(g, keyID), modulehandler.NewTestBase("42", module.RoleCustomer)))
	return mux
}
