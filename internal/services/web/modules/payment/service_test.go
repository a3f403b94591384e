package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

func pendingOrder() restapi.Order {
	return restapi.Order{ID: "55", Status: "PENDING", TotalAmount: decimal.RequireFromString("240.50")}
}

func TestToPaise(t *testing.T) {
	t.Parallel()

	tests := map[string]int64{
		"240.50": 24050,
		"0.005":  1,
		"99":     9900,
	}
	for raw, want := range tests {
		if got := toPaise(decimal.RequireFromString(raw)); got != want {
			t.Fatalf("toPaise(%s) = %d, want %d", raw, got, want)
		}
	}
}

func TestStartRequiresConfiguredKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "rzp_test_xxxxxxxxxxxxxx"} {
		g := &fakeGateway{orders: []restapi.Order{pendingOrder()}}
		_, err := newService(g, key).start(context.Background(), "42", "55", restapi.User{})
		if !apperrors.IsKind(err, apperrors.KindUnavailable) {
			t.Fatalf("key %q: error = %v, want unavailable", key, err)
		}
		if g.lastCreate.OrderID != "" {
			t.Fatalf("key %q: payment should not be created", key)
		}
	}
}

func TestStartBuildsCheckout(t *testing.T) {
	t.Parallel()

	g := &fakeGateway{
		orders:  []restapi.Order{pendingOrder()},
		created: restapi.PaymentResponse{Success: true, RazorpayOrderID: "order_Rz1", Amount: decimal.RequireFromString("240.50")},
	}
	view, err := newService(g, testKey).start(context.Background(), "42", "55", restapi.User{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("start() error = %v", err)
	}
	if view.AmountPaise != 24050 || view.Currency != "INR" || view.RazorpayOrderID != "order_Rz1" || view.KeyID != testKey {
		t.Fatalf("view = %+v", view)
	}
	if g.lastCreate.Currency != "INR" || !g.lastCreate.Amount.Equal(decimal.RequireFromString("240.50")) {
		t.Fatalf("create request = %+v", g.lastCreate)
	}
}

func TestStartRejectsPaidOrUnknownOrders(t *testing.T) {
	t.Parallel()

	paid := pendingOrder()
	paid.PaymentStatus = "PAID"
	g := &fakeGateway{orders: []restapi.Order{paid}}
	s := newService(g, testKey)
	if _, err := s.start(context.Background(), "42", "55", restapi.User{}); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("paid order error = %v, want conflict", err)
	}
	if _, err := s.start(context.Background(), "42", "404", restapi.User{}); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("unknown order error = %v, want not found", err)
	}
}

func TestStartUnsuccessfulResponseShowsBackendMessage(t *testing.T) {
	t.Parallel()

	g := &fakeGateway{
		orders:  []restapi.Order{pendingOrder()},
		created: restapi.PaymentResponse{Success: false, Message: "Gateway offline"},
	}
	_, err := newService(g, testKey).start(context.Background(), "42", "55", restapi.User{})
	if apperrors.DisplayMessage(err) != "Gateway offline" {
		t.Fatalf("error = %v", err)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	req := VerifyRequest{OrderID: "55", RazorpayOrderID: "order_Rz1", RazorpayPaymentID: "pay_1", RazorpaySignature: "sig"}
	tests := []struct {
		name     string
		resp     restapi.PaymentResponse
		req      VerifyRequest
		wantID   string
		wantFail bool
	}{
		{name: "success uses backend id", resp: restapi.PaymentResponse{Success: true, PaymentID: "pay_backend"}, req: req, wantID: "pay_backend"},
		{name: "success falls back to gateway id", resp: restapi.PaymentResponse{Success: true}, req: req, wantID: "pay_1"},
		{name: "success false", resp: restapi.PaymentResponse{Success: false, Message: "Signature mismatch"}, req: req, wantFail: true},
		{name: "missing signature", resp: restapi.PaymentResponse{Success: true}, req: VerifyRequest{OrderID: "55", RazorpayPaymentID: "pay_1"}, wantFail: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := &fakeGateway{verified: tc.resp}
			id, err := newService(g, testKey).verify(context.Background(), tc.req)
			if tc.wantFail {
				if err == nil {
					t.Fatalf("expected failure")
				}
				return
			}
			if err != nil || id != tc.wantID {
				t.Fatalf("verify() = %q, %v; want %q", id, err, tc.wantID)
			}
		})
	}
}

func TestDocumentDefaultsFilenameAndType(t *testing.T) {
	t.Parallel()

	g := &fakeGateway{orders: []restapi.Order{pendingOrder()}, doc: restapi.Document{Data: []byte("%PDF")}}
	doc, err := newService(g, testKey).document(context.Background(), "42", "55", "invoice")
	if err != nil {
		t.Fatalf("document() error = %v", err)
	}
	if doc.Filename != "JavaBite-Invoice-Order-55.pdf" || doc.ContentType != "application/pdf" {
		t.Fatalf("doc = %+v", doc)
	}
	if _, err := newService(g, testKey).document(context.Background(), "42", "55", "menu"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("unknown document error = %v", err)
	}
}
