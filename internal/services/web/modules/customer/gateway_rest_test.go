package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/louisbranch/javabite/internal/services/web/cart"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

func TestNewRESTGatewayWithoutAPIIsUnavailable(t *testing.T) {
	t.Parallel()

	if _, ok := NewRESTGateway(nil).(unavailableGateway); !ok {
		t.Fatalf("expected unavailable gateway")
	}
}

func TestActiveBookingTreatsMissingAsNone(t *testing.T) {
	t.Parallel()

	tests := map[string]*fakeAPI{
		"not found": {err: apperrors.FromUpstreamStatus(http.StatusNotFound, "")},
		"empty":     {responses: map[string]string{"GET /customer/booking/active/42": `{}`}},
	}
	for name, api := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			booking, err := NewRESTGateway(api).ActiveBooking(context.Background(), "42")
			if err != nil || booking != nil {
				t.Fatalf("ActiveBooking() = %+v, %v", booking, err)
			}
		})
	}
}

func TestActiveBookingPropagatesOtherFailures(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{err: apperrors.FromUpstreamStatus(http.StatusBadGateway, "")}
	if _, err := NewRESTGateway(api).ActiveBooking(context.Background(), "42"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBookTablePayload(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	err := NewRESTGateway(api).BookTable(context.Background(), BookingRequest{
		UserID: "42", TableID: "3", Date: "2026-05-01", Slot: "EVENING", Guests: 2, SpecialRequests: "quiet",
	})
	if err != nil {
		t.Fatalf("BookTable() error = %v", err)
	}
	req := api.last()
	if req.Method != http.MethodPost || req.Path != "/customer/book" {
		t.Fatalf("request = %s %s", req.Method, req.Path)
	}
	body, _ := json.Marshal(req.Body)
	want := `{"user":{"id":42},"table":{"id":3},"numberOfGuests":2,"duration":2,"bookingDate":"2026-05-01","slot":"EVENING","specialRequests":"quiet"}`
	if string(body) != want {
		t.Fatalf("body = %s\nwant %s", body, want)
	}
}

func TestAvailableTablesQuery(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{responses: map[string]string{"GET /customer/tables/available": `[{"id":1,"tableNumber":"T1","capacity":4,"status":"AVAILABLE"}]`}}
	tables, err := NewRESTGateway(api).AvailableTables(context.Background(), TableQuery{Date: "2026-05-01", Slot: "NIGHT", Guests: 3})
	if err != nil || len(tables) != 1 || tables[0].TableNumber != "T1" {
		t.Fatalf("AvailableTables() = %+v, %v", tables, err)
	}
	if got := api.last().Query.Encode(); got != "date=2026-05-01&guests=3&slot=NIGHT" {
		t.Fatalf("query = %q", got)
	}
}

func TestPlaceOrderPayload(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{responses: map[string]string{"POST /customer/order": `{"id":77,"status":"PENDING","totalAmount":240}`}}
	order, err := NewRESTGateway(api).PlaceOrder(context.Background(), OrderRequest{
		UserID:              "42",
		SpecialInstructions: "less ice",
		Lines:               []cart.Line{{MenuItemID: "7", Name: "Latte", Price: money("120"), Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if order.ID != "77" {
		t.Fatalf("order id = %s", order.ID)
	}
	body, _ := json.Marshal(api.last().Body)
	want := `{"userId":42,"specialInstructions":"less ice","orderItems":[{"menuItemId":7,"quantity":2,"specialInstructions":""}]}`
	if string(body) != want {
		t.Fatalf("body = %s\nwant %s", body, want)
	}
}

func TestSubmitFeedbackOrderIDIsNullWhenMissing(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	if err := NewRESTGateway(api).SubmitFeedback(context.Background(), FeedbackInput{Rating: 4, Category: "SERVICE", Comment: "ok"}); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	body, _ := json.Marshal(api.last().Body)
	if !strings.Contains(string(body), `"orderId":null`) {
		t.Fatalf("body = %s", body)
	}
	if api.last().Path != "/feedback" {
		t.Fatalf("path = %s", api.last().Path)
	}
}

func TestCancelBookingPath(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	if err := NewRESTGateway(api).CancelBooking(context.Background(), "11"); err != nil {
		t.Fatalf("CancelBooking() error = %v", err)
	}
	if req := api.last(); req.Method != http.MethodPut || req.Path != "/customer/booking/11/cancel" {
		t.Fatalf("request = %s %s", req.Method, req.Path)
	}
}
