package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/louisbranch/javabite/internal/services/web/cart"
	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/storage"
)

type fakeGateway struct {
	mu sync.Mutex

	booking    *restapi.Booking
	bookingErr error
	tables     []restapi.Table
	tablesErr  error
	bookErr    error
	cancelErr  error
	menu       []restapi.MenuItem
	menuErr    error
	menuCalls  int
	orders     []restapi.Order
	ordersErr  error
	placed     restapi.Order
	placeErr   error
	user       restapi.User
	profileErr error
	saveErr    error
	feedback   []restapi.Feedback
	feedErr    error
	submitErr  error

	lastQuery    TableQuery
	lastBooking  BookingRequest
	cancelled    []string
	lastOrder    OrderRequest
	lastProfile  ProfileInput
	lastFeedback FeedbackInput
}

func (f *fakeGateway) ActiveBooking(context.Context, string) (*restapi.Booking, error) {
	return f.booking, f.bookingErr
}

func (f *fakeGateway) AvailableTables(_ context.Context, query TableQuery) ([]restapi.Table, error) {
	f.lastQuery = query
	return f.tables, f.tablesErr
}

func (f *fakeGateway) BookTable(_ context.Context, req BookingRequest) error {
	f.lastBooking = req
	return f.bookErr
}

func (f *fakeGateway) CancelBooking(_ context.Context, bookingID string) error {
	f.cancelled = append(f.cancelled, bookingID)
	return f.cancelErr
}

func (f *fakeGateway) Menu(context.Context) ([]restapi.MenuItem, error) {
	f.mu.Lock()
	f.menuCalls++
	f.mu.Unlock()
	return f.menu, f.menuErr
}

func (f *fakeGateway) Orders(context.Context, string) ([]restapi.Order, error) {
	return append([]restapi.Order(nil), f.orders...), f.ordersErr
}

func (f *fakeGateway) PlaceOrder(_ context.Context, req OrderRequest) (restapi.Order, error) {
	f.lastOrder = req
	return f.placed, f.placeErr
}

func (f *fakeGateway) Profile(context.Context, string) (restapi.User, error) {
	return f.user, f.profileErr
}

func (f *fakeGateway) SaveProfile(_ context.Context, _ string, input ProfileInput) (restapi.User, error) {
	f.lastProfile = input
	return restapi.User{Name: input.Name, Email: input.Email}, f.saveErr
}

func (f *fakeGateway) SubmitFeedback(_ context.Context, input FeedbackInput) error {
	f.lastFeedback = input
	return f.submitErr
}

func (f *fakeGateway) FeedbackHistory(context.Context) ([]restapi.Feedback, error) {
	return f.feedback, f.feedErr
}

type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]storage.CartLine
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: map[string][]storage.CartLine{}}
}

func (s *memoryCartStore) GetCart(_ context.Context, sessionID string) ([]storage.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.CartLine(nil), s.carts[sessionID]...), nil
}

func (s *memoryCartStore) PutCart(_ context.Context, sessionID string, lines []storage.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = lines
	return nil
}

func (s *memoryCartStore) DeleteCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// fakeAPI records requests and answers with canned JSON.
type fakeAPI struct {
	requests  []restapi.Request
	responses map[string]string
	err       error
}

func (f *fakeAPI) Do(_ context.Context, req restapi.Request, out any) error {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return f.err
	}
	body, ok := f.responses[req.Method+" "+req.Path]
	if !ok || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeAPI) last() restapi.Request {
	if len(f.requests) == 0 {
		return restapi.Request{}
	}
	return f.requests[len(f.requests)-1]
}

const testUserID = "42"

func testSessionID() string {
	return "session-" + testUserID
}

func mountWith(g Gateway, carts *cart.Repository) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(g, carts, nil), modulehandler.NewTestBase(testUserID, module.RoleCustomer)))
	return mux
}

func available(value bool) *bool {
	return &value
}
