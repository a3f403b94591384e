package chef

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
)

type statusUpdate struct {
	orderID string
	status  string
}

type fakeGateway struct {
	orders     []restapi.Order
	ordersErr  error
	updateErr  error
	user       restapi.User
	profileErr error
	saveErr    error

	updates []statusUpdate
	saved   []ProfileInput
}

func (f *fakeGateway) Orders(context.Context) ([]restapi.Order, error) {
	return f.orders, f.ordersErr
}

func (f *fakeGateway) UpdateStatus(_ context.Context, orderID, status string) error {
	f.updates = append(f.updates, statusUpdate{orderID: orderID, status: status})
	return f.updateErr
}

func (f *fakeGateway) Profile(context.Context, string) (restapi.User, error) {
	return f.user, f.profileErr
}

func (f *fakeGateway) SaveProfile(_ context.Context, _ string, input ProfileInput) (restapi.User, error) {
	f.saved = append(f.saved, input)
	return restapi.User{Name: input.Name, Email: input.Email}, f.saveErr
}

type fakeAPI struct {
	requests  []restapi.Request
	responses map[string]string
}

func (f *fakeAPI) Do(_ context.Context, req restapi.Request, out any) error {
	f.requests = append(f.requests, req)
	body, ok := f.responses[req.Method+" "+req.Path]
	if !ok || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

const testUserID = "7"

func mountWith(g Gateway) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(g), modulehandler.NewTestBase(testUserID, module.RoleChef), 15))
	return mux
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func postForm(h http.Handler, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
