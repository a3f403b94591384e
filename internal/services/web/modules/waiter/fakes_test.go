package waiter

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

type fakeGateway struct {
	orders    []restapi.Order
	ordersErr error
	tables    []restapi.Table
	tablesErr error
	updateErr error

	updates []string
}

func (f *fakeGateway) Orders(context.Context) ([]restapi.Order, error) {
	return f.orders, f.ordersErr
}

func (f *fakeGateway) Tables(context.Context) ([]restapi.Table, error) {
	return f.tables, f.tablesErr
}

func (f *fakeGateway) UpdateStatus(_ context.Context, orderID, status string) error {
	f.updates = append(f.updates, orderID+":"+status)
	return f.updateErr
}

type fakePasswords struct {
	calls [][3]string
	err   error
}

func (f *fakePasswords) ChangePassword(_ context.Context, current, password, confirm string) error {
	f.calls = append(f.calls, [3]string{current, password, confirm})
	return f.err
}

// fakeAPI answers by "METHOD path" and fails paths listed in errs.
type fakeAPI struct {
	requests  []restapi.Request
	responses map[string]string
	errs      map[string]error
}

func (f *fakeAPI) Do(_ context.Context, req restapi.Request, out any) error {
	key := req.Method + " " + req.Path
	f.requests = append(f.requests, req)
	if err, ok := f.errs[key]; ok {
		return err
	}
	body, ok := f.responses[key]
	if !ok || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func mountWith(g Gateway, passwords PasswordChanger) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(g, passwords), modulehandler.NewTestBase("8", module.RoleWaiter), 30))
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
