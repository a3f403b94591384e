package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	webstorage "github.com/louisbranch/javabite/internal/services/web/storage"
)

type savedMenuItem struct {
	itemID string
	input  MenuItemInput
}

type fakeGateway struct {
	stats        restapi.DashboardStats
	statsErr     error
	feedbackSt   restapi.FeedbackStats
	feedbackStEr error
	staffList    []restapi.User
	createErr    error
	menu         []restapi.MenuItem
	saveMenuErr  error
	orders       []restapi.Order
	customers    []restapi.User
	tables       []restapi.Table
	saveTableErr error
	feedback     []restapi.Feedback
	feedbackErr  error

	createdStaff  []StaffInput
	deletedStaff  []string
	savedMenu     []savedMenuItem
	deletedMenu   []string
	savedTables   []restapi.Table
	deletedTables []string
	feedbackQuery []FeedbackFilter
}

func (f *fakeGateway) DashboardStats(context.Context) (restapi.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeGateway) FeedbackStats(context.Context) (restapi.FeedbackStats, error) {
	return f.feedbackSt, f.feedbackStEr
}

func (f *fakeGateway) Staff(context.Context) ([]restapi.User, error) {
	return f.staffList, nil
}

func (f *fakeGateway) CreateStaff(_ context.Context, input StaffInput) error {
	f.createdStaff = append(f.createdStaff, input)
	return f.createErr
}

func (f *fakeGateway) DeleteStaff(_ context.Context, staffID string) error {
	f.deletedStaff = append(f.deletedStaff, staffID)
	return nil
}

func (f *fakeGateway) Menu(context.Context) ([]restapi.MenuItem, error) {
	return f.menu, nil
}

func (f *fakeGateway) SaveMenuItem(_ context.Context, itemID string, input MenuItemInput) error {
	f.savedMenu = append(f.savedMenu, savedMenuItem{itemID: itemID, input: input})
	return f.saveMenuErr
}

func (f *fakeGateway) DeleteMenuItem(_ context.Context, itemID string) error {
	f.deletedMenu = append(f.deletedMenu, itemID)
	return nil
}

func (f *fakeGateway) Orders(context.Context) ([]restapi.Order, error) {
	return f.orders, nil
}

func (f *fakeGateway) Customers(context.Context) ([]restapi.User, error) {
	return f.customers, nil
}

func (f *fakeGateway) Tables(context.Context) ([]restapi.Table, error) {
	return f.tables, nil
}

func (f *fakeGateway) SaveTable(_ context.Context, table restapi.Table) error {
	f.savedTables = append(f.savedTables, table)
	return f.saveTableErr
}

func (f *fakeGateway) DeleteTable(_ context.Context, tableID string) error {
	f.deletedTables = append(f.deletedTables, tableID)
	return nil
}

func (f *fakeGateway) Feedback(_ context.Context, filter FeedbackFilter) ([]restapi.Feedback, error) {
	f.feedbackQuery = append(f.feedbackQuery, filter)
	return f.feedback, f.feedbackErr
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

func (f *fakeAPI) last() restapi.Request {
	if len(f.requests) == 0 {
		return restapi.Request{}
	}
	return f.requests[len(f.requests)-1]
}

type fakeCacheStore struct {
	deleted []string
}

func (f *fakeCacheStore) GetCacheEntry(context.Context, string) (webstorage.CacheEntry, bool, error) {
	return webstorage.CacheEntry{}, false, nil
}

func (f *fakeCacheStore) PutCacheEntry(context.Context, webstorage.CacheEntry) error {
	return nil
}

func (f *fakeCacheStore) DeleteCacheEntry(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func mountWith(g Gateway) http.Handler {
	mux := http.NewServeMux()
	h := newHandlers(newService(g, nil), modulehandler.NewTestBase("1", module.RoleAdmin), pollSeconds{dashboard: 30, orders: 5})
	registerRoutes(mux, h)
	return mux
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type upload struct {
	filename    string
	contentType string
	data        []byte
}

func postMultipart(h http.Handler, path string, fields map[string]string, file *upload) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, value := range fields {
		_ = mw.WriteField(name, value)
	}
	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+file.filename+`"`)
		header.Set("Content-Type", file.contentType)
		part, _ := mw.CreatePart(header)
		_, _ = part.Write(file.data)
	}
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
