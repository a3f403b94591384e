package adminauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
	"github.com/louisbranch/javabite/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

type fakeGateway struct {
	principal    session.Principal
	loginErr     error
	lastRegister session.RegisterInput
}

func (f *fakeGateway) LoginAdmin(context.Context, string, string) (session.Principal, error) {
	if f.loginErr != nil {
		return session.Principal{}, f.loginErr
	}
	return f.principal, nil
}

func (f *fakeGateway) Register(_ context.Context, input session.RegisterInput) error {
	f.lastRegister = input
	return nil
}

func (f *fakeGateway) TTL() time.Duration { return time.Hour }

func newTestHandler(g Gateway) http.Handler {
	mount, err := New(WithGateway(g), WithBase(publichandler.NewBase())).Mount()
	if err != nil {
		panic(err)
	}
	return mount.Handler
}

func TestMountUsesAdminAuthPrefix(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.AdminAuthPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	if New().Healthy() {
		t.Fatalf("module without gateway should be unhealthy")
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeGateway{})
	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: routepath.AdminAuthPrefix, wantStatus: http.StatusSeeOther},
		{path: routepath.AdminAuthLogin, wantStatus: http.StatusOK, wantBody: `action="/admin/auth/login"`},
		{path: routepath.AdminAuthRegister, wantStatus: http.StatusOK, wantBody: `action="/admin/auth/register"`},
		{path: routepath.AdminAuthPrefix + "other", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, tc.wantStatus)
		}
		if tc.wantBody != "" && !strings.Contains(rr.Body.String(), tc.wantBody) {
			t.Fatalf("%s body missing %q", tc.path, tc.wantBody)
		}
	}
}

func TestAdminLoginOpensSessionAndGoesToDashboard(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeGateway{principal: session.Principal{SessionID: "adm-1", Role: module.RoleAdmin}})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, formRequest(routepath.AdminAuthLogin, url.Values{"email": {"root@example.com"}, "password": {"secret"}}))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.AdminDashboard {
		t.Fatalf("login = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	found := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessioncookie.Name && c.Value == "adm-1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("session cookie not set")
	}
}

func TestAdminLoginRefusesOtherRoles(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeGateway{loginErr: apperrors.EK(apperrors.KindForbidden, "error.web.message.admin_portal_only", "Access denied: this portal is for administrators only")})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, formRequest(routepath.AdminAuthLogin, url.Values{"email": {"chef@example.com"}, "password": {"secret"}}))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "administrators only") {
		t.Fatalf("body missing portal message: %s", rr.Body.String())
	}
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessioncookie.Name {
			t.Fatalf("refused login must not set session cookie")
		}
	}
}

func TestAdminRegisterSendsAdminRole(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	h := newTestHandler(gateway)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, formRequest(routepath.AdminAuthRegister, url.Values{
		"name": {"Root"}, "email": {"root@example.com"}, "password": {"secret1"}, "confirmPassword": {"secret1"},
	}))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.AdminAuthLogin {
		t.Fatalf("register = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if gateway.lastRegister.Role != "ADMIN" {
		t.Fatalf("role = %q, want ADMIN", gateway.lastRegister.Role)
	}
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
