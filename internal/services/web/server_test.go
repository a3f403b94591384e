package web

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

func newTestHandler(t *testing.T, store *memorySessionStore) http.Handler {
	t.Helper()

	cfg := Config{
		API:    fakeAPI{},
		Logger: log.New(io.Discard, "", 0),
	}
	if store != nil {
		cfg.Sessions = session.NewManager(fakeAPI{}, store, session.Options{Logger: log.New(io.Discard, "", 0)})
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestNewHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	for _, asset := range []string{"app.css", "payment.js"} {
		req := httptest.NewRequest(http.MethodGet, routepath.StaticPrefix+asset, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", asset, rr.Code, http.StatusOK)
		}
	}
}

func TestNewHandlerEchoesRequestID(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, routepath.Health, nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-42")
	}
}

func TestProtectedRoutesRedirectAnonymousVisitorsToLogin(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newMemorySessionStore())
	for _, path := range []string{
		routepath.CustomerMenu,
		routepath.ChefOrders,
		routepath.WaiterOrders,
		routepath.AdminDashboard,
		routepath.Payment("12"),
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != routepath.Login {
			t.Fatalf("GET %s location = %q, want %q", path, got, routepath.Login)
		}
	}
}

func TestProtectedRoutesRejectOtherRoles(t *testing.T) {
	t.Parallel()

	store := newMemorySessionStore()
	seedSession(t, store, "chef-session", "CHEF")
	h := newTestHandler(t, store)

	for _, path := range []string{routepath.AdminDashboard, routepath.WaiterOrders, routepath.CustomerMenu} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "chef-session"})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != routepath.Root {
			t.Fatalf("GET %s location = %q, want %q", path, got, routepath.Root)
		}
	}
}

func TestAdminAuthPagesStayPublic(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newMemorySessionStore())
	req := httptest.NewRequest(http.MethodGet, routepath.AdminAuthLogin, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d, want %d", routepath.AdminAuthLogin, rr.Code, http.StatusOK)
	}
}

func TestProtectedMutationRequiresSameOrigin(t *testing.T) {
	t.Parallel()

	store := newMemorySessionStore()
	seedSession(t, store, "chef-session", "CHEF")
	h := newTestHandler(t, store)

	req := httptest.NewRequest(http.MethodPost, "/chef/orders/5/status", strings.NewReader("status=READY"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "https://evil.example")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "chef-session"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin POST status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestPrincipalResolverResolvesOncePerRequest(t *testing.T) {
	t.Parallel()

	resolver := &countingResolver{
		principal: session.Principal{SessionID: "s1", Role: module.RoleWaiter},
		found:     true,
	}
	principal := newPrincipalResolver(resolver, log.New(io.Discard, "", 0))

	var viewer module.Viewer
	var sessionID string
	h := withRequestPrincipalState()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer = principal.resolveViewer(r)
		sessionID = principal.resolveSessionID(r)
		_ = principal.resolveRequestUserID(r)
		_ = principal.resolveContext(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "s1"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got := resolver.count(); got != 1 {
		t.Fatalf("Resolve calls = %d, want 1", got)
	}
	if viewer.Role != module.RoleWaiter {
		t.Fatalf("viewer role = %q, want %q", viewer.Role, module.RoleWaiter)
	}
	if sessionID != "s1" {
		t.Fatalf("session id = %q, want %q", sessionID, "s1")
	}
}

func TestPrincipalResolverTreatsErrorsAsSignedOut(t *testing.T) {
	t.Parallel()

	resolver := &countingResolver{err: errors.New("store down")}
	principal := newPrincipalResolver(resolver, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "s1"})
	if principal.resolveSignedIn(req) {
		t.Fatal("expected signed-out viewer on resolve error")
	}
	if got := principal.resolveContext(req); got != req.Context() {
		t.Fatal("expected unbound request context")
	}
}

func TestPrincipalResolverSkipsLookupWithoutCookie(t *testing.T) {
	t.Parallel()

	resolver := &countingResolver{found: true}
	principal := newPrincipalResolver(resolver, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := principal.resolveRequestUserID(req); got != "" {
		t.Fatalf("user id = %q, want empty", got)
	}
	if resolver.count() != 0 {
		t.Fatalf("Resolve calls = %d, want 0", resolver.count())
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestNilServerListenAndServe(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
