package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/javabite/internal/services/web/module"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
)

type chefResolver struct{}

func (chefResolver) ResolveRequestViewer(*http.Request) module.Viewer {
	return module.Viewer{UserID: "3", DisplayName: "Ravi", Role: module.RoleChef}
}

func (chefResolver) ResolveRequestLanguage(*http.Request) string { return "en" }

type html string

func (c html) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

const board = html(`<section id="board">ok</section>`)

func withFlash(t *testing.T, req *http.Request, notice flashnotice.Notice) *http.Request {
	t.Helper()
	rr := httptest.NewRecorder()
	flashnotice.Write(rr, req, notice, requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("flash cookies = %d, want 1", len(cookies))
	}
	req.AddCookie(cookies[0])
	return req
}

func setsCookie(rr *httptest.ResponseRecorder, name string) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return true
		}
	}
	return false
}

func TestWriteModulePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		htmx        bool
		flash       *flashnotice.Notice
		resolver    RequestResolver
		status      int
		wantStatus  int
		want        []string
		notWant     []string
		clearsFlash bool
	}{
		{
			name:       "htmx gets main region only",
			path:       "/customer/orders",
			htmx:       true,
			status:     http.StatusCreated,
			wantStatus: http.StatusCreated,
			want:       []string{`id="board"`},
			notWant:    []string{"<html", "<!doctype"},
		},
		{
			name:       "full page wraps the shell",
			path:       "/chef/orders",
			resolver:   chefResolver{},
			wantStatus: http.StatusOK,
			want:       []string{`id="main"`, `id="board"`, `href="/chef/orders" class="active"`, "Ravi"},
		},
		{
			name:        "full page shows and clears flash",
			path:        "/customer/profile",
			flash:       &flashnotice.Notice{Kind: flashnotice.KindError, Message: "Email already in use"},
			wantStatus:  http.StatusOK,
			want:        []string{`id="app-toast"`, "toast-error", "Email already in use"},
			clearsFlash: true,
		},
		{
			name:       "htmx leaves flash for the next full page",
			path:       "/customer/profile",
			htmx:       true,
			flash:      &flashnotice.Notice{Kind: flashnotice.KindError, Message: "Email already in use"},
			wantStatus: http.StatusOK,
			notWant:    []string{`id="app-toast"`},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			if tc.flash != nil {
				req = withFlash(t, req, *tc.flash)
			}
			rr := httptest.NewRecorder()
			if err := WriteModulePage(rr, req, tc.resolver, ModulePage{Title: "Orders", StatusCode: tc.status, Fragment: board}); err != nil {
				t.Fatalf("WriteModulePage() error = %v", err)
			}
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
				t.Fatalf("Content-Type = %q", got)
			}
			body := strings.ToLower(rr.Body.String())
			for _, m := range tc.want {
				if !strings.Contains(body, strings.ToLower(m)) {
					t.Fatalf("body missing %q: %s", m, rr.Body.String())
				}
			}
			for _, m := range tc.notWant {
				if strings.Contains(body, strings.ToLower(m)) {
					t.Fatalf("body unexpectedly has %q", m)
				}
			}
			if got := setsCookie(rr, flashnotice.CookieName); got != tc.clearsFlash {
				t.Fatalf("flash cleared = %v, want %v", got, tc.clearsFlash)
			}
		})
	}
}

func TestWriteFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteFragment(rr, httptest.NewRequest(http.MethodPost, "/customer/cart/add", nil), 0, html(`<section id="cart"></section>`)); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusOK || rr.Body.String() != `<section id="cart"></section>` {
		t.Fatalf("fragment = %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	if err := WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusAccepted, nil); err != nil {
		t.Fatalf("WriteFragment(nil) error = %v", err)
	}
	if rr.Code != http.StatusAccepted || rr.Body.Len() != 0 {
		t.Fatalf("nil fragment = %d %q", rr.Code, rr.Body.String())
	}
}

func TestWritePublicPageUsesAuthLayout(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WritePublicPage(rr, httptest.NewRequest(http.MethodGet, "/login", nil), "Sign In", http.StatusUnauthorized, html(`<form id="login"></form>`))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rr.Code)
	}
	for _, m := range []string{`<title>Sign In | JavaBite</title>`, `class="auth"`, `id="login"`} {
		if !strings.Contains(rr.Body.String(), m) {
			t.Fatalf("body missing %q: %s", m, rr.Body.String())
		}
	}
}
