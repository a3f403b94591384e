package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatal("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://cafe.example.test", nil)
	if _, ok := Read(req); ok {
		t.Fatal("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  ws-1  "})
	value, ok := Read(req)
	if !ok || value != "ws-1" {
		t.Fatalf("Read() = (%q, %v), want (%q, true)", value, ok, "ws-1")
	}
}

func TestReadBlankValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://cafe.example.test", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "   "})
	if _, ok := Read(req); ok {
		t.Fatal("blank cookie should be treated as missing")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "https://cafe.example.test", nil), " ws-1 ", time.Hour, requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("parse cookie: %v", err)
	}
	if cookie.Name != Name || cookie.Value != "ws-1" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie flags = httponly:%v secure:%v samesite:%v", cookie.HttpOnly, cookie.Secure, cookie.SameSite)
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("MaxAge = %d, want 3600", cookie.MaxAge)
	}
}

func TestWriteInsecureRequestWithoutTTL(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "http://cafe.example.test", nil), "ws-1", 0, requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("parse cookie: %v", err)
	}
	if cookie.Secure {
		t.Fatal("plain http cookie should not be secure")
	}
	if cookie.MaxAge != 0 {
		t.Fatalf("MaxAge = %d, want 0", cookie.MaxAge)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "http://cafe.example.test", nil), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("parse cookie: %v", err)
	}
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Fatalf("cookie not expired: value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}
