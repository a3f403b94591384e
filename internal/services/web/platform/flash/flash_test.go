package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
)

func roundTrip(t *testing.T, notice Notice) (Notice, bool) {
	t.Helper()
	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodPost, "http://cafe.example.test/customer/feedback", nil), notice, requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		return Notice{}, false
	}
	req := httptest.NewRequest(http.MethodGet, "http://cafe.example.test/customer/feedback", nil)
	req.AddCookie(cookies[0])
	return ReadAndClear(httptest.NewRecorder(), req)
}

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	got, ok := roundTrip(t, NoticeError(" web.feedback.failed ", " Rating is required "))
	if !ok {
		t.Fatal("expected notice")
	}
	want := Notice{Kind: KindError, Key: "web.feedback.failed", Message: "Rating is required"}
	if got != want {
		t.Fatalf("notice = %#v, want %#v", got, want)
	}
}

func TestWriteSkipsInvalidNotices(t *testing.T) {
	t.Parallel()

	tests := []Notice{
		{Kind: KindSuccess},
		{Kind: "celebration", Key: "web.x"},
	}
	for _, notice := range tests {
		rr := httptest.NewRecorder()
		Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), notice, requestmeta.SchemePolicy{})
		if rr.Header().Get("Set-Cookie") != "" {
			t.Fatalf("notice %#v should not be written", notice)
		}
	}
}

func TestWriteTruncatesLongMessages(t *testing.T) {
	t.Parallel()

	got, ok := roundTrip(t, Notice{Kind: KindWarning, Message: strings.Repeat("é", maxMessageRunes+20)})
	if !ok {
		t.Fatal("expected notice")
	}
	if n := len([]rune(got.Message)); n != maxMessageRunes {
		t.Fatalf("message runes = %d, want %d", n, maxMessageRunes)
	}
}

func TestReadAndClearAlwaysExpiresCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	rr := httptest.NewRecorder()
	if _, ok := ReadAndClear(rr, req); ok {
		t.Fatal("corrupt cookie should not decode")
	}
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("parse cookie: %v", err)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want expired", cookie.MaxAge)
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	t.Parallel()

	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("expected no notice")
	}
	if _, ok := ReadAndClear(nil, nil); ok {
		t.Fatal("expected no notice for nil request")
	}
}
