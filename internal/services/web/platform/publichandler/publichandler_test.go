package publichandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

func viewerOf(v module.Viewer) Option {
	return WithResolveViewer(func(*http.Request) module.Viewer { return v })
}

func TestIsViewerSignedIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want bool
	}{
		{name: "no resolvers", want: false},
		{name: "display name alone is anonymous", opts: []Option{viewerOf(module.Viewer{DisplayName: "Asha"})}},
		{name: "chef viewer", opts: []Option{viewerOf(module.Viewer{UserID: "4", Role: module.RoleChef})}, want: true},
		{
			name: "signed-in resolver wins over viewer",
			opts: []Option{
				viewerOf(module.Viewer{}),
				WithResolveViewerSignedIn(func(*http.Request) bool { return true }),
			},
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NewBase(tc.opts...).IsViewerSignedIn(httptest.NewRequest(http.MethodGet, "/", nil))
			if got != tc.want {
				t.Fatalf("IsViewerSignedIn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	waiter := viewerOf(module.Viewer{UserID: "1", Role: module.RoleWaiter})
	tests := []struct {
		name       string
		err        error
		wantStatus int
		want       string
	}{
		{name: "not found page links to role home", err: apperrors.E(apperrors.KindNotFound, "no such order"), wantStatus: http.StatusNotFound, want: `href="/waiter"`},
		{name: "server error page", err: apperrors.E(apperrors.KindUnknown, "boom"), wantStatus: http.StatusInternalServerError, want: `data-status="500"`},
		{name: "client error is plain text", err: apperrors.E(apperrors.KindInvalidInput, "email is required"), wantStatus: http.StatusBadRequest, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			NewBase(waiter).WriteError(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil), tc.err)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if !strings.Contains(rr.Body.String(), tc.want) {
				t.Fatalf("body missing %q: %s", tc.want, rr.Body.String())
			}
		})
	}
}

func TestWriteNotFoundDefaultsHomeForAnonymous(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), `href="/"`) {
		t.Fatalf("not found = %d %s", rr.Code, rr.Body.String())
	}
}
