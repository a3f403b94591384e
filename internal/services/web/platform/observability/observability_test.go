package observability

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		handler http.HandlerFunc
		wantLog []string
	}{
		{
			name:    "explicit status and request id",
			path:    "/customer/menu",
			headers: map[string]string{"X-Request-ID": "req-123"},
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantLog: []string{"method=GET", "path=/customer/menu", "status=204", "request_id=req-123", "hx=false"},
		},
		{
			name:    "implicit ok counts bytes",
			path:    "/up",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) },
			wantLog: []string{"status=200", "bytes=2", "latency=", "request_id=-"},
		},
		{
			name:    "board poll is tagged",
			path:    "/chef/orders/board",
			headers: map[string]string{"HX-Request": "true"},
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("<div></div>")) },
			wantLog: []string{"path=/chef/orders/board", "hx=true"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buffer bytes.Buffer
			h := RequestLogger(log.New(&buffer, "", 0))(tc.handler)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			line := buffer.String()
			for _, marker := range tc.wantLog {
				if !strings.Contains(line, marker) {
					t.Fatalf("log line missing %q: %q", marker, line)
				}
			}
		})
	}
}

func TestStatusRecorderUnwrap(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}
	if rec.Unwrap() != rr {
		t.Fatal("Unwrap() did not return the wrapped writer")
	}
}
