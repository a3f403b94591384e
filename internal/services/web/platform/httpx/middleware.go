// Package httpx holds the middleware chain and response helpers shared by
// the web modules.
package httpx

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"sync/atomic"

	"github.com/louisbranch/javabite/internal/platform/id"
)

const requestIDHeader = "X-Request-ID"

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

var fallbackRequestIDs atomic.Uint64

// Chain wraps h so the first middleware listed sees the request first.
// Nil entries are skipped.
func Chain(h http.Handler, middleware ...Middleware) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			h = mw(h)
		}
	}
	return h
}

// RequestID keeps an inbound X-Request-ID or assigns a fresh one, and echoes
// it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if rid == "" {
				rid = newRequestID()
				r.Header.Set(requestIDHeader, rid)
			}
			w.Header().Set(requestIDHeader, rid)
			next.ServeHTTP(w, r)
		})
	}
}

func newRequestID() string {
	if rid, err := id.NewID(); err == nil {
		return rid
	}
	return fmt.Sprintf("jb-%d", fallbackRequestIDs.Add(1))
}

// RequestIDFrom returns the id assigned by RequestID, or "-" when absent.
func RequestIDFrom(r *http.Request) string {
	if r != nil {
		if rid := strings.TrimSpace(r.Header.Get(requestIDHeader)); rid != "" {
			return rid
		}
	}
	return "-"
}

// RecoverPanic logs a handler panic with its stack and answers 500.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				log.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method, r.URL.Path, RequestIDFrom(r), p, strings.TrimSpace(string(debug.Stack())))
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
