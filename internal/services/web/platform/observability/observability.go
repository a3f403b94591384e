// Package observability provides request logging middleware for the web server.
package observability

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger logs one line per request with method, path, status, bytes,
// latency and request id. HTMX requests, which include the polled order
// boards, are tagged hx=true.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s hx=%t",
				r.Method,
				r.URL.Path,
				status,
				rec.bytes,
				time.Since(start).Round(time.Microsecond),
				httpx.RequestIDFrom(r),
				httpx.IsHTMXRequest(r),
			)
		})
	}
}
