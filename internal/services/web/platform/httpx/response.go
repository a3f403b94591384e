package httpx

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

var errNoWriter = errors.New("response writer is required")

// MethodNotAllowed answers 405 and advertises the accepted methods.
func MethodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", strings.TrimSpace(allow))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// RequestContext is r.Context(), or Background for a nil request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether htmx issued the request.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get("HX-Request") == "true"
}

// FormValue returns the trimmed form or query value for key.
func FormValue(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.FormValue(key))
}

func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return errNoWriter
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// WriteAttachment sends payload as a download named filename.
func WriteAttachment(w http.ResponseWriter, filename string, contentType string, payload []byte) error {
	if w == nil {
		return errNoWriter
	}
	if contentType = strings.TrimSpace(contentType); contentType == "" {
		contentType = "application/octet-stream"
	}
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	h.Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(payload)
	return err
}

// WriteRedirect sends htmx an HX-Redirect header and everyone else a 303,
// so a POST always lands on a GET.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	switch {
	case w == nil:
	case IsHTMXRequest(r):
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusOK)
	case r == nil:
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusSeeOther)
	default:
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}
