// Package sessioncookie reads and writes the cookie that carries the web
// session id.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
)

const Name = "javabite_session"

// Read returns the session id, ignoring blank values.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	c, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(c.Value)
	return id, id != ""
}

// Write stores sessionID. A zero ttl leaves it a browser-session cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, ttl time.Duration, policy requestmeta.SchemePolicy) {
	maxAge := 0
	if ttl > 0 {
		maxAge = int(ttl / time.Second)
	}
	set(w, r, strings.TrimSpace(sessionID), maxAge, policy)
}

// Clear expires the cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	set(w, r, "", -1, policy)
}

func set(w http.ResponseWriter, r *http.Request, value string, maxAge int, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
