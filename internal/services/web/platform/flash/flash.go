// Package flash carries a single notice across a post/redirect/get cycle.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
)

// CookieName holds the encoded notice between the redirect and the render.
const CookieName = "jb_flash"

// maxMessageRunes bounds free-text backend messages carried in the cookie.
const maxMessageRunes = 280

// Kind picks the banner style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

var knownKinds = map[Kind]bool{KindSuccess: true, KindInfo: true, KindWarning: true, KindError: true}

// Notice is one banner. Key is a localization key; Message is an optional
// literal, usually the backend's explanation, shown after it.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Key     string `json:"key"`
	Message string `json:"message,omitempty"`
}

func NoticeSuccess(key string) Notice { return Notice{Kind: KindSuccess, Key: key} }

func NoticeError(key string, message string) Notice {
	return Notice{Kind: KindError, Key: key, Message: message}
}

// clean trims the notice and reports whether it is worth showing.
func (n Notice) clean() (Notice, bool) {
	n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
	n.Key = strings.TrimSpace(n.Key)
	n.Message = strings.TrimSpace(n.Message)
	if utf8.RuneCountInString(n.Message) > maxMessageRunes {
		n.Message = string([]rune(n.Message)[:maxMessageRunes])
	}
	if !knownKinds[n.Kind] || (n.Key == "" && n.Message == "") {
		return Notice{}, false
	}
	return n, true
}

// Write sets the notice cookie for the next page render. Empty or unknown
// notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	notice, ok := notice.clean()
	if !ok {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	c := cookie(r, policy)
	c.Value = base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, c)
}

// ReadAndClear returns the pending notice, expiring the cookie even when
// its value cannot be decoded.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	stored, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		expired := cookie(r, requestmeta.SchemePolicy{})
		expired.MaxAge = -1
		http.SetCookie(w, expired)
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(stored.Value))
	if err != nil || len(raw) == 0 {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(raw, &notice); err != nil {
		return Notice{}, false
	}
	return notice.clean()
}

func cookie(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
