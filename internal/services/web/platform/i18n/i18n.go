// Package i18n resolves request localizers for web handlers and templates.
package i18n

import (
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/javabite/internal/services/web/i18n"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveTag resolves request language with the resolver's preference first.
func ResolveTag(r *http.Request, resolveLanguage func(*http.Request) string) language.Tag {
	if resolveLanguage != nil {
		if tag, ok := webi18n.ParseTag(resolveLanguage(r)); ok {
			return tag
		}
	}
	tag, _ := webi18n.ResolveTag(r)
	return tag
}

// EnsureLanguageCookie syncs the language cookie to the resolved tag.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	if w == nil {
		return
	}
	expected := strings.TrimSpace(tag.String())
	if expected == "" {
		return
	}
	if r != nil {
		if cookie, err := r.Cookie(webi18n.LangCookieName); err == nil && strings.TrimSpace(cookie.Value) == expected {
			return
		}
	}
	webi18n.SetLanguageCookie(w, tag)
}

// ResolveLocalizer resolves a localized printer and language string for a request.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag := ResolveTag(r, resolveLanguage)
	EnsureLanguageCookie(w, r, tag)
	return webi18n.Printer(tag), tag.String()
}

// LocalizeError resolves the text shown for err: the catalog entry for its
// key, the backend's explanation for client errors, or a generic status text.
func LocalizeError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" && loc != nil {
		if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
			return localized
		}
	}
	if msg := apperrors.DisplayMessage(err); msg != "" {
		return msg
	}
	status := apperrors.HTTPStatus(err)
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return http.StatusText(status)
}
