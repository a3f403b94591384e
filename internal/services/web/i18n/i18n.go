// Package i18n provides locale resolution and the message catalog for the
// web service.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "jb_lang"
)

var (
	supported = []language.Tag{language.English}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag matches raw against the supported languages.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[index], false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
