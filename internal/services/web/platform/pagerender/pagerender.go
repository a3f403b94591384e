// Package pagerender turns templ components into full pages or htmx swaps.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/module"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/javabite/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

// RequestResolver resolves viewer and language state from a request.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage is one signed-in page. htmx requests get only the main
// region; everything else gets the app shell around it.
type ModulePage struct {
	Title      string
	StatusCode int
	Header     *webtemplates.AppMainHeader
	Layout     webtemplates.AppMainLayoutOptions
	Fragment   templ.Component
}

// WriteModulePage renders page. The flash cookie is only consumed by full
// page loads.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	var (
		viewer      module.Viewer
		resolveLang module.ResolveLanguage
	)
	if resolver != nil {
		viewer = resolver.ResolveRequestViewer(r)
		resolveLang = resolver.ResolveRequestLanguage
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLang)

	var view templ.Component
	if httpx.IsHTMXRequest(r) {
		view = webtemplates.AppMainContentWithLayout(page.Header, page.Layout)
	} else {
		path := ""
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		view = webtemplates.AppLayout(webtemplates.LayoutOptions{
			Title:       page.Title,
			Lang:        lang,
			AppName:     webtemplates.AppName,
			Loc:         loc,
			CurrentPath: path,
			Viewer:      viewer,
			Toast:       takeToast(w, r, loc),
		}, page.Header, page.Layout)
	}
	return render(w, r, page.StatusCode, view, page.Fragment)
}

// WriteFragment renders a single swap target such as the cart panel or a
// polled board.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = templ.NopComponent
	}
	return render(w, r, statusCode, fragment, nil)
}

// WritePublicPage renders body inside the signed-out layout. Render
// failures answer a bare 500.
func WritePublicPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	if w == nil {
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	view := webtemplates.AuthLayout(title, lang, loc, takeToast(w, r, loc))
	if err := render(w, r, statusCode, view, body); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// render buffers view so a template error never leaves a half-written page.
func render(w http.ResponseWriter, r *http.Request, status int, view, children templ.Component) error {
	if status <= 0 {
		status = http.StatusOK
	}
	if children == nil {
		children = templ.NopComponent
	}
	var buf bytes.Buffer
	if err := view.Render(templ.WithChildren(httpx.RequestContext(r), children), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, status, buf.String())
}

// takeToast consumes the pending flash notice. A localized key and a
// backend message are joined as "key text: message".
func takeToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.AppToast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	var parts []string
	if notice.Key != "" {
		if text := strings.TrimSpace(loc.Sprintf(notice.Key)); text != "" && (text != notice.Key || notice.Message == "") {
			parts = append(parts, text)
		}
	}
	if notice.Message != "" {
		parts = append(parts, notice.Message)
	}
	if len(parts) == 0 {
		return nil
	}
	return &webtemplates.AppToast{Kind: string(notice.Kind), Message: strings.Join(parts, ": ")}
}
