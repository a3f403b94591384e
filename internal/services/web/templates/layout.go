package templates

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// AppLayout renders the signed-in app shell around the context children.
func AppLayout(opts LayoutOptions, header *AppMainHeader, layout AppMainLayoutOptions) templ.Component {
	return component(func(h *htmlWriter) {
		writeDocumentHead(h, opts.Lang, PageTitle(opts.Title))
		h.raw(`<body class="app">`)
		h.raw(`<aside class="sidebar">`)
		h.raw(`<a class="brand"`)
		h.href(RoleHome(opts.Viewer.Role))
		h.raw(`>`)
		h.text(appName(opts.AppName))
		h.raw(`</a>`)
		if opts.Viewer.SignedIn() {
			h.raw(`<div class="viewer">`)
			h.element("span", "viewer-name", opts.Viewer.DisplayName)
			h.element("span", "badge badge-role", T(opts.Loc, roleLabelKey(opts.Viewer.Role)))
			h.raw(`</div>`)
		}
		h.raw(`<nav class="nav"><ul>`)
		for _, item := range NavItems(opts.Viewer.Role, opts.CurrentPath, opts.Loc) {
			h.raw(`<li><a`)
			h.href(item.Href)
			if item.Active {
				h.raw(` class="active" aria-current="page"`)
			}
			h.raw(`>`)
			h.text(item.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav>`)
		if opts.Viewer.SignedIn() {
			h.raw(`<form method="post" class="logout"`)
			h.attr("action", routepath.Logout)
			h.raw(`><button type="submit" class="btn btn-ghost">`)
			h.text(T(opts.Loc, "nav.logout"))
			h.raw(`</button></form>`)
		}
		h.raw(`</aside>`)
		writeToast(h, opts.Toast)
		h.render(AppMainContentWithLayout(header, layout))
		h.raw(`</body></html>`)
	})
}

// AppMainContentWithLayout renders the swappable main region. HTMX requests
// receive only this part.
func AppMainContentWithLayout(header *AppMainHeader, layout AppMainLayoutOptions) templ.Component {
	return component(func(h *htmlWriter) {
		class := "main"
		if extra := strings.TrimSpace(layout.MainClass); extra != "" {
			class += " " + extra
		}
		h.raw(`<main id="main"`)
		h.attr("class", class)
		h.raw(`>`)
		if header != nil && (header.Title != "" || header.Action != nil) {
			h.raw(`<header class="main-header"><div>`)
			h.element("h1", "", header.Title)
			if header.Subtitle != "" {
				h.element("p", "muted", header.Subtitle)
			}
			h.raw(`</div>`)
			if header.Action != nil {
				h.raw(`<div class="main-header-action">`)
				h.render(header.Action)
				h.raw(`</div>`)
			}
			h.raw(`</header>`)
		}
		h.children()
		h.raw(`</main>`)
	})
}

// AuthLayout renders public pages (landing, sign-in, registration).
func AuthLayout(title string, lang string, loc Localizer, toast *AppToast) templ.Component {
	return component(func(h *htmlWriter) {
		writeDocumentHead(h, lang, PageTitle(title))
		h.raw(`<body class="auth"><header class="auth-header"><a class="brand"`)
		h.href(routepath.Root)
		h.raw(`>`)
		h.text(AppName)
		h.raw(`</a><nav><a`)
		h.href(routepath.Login)
		h.raw(`>`)
		h.text(T(loc, "auth.login.title"))
		h.raw(`</a><a`)
		h.href(routepath.Register)
		h.raw(`>`)
		h.text(T(loc, "auth.register.title"))
		h.raw(`</a></nav></header>`)
		writeToast(h, toast)
		h.raw(`<main id="main" class="auth-main">`)
		h.children()
		h.raw(`</main></body></html>`)
	})
}

func writeDocumentHead(h *htmlWriter, lang string, title string) {
	if strings.TrimSpace(lang) == "" {
		lang = "en"
	}
	h.raw(`<!doctype html><html`)
	h.attr("lang", lang)
	h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.raw(`<title>`)
	h.text(title)
	h.raw(`</title><link rel="stylesheet"`)
	h.href(routepath.StaticPrefix + "app.css")
	h.raw(`><script defer`)
	h.attr("src", htmxScriptURL)
	h.raw(`></script></head>`)
}

func writeToast(h *htmlWriter, toast *AppToast) {
	if toast == nil || strings.TrimSpace(toast.Message) == "" {
		return
	}
	kind := strings.TrimSpace(toast.Kind)
	if kind == "" {
		kind = "info"
	}
	h.raw(`<div id="app-toast" role="status"`)
	h.attr("class", "toast toast-"+kind)
	h.raw(`>`)
	h.text(toast.Message)
	h.raw(`</div>`)
}

func appName(name string) string {
	if strings.TrimSpace(name) == "" {
		return AppName
	}
	return name
}
