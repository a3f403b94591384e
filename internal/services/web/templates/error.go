package templates

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// errorCopy holds the message keys for one error page variant.
type errorCopy struct {
	status                  int
	pageTitle, heading, msg string
}

var (
	notFoundCopy = errorCopy{
		status:    http.StatusNotFound,
		pageTitle: "web.error.page_title_not_found",
		heading:   "web.error.title_not_found",
		msg:       "web.error.message_not_found",
	}
	serverErrorCopy = errorCopy{
		status:    http.StatusInternalServerError,
		pageTitle: "web.error.page_title_server_error",
		heading:   "web.error.title_server_error",
		msg:       "web.error.message_server_error",
	}
)

// Every status other than 404 shows the server error page.
func copyFor(statusCode int) errorCopy {
	if statusCode == http.StatusNotFound {
		return notFoundCopy
	}
	return serverErrorCopy
}

func AppErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, copyFor(statusCode).pageTitle)
}

// AppErrorState renders the error body with a link back to homePath.
func AppErrorState(statusCode int, homePath string, loc Localizer) templ.Component {
	c := copyFor(statusCode)
	if strings.TrimSpace(homePath) == "" {
		homePath = "/"
	}
	return component(func(h *htmlWriter) {
		h.raw(`<section class="error-state" data-status="`)
		h.int(c.status)
		h.raw(`">`)
		h.element("h2", "", T(loc, c.heading))
		h.element("p", "muted", T(loc, c.msg))
		h.raw(`<a class="btn"`)
		h.href(homePath)
		h.raw(`>`)
		h.text(T(loc, "web.error.action_back_to_dashboard"))
		h.raw(`</a></section>`)
	})
}
