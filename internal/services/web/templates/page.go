package templates

import (
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/module"
)

// AppName is the product name shown in titles and chrome.
const AppName = "JavaBite"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	Viewer      module.Viewer
	AppName     string
}

// PageTitle suffixes a page title with the product name.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}
