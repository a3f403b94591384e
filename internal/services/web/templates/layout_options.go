package templates

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/louisbranch/javabite/internal/services/web/module"
)

// AppToast is a one-shot notice rendered in the app shell.
type AppToast struct {
	Kind    string
	Message string
}

// AppMainHeader is the page heading shown above module content.
type AppMainHeader struct {
	Title    string
	Subtitle string
	Action   templ.Component
}

// AppMainLayoutOptions tunes the main content container.
type AppMainLayoutOptions struct {
	MainClass string
}

// LayoutOptions carries everything the app shell needs around a page.
type LayoutOptions struct {
	Title       string
	Lang        string
	AppName     string
	Loc         Localizer
	CurrentPath string
	Viewer      module.Viewer
	Toast       *AppToast
}

// LayoutOptionsForPage builds the shared layout options from a page context and title key.
func LayoutOptionsForPage(page PageContext, titleKey message.Reference) LayoutOptions {
	return LayoutOptions{
		Title:       T(page.Loc, titleKey),
		Lang:        page.Lang,
		AppName:     page.AppName,
		Loc:         page.Loc,
		CurrentPath: page.CurrentPath,
		Viewer:      page.Viewer,
	}
}
