// SPDX-License-Identifier: MIT

// Package components renders the site's pages from gomponents nodes. Every
// component is a function returning g.Node; interactive state comes in as
// values from the widgets package so rendering stays a pure function.
package components

import (
	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageConfig describes the document shell.
type PageConfig struct {
	Title       string
	Description string
	Path        string
	OGImage     string
	Motion      widgets.Motion
	Chrome      *Chrome
}

// Chrome is the document-level state toggled by open overlays.
type Chrome struct {
	ScrollLocked bool
	EscapeClose  bool
}

// BodyClass returns the class list for <body>.
func (c *Chrome) BodyClass() string {
	if c != nil && c.ScrollLocked {
		return "site scroll-locked"
	}
	return "site"
}

// NewPageMenu returns a mobile menu whose open period holds the page
// scroll-lock and the escape-to-close listener.
func NewPageMenu(c *Chrome) *widgets.Menu {
	scrollLock := widgets.AcquirerFunc(func() (func(), error) {
		c.ScrollLocked = true
		return func() { c.ScrollLocked = false }, nil
	})
	escape := widgets.AcquirerFunc(func() (func(), error) {
		c.EscapeClose = true
		return func() { c.EscapeClose = false }, nil
	})
	return widgets.NewMenu(scrollLock, escape)
}

// Layout wraps content in the document shell.
func Layout(config PageConfig, children ...g.Node) g.Node {
	seo := content.SEODefaults()

	if config.Title == "" {
		config.Title = seo.DefaultTitle
	} else {
		config.Title = config.Title + " | " + seo.SiteName
	}
	if config.Description == "" {
		config.Description = seo.DefaultDescription
	}
	if config.OGImage == "" {
		config.OGImage = seo.DefaultImage
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-motion", config.Motion.String()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				Meta(g.Attr("property", "og:site_name"), Content(seo.SiteName)),

				Link(Rel("icon"), Href("/static/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/theme.css")),
				Link(Rel("stylesheet"), Href("/static/site.css")),
				Script(Src("/static/site.js"), g.Attr("defer")),
			),
			Body(
				Class(config.Chrome.BodyClass()),
				g.If(config.Chrome != nil && config.Chrome.EscapeClose, g.Attr("data-escape-close", "true")),
				A(Class("skip-link"), Href("#main"), g.Text("Skip to content")),
				g.Group(children),
			),
		),
	})
}
