// SPDX-License-Identifier: MIT

// Package handlers holds the gin handlers and router for the public site,
// the contact endpoints, the logo proxy and the lead inbox.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/devcontracting/dcsite/internal/components"
	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/contact"
	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/devcontracting/dcsite/internal/logos"
	"github.com/devcontracting/dcsite/internal/middleware"
	"github.com/devcontracting/dcsite/internal/pages"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	g "maragu.dev/gomponents"
)

// UISettings are the site-wide rendering options from the ui.* config keys.
type UISettings struct {
	Navbar        widgets.NavbarVariant
	Hysteresis    int
	MarqueeSpeed  widgets.Speed
	Palette       string
	DarkMode      bool
	SecureCookies bool
}

// UIFromConfig reads UISettings from config
func UIFromConfig() UISettings {
	speed := widgets.Speed(strings.ToLower(config.GetString("ui.marquee_speed")))
	switch speed {
	case widgets.SpeedFast, widgets.SpeedNormal, widgets.SpeedSlow:
	default:
		speed = widgets.SpeedSlow
	}
	return UISettings{
		Navbar:        widgets.ParseNavbarVariant(config.GetString("ui.navbar_variant")),
		Hysteresis:    config.GetInt("ui.scroll_hysteresis"),
		MarqueeSpeed:  speed,
		Palette:       config.GetString("ui.palette"),
		DarkMode:      config.GetBool("ui.dark_mode"),
		SecureCookies: config.GetBool("server.tls_enabled"),
	}
}

// Deps are the collaborators shared by every handler.
type Deps struct {
	DB      *gorm.DB
	Pages   *pages.Store
	Contact *contact.Service
	Logos   *logos.Resolver
	Log     *logger.Logger
	UI      UISettings
	Now     func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Deps) log() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Nop()
}

// logoLookup adapts the resolver for the renderer. Without a resolver every
// logo is pending and the browser decides.
func (d *Deps) logoLookup() components.LogoLookup {
	if d.Logos == nil {
		return nil
	}
	return d.Logos.Status
}

// requestMotion picks reduced motion from ?motion=reduce or the
// Sec-CH-Prefers-Reduced-Motion client hint.
func requestMotion(c *gin.Context) widgets.Motion {
	if q := c.Query("motion"); q != "" {
		return widgets.ParseMotion(q)
	}
	return widgets.ParseMotion(c.GetHeader("Sec-CH-Prefers-Reduced-Motion"))
}

// requestDropdown opens the desktop submenu named by ?nav=, so a submenu
// can be linked to with scripts disabled.
func requestDropdown(c *gin.Context) *widgets.Dropdown {
	dd := widgets.NewDropdown(widgets.DefaultDropdownCloseDelay)
	if name := c.Query("nav"); name != "" {
		for i, item := range content.MainNavigation() {
			if strings.EqualFold(item.Name, name) {
				dd.Enter(i, item.HasSubmenu())
				break
			}
		}
	}
	return dd
}

// frame builds the per-request page state. ?menu=open renders the mobile
// menu open, holding its scroll lock and escape listener for this render.
// The returned func releases both for the end of the render.
func (d *Deps) frame(c *gin.Context) (components.Frame, func()) {
	chrome := &components.Chrome{}
	menu := components.NewPageMenu(chrome)
	if c.Query("menu") == "open" {
		if err := menu.Open(); err != nil {
			d.log().Error(err, "failed to open mobile menu")
		}
	}
	dropdown := requestDropdown(c)

	path := c.Request.URL.Path
	f := components.Frame{
		Path:   path,
		Motion: requestMotion(c),
		Chrome: chrome,
		Year:   d.now().Year(),
		Navbar: components.NavbarProps{
			Variant:  d.UI.Navbar,
			Scroll:   widgets.NewScrollState(d.UI.Navbar, d.UI.Hysteresis),
			Menu:     menu,
			Dropdown: dropdown,
			Path:     path,
		},
	}
	return f, func() {
		dropdown.Stop()
		menu.Dispose()
	}
}

// render writes a gomponents node as HTML
func render(c *gin.Context, status int, node g.Node) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func csrfToken(c *gin.Context) string {
	return middleware.GetCSRFToken(c)
}

// noStore marks per-visitor responses uncacheable
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}

var _ http.Handler = (*gin.Engine)(nil)
