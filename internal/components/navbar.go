package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NavbarProps carries the per-request navbar state.
type NavbarProps struct {
	Variant widgets.NavbarVariant
	Scroll  *widgets.ScrollState
	Menu    *widgets.Menu
	// Dropdown holds the desktop submenu state; nil renders every submenu closed.
	Dropdown *widgets.Dropdown
	// Path is the current request path, used for aria-current and for the
	// no-script open/close links.
	Path string
}

func (p NavbarProps) path() string {
	if p.Path == "" {
		return "/"
	}
	return p.Path
}

func (p NavbarProps) openDropdown() int {
	if p.Dropdown == nil {
		return -1
	}
	return p.Dropdown.Open()
}

func (p NavbarProps) dropdownDelay() time.Duration {
	if p.Dropdown == nil {
		return widgets.DefaultDropdownCloseDelay
	}
	return p.Dropdown.CloseDelay()
}

func (p NavbarProps) menuOpen() bool {
	return p.Menu != nil && p.Menu.IsOpen()
}

// OpenMenuHref is the no-script link that renders the page with the overlay open.
func OpenMenuHref(path string) string {
	return path + "?menu=open#mobile-menu"
}

// SiteNavbar renders the header for any of the three variants. All share
// the scroll rule; they differ in threshold and styling.
func SiteNavbar(p NavbarProps) g.Node {
	variant := p.Variant
	if variant == "" {
		variant = widgets.NavbarElegant
	}
	scroll := p.Scroll
	if scroll == nil {
		scroll = widgets.NewScrollState(variant, 0)
	}
	site := content.Site()

	return Header(
		ID("top"),
		Class("site-header site-header--"+string(variant)),
		g.Attr("data-variant", string(variant)),
		g.Attr("data-scroll-threshold", strconv.Itoa(scroll.Threshold)),
		g.Attr("data-scroll-hysteresis", strconv.Itoa(scroll.Hysteresis)),
		g.Attr("data-scrolled", strconv.FormatBool(scroll.Scrolled())),
		g.Attr("data-dropdown-delay", strconv.FormatInt(p.dropdownDelay().Milliseconds(), 10)),

		Div(Class("container site-header__inner"),
			brandMark(),

			Nav(Class("nav-desktop"), Aria("label", "Main navigation"),
				Ul(Class("nav-list"),
					g.Group(navItems(content.MainNavigation(), p.path(), p.openDropdown())),
				),
			),

			Div(Class("nav-actions"),
				A(Class("nav-phone"), Href(site.PhoneHref()), icon("phone"), Span(g.Text(site.Phone))),
				A(Class("btn nav-cta"), Href("/#contact"), g.Text("Free Estimate")),
			),

			A(Class("nav-call-mobile"), Href(site.PhoneHref()), Aria("label", "Call "+site.Phone),
				icon("phone"), Span(g.Text("CALL")),
			),

			A(
				Class("menu-toggle"),
				Href(OpenMenuHref(p.path())),
				Role("button"),
				Aria("controls", "mobile-menu"),
				Aria("expanded", strconv.FormatBool(p.menuOpen())),
				Aria("label", "Open navigation menu"),
				g.Attr("data-menu-open", ""),
				icon("menu"),
			),
		),

		MobileMenu(p),
	)
}

func brandMark() g.Node {
	site := content.Site()
	return A(Class("brand"), Href("/"), Aria("label", site.Name+" home"),
		Span(Class("brand__mark"), Aria("hidden", "true"), g.Text(site.ShortName)),
		Span(Class("brand__text"),
			Span(Class("brand__name"), g.Text(site.Name)),
			Span(Class("brand__tagline"), g.Text(site.ServiceArea)),
		),
	)
}

func navItems(items []content.NavItem, current string, open int) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		classes := "nav-item"
		if item.Secondary {
			classes += " nav-item--secondary"
		}
		isOpen := i == open && item.HasSubmenu()
		if isOpen {
			classes += " is-open"
		}
		nodes = append(nodes, Li(
			Class(classes),
			g.Attr("data-index", strconv.Itoa(i)),
			g.If(item.HasSubmenu(), g.Attr("data-has-submenu", "true")),
			A(Class("nav-link"), Href(item.Href),
				g.If(isCurrent(item.Href, current), Aria("current", "page")),
				g.If(item.HasSubmenu(), Aria("haspopup", "true")),
				g.If(item.HasSubmenu(), Aria("expanded", strconv.FormatBool(isOpen))),
				g.Text(item.Name),
				g.If(item.HasSubmenu(), icon("chevron")),
			),
			g.If(item.HasSubmenu(), Div(Class("nav-dropdown"),
				Ul(g.Map(item.Submenu, func(sub content.SubmenuItem) g.Node {
					return Li(
						A(Href(sub.Href), Class("nav-dropdown__link"),
							Span(Class("nav-dropdown__name"), g.Text(sub.Name)),
							g.If(sub.Description != "", Span(Class("nav-dropdown__desc"), g.Text(sub.Description))),
						),
					)
				})),
			)),
		))
	}
	return nodes
}

func isCurrent(href, current string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}

// MobileMenu renders the overlay. Its aria state follows the Menu; every
// exit path is a link back to the closed page so the overlay works with
// scripts disabled, and carries data-close naming its reason for the script.
func MobileMenu(p NavbarProps) g.Node {
	open := p.menuOpen()
	closeHref := p.path() + "#top"
	site := content.Site()

	return Div(
		ID("mobile-menu"),
		Class("mobile-menu"),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("label", "Navigation menu"),
		Aria("hidden", strconv.FormatBool(!open)),
		g.Attr("data-state", stateName(open)),

		A(Class("mobile-menu__backdrop"), Href(closeHref),
			g.Attr("data-close", string(widgets.CloseBackdrop)),
			TabIndex("-1"),
			Aria("hidden", "true"),
		),

		Div(Class("mobile-menu__panel"),
			Div(Class("mobile-menu__head"),
				brandMark(),
				A(Class("mobile-menu__close"), Href(closeHref),
					Role("button"),
					Aria("label", "Close navigation menu"),
					g.Attr("data-close", string(widgets.CloseButton)),
					icon("close"),
				),
			),

			Nav(Aria("label", "Mobile navigation"),
				Ul(Class("mobile-menu__list"),
					g.Map(content.MainNavigation(), func(item content.NavItem) g.Node {
						return mobileItem(item, p.path())
					}),
				),
			),

			Div(Class("mobile-menu__footer"),
				A(Class("btn btn--block"), Href(site.PhoneHref()),
					g.Attr("data-close", string(widgets.CloseLink)),
					icon("phone"), g.Text("Call "+site.Phone),
				),
				P(Class("text-muted"), g.Text(site.Hours)),
			),
		),
	)
}

func mobileItem(item content.NavItem, current string) g.Node {
	classes := "mobile-menu__item"
	if item.Secondary {
		classes += " mobile-menu__item--secondary"
	}
	return Li(Class(classes),
		A(Href(item.Href),
			g.Attr("data-close", string(widgets.CloseLink)),
			g.If(isCurrent(item.Href, current), Aria("current", "page")),
			g.Text(item.Name),
			g.If(item.Primary, Span(Class("badge"), g.Text("Popular"))),
		),
		g.If(item.HasSubmenu(), Ul(Class("mobile-menu__sub"),
			g.Map(item.Submenu, func(sub content.SubmenuItem) g.Node {
				return Li(A(Href(sub.Href), g.Attr("data-close", string(widgets.CloseLink)), g.Text(sub.Name)))
			}),
		)),
	)
}

func stateName(open bool) string {
	if open {
		return widgets.MenuOpen.String()
	}
	return widgets.MenuClosed.String()
}
