package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestBrandMarqueeFullMotion(t *testing.T) {
	partners := content.Partners()
	html := render(t, BrandMarquee(MarqueeProps{
		Partners: partners,
		Options:  widgets.DefaultMarqueeOptions(),
	}))

	items := strings.Count(html, `class="marquee-item"`)
	assert.Equal(t, 2*len(partners), items)
	assert.Equal(t, len(partners), strings.Count(html, `data-duplicate="true"`))
	assert.Contains(t, html, "animation: marquee-scroll 60s linear infinite forwards;")
	assert.Contains(t, html, `data-pause-on-hover="true"`)
	assert.Contains(t, html, `src="/logos/kohler.com"`)
	assert.Contains(t, html, `aria-label="View Kohler projects - Kitchen &amp; Bath"`)
}

func TestBrandMarqueeReducedMotion(t *testing.T) {
	partners := content.Partners()
	opts := widgets.DefaultMarqueeOptions()
	opts.Motion = widgets.MotionReduced

	html := render(t, BrandMarquee(MarqueeProps{Partners: partners, Options: opts}))

	assert.Equal(t, len(partners), strings.Count(html, `class="marquee-item"`))
	assert.NotContains(t, html, "data-duplicate")
	assert.NotContains(t, html, "animation:")
	assert.Contains(t, html, "marquee--grid")
}

func TestBrandMarqueeFailedLogoFallsBackToText(t *testing.T) {
	partners := []content.Partner{
		{Name: "Kohler", Domain: "kohler.com", Href: "/k", Tagline: "Kitchen & Bath"},
		{Name: "Moen", Domain: "moen.com", Href: "/m", Tagline: "Fixtures"},
		{Name: "GAF", Domain: "gaf.com", Href: "/g", Tagline: "Roofing"},
	}
	opts := widgets.DefaultMarqueeOptions()
	opts.Motion = widgets.MotionReduced

	html := render(t, BrandMarquee(MarqueeProps{
		Partners: partners,
		Options:  opts,
		Logos: func(domain string) widgets.ImageState {
			if domain == "moen.com" {
				return widgets.ImageFailed
			}
			return widgets.ImagePending
		},
	}))

	assert.NotContains(t, html, `src="/logos/moen.com"`)
	assert.Contains(t, html, `<span class="logo-text">Moen</span>`)
	assert.Contains(t, html, `src="/logos/kohler.com"`)
	assert.Contains(t, html, `src="/logos/gaf.com"`)
	assert.Contains(t, html, `<span class="logo-text" hidden>GAF</span>`)
}

func TestTooltipsRenderHiddenUntilHovered(t *testing.T) {
	partners := content.Partners()[:3]
	tips := widgets.NewTooltips([]string{partners[0].Tagline, partners[1].Tagline, partners[2].Tagline})
	tips.Enter(1)

	opts := widgets.DefaultMarqueeOptions()
	opts.Motion = widgets.MotionReduced
	html := render(t, BrandMarquee(MarqueeProps{Partners: partners, Options: opts, Tooltips: tips}))

	assert.Contains(t, html, `<span id="tip-1" class="tooltip" role="tooltip">Fixtures</span>`)
	assert.Contains(t, html, `<span id="tip-0" class="tooltip" role="tooltip" hidden>`)
}

func TestNavbarScrollAttributes(t *testing.T) {
	scroll := widgets.NewScrollState(widgets.NavbarResizable, 0)
	scroll.Update(150)

	html := render(t, SiteNavbar(NavbarProps{Variant: widgets.NavbarResizable, Scroll: scroll, Path: "/"}))

	assert.Contains(t, html, `data-scroll-threshold="100"`)
	assert.Contains(t, html, `data-scrolled="true"`)
	assert.Contains(t, html, "site-header--resizable")
}

func TestNavbarDropdownState(t *testing.T) {
	dd := widgets.NewDropdown(widgets.DefaultDropdownCloseDelay)
	defer dd.Stop()

	closed := render(t, SiteNavbar(NavbarProps{Dropdown: dd, Path: "/"}))
	assert.NotContains(t, closed, "is-open")
	assert.NotContains(t, closed, `aria-haspopup="true" aria-expanded="true"`)

	dd.Enter(0, true)
	open := render(t, SiteNavbar(NavbarProps{Dropdown: dd, Path: "/"}))
	assert.Contains(t, open, `class="nav-item is-open" data-index="0"`)
	assert.Contains(t, open, `aria-haspopup="true" aria-expanded="true"`)
	assert.Contains(t, open, `data-dropdown-delay="150"`)
}

func TestMobileMenuClosedAndOpen(t *testing.T) {
	chrome := &Chrome{}
	menu := NewPageMenu(chrome)

	closed := render(t, SiteNavbar(NavbarProps{Menu: menu, Path: "/"}))
	assert.Contains(t, closed, `aria-expanded="false"`)
	assert.Contains(t, closed, `aria-hidden="true" data-state="closed"`)
	assert.Contains(t, closed, `href="/?menu=open#mobile-menu"`)

	require.NoError(t, menu.Open())
	assert.True(t, chrome.ScrollLocked)
	assert.True(t, chrome.EscapeClose)

	open := render(t, SiteNavbar(NavbarProps{Menu: menu, Path: "/"}))
	assert.Contains(t, open, `aria-hidden="false" data-state="open"`)
	for _, reason := range []widgets.CloseReason{widgets.CloseBackdrop, widgets.CloseButton, widgets.CloseLink} {
		assert.Contains(t, open, `data-close="`+string(reason)+`"`)
	}

	menu.Dispose()
	assert.False(t, chrome.ScrollLocked)
	assert.False(t, chrome.EscapeClose)
}

func TestLayoutScrollLockClass(t *testing.T) {
	chrome := &Chrome{ScrollLocked: true}
	html := render(t, Layout(PageConfig{Chrome: chrome}))
	assert.Contains(t, html, `class="site scroll-locked"`)

	html = render(t, Layout(PageConfig{Title: "About"}))
	assert.Contains(t, html, `<body class="site">`)
	assert.Contains(t, html, "<title>About | Development Contracting</title>")
}

func TestContactFormStates(t *testing.T) {
	m := widgets.NewFormMachine()
	idle := render(t, ContactForm(ContactFormView{Machine: m, CSRFToken: "tok"}))
	assert.Contains(t, idle, `name="csrf_token" value="tok"`)
	assert.Contains(t, idle, `name="email"`)
	assert.Contains(t, idle, "Submit Request")

	require.NoError(t, m.Submit())
	submitting := render(t, ContactForm(ContactFormView{Machine: m}))
	assert.Contains(t, submitting, "disabled")
	assert.Contains(t, submitting, "Submitting...")

	require.NoError(t, m.Succeed())
	done := render(t, ContactForm(ContactFormView{Machine: m, Reference: "abc", Name: "Pat"}))
	assert.Contains(t, done, "We&#39;ll be in touch within 24 hours.")
	assert.Contains(t, done, "Reference: abc")
	assert.NotContains(t, done, "<form")
	assert.NotContains(t, done, `name="email"`)

	// Rendering again without a reset does not bring the form back
	again := render(t, ContactForm(ContactFormView{Machine: m}))
	assert.NotContains(t, again, "<form")
}

func TestContactFormValidationKeepsValues(t *testing.T) {
	html := render(t, ContactForm(ContactFormView{
		Name:        "Pat",
		Email:       "not-an-email",
		Project:     "Deck",
		FieldErrors: map[string]string{"email": "Enter a valid email address."},
	}))

	assert.Contains(t, html, `value="Pat"`)
	assert.Contains(t, html, `value="not-an-email"`)
	assert.Contains(t, html, `aria-invalid="true" aria-describedby="contact-email-error"`)
	assert.Contains(t, html, `role="alert">Enter a valid email address.</p>`)
	assert.Contains(t, html, ">Deck</textarea>")
}

func TestDecorIsHiddenFromAssistiveTech(t *testing.T) {
	for _, n := range []g.Node{
		DraftLines("corners"),
		DraftLines("sides"),
		DraftLines("dimension"),
		BlueprintBackground(),
		BlueprintText("bracket", "", "Remodeling"),
		DraftButton("#services", "Browse Services"),
	} {
		html := render(t, n)
		svgs := regexp.MustCompile(`<svg[^>]*>`).FindAllString(html, -1)
		require.NotEmpty(t, svgs)
		for _, svg := range svgs {
			assert.Contains(t, svg, `aria-hidden="true"`)
			assert.Contains(t, svg, "pointer-events: none")
		}
	}
}

func TestHomePageComposition(t *testing.T) {
	chrome := &Chrome{}
	html := render(t, HomePage(HomeProps{
		Frame: Frame{
			Path:   "/",
			Chrome: chrome,
			Navbar: NavbarProps{Menu: NewPageMenu(chrome)},
			Year:   2026,
		},
	}))

	order := []string{`id="hero"`, `id="stats"`, `id="partners"`, `id="services"`, `id="about"`, `id="process"`, `id="reviews"`, `id="contact"`, `id="final-cta"`, `class="site-footer`}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		require.Greater(t, idx, last, "section %s out of order", marker)
		last = idx
	}
	assert.Contains(t, html, `<nav class="quick-nav" aria-label="On this page">`)
	assert.Contains(t, html, `href="#reviews"`)
	assert.Contains(t, html, `href="tel:+15034707007"`)
	assert.Contains(t, html, "© 2026 Development Contracting")
}

func TestNotFoundPage(t *testing.T) {
	html := render(t, NotFoundPage(Frame{Path: "/missing"}))
	assert.Contains(t, html, "We couldn&#39;t find that page")
}
