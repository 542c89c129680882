package components

import (
	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Frame is the per-request state shared by every page.
type Frame struct {
	Path   string
	Motion widgets.Motion
	Navbar NavbarProps
	Chrome *Chrome
	Year   int
}

// HomeProps configures HomePage.
type HomeProps struct {
	Frame
	Speed widgets.Speed
	Logos LogoLookup
	Form  ContactFormView
}

func page(f Frame, cfg PageConfig, main ...g.Node) g.Node {
	cfg.Path = f.Path
	cfg.Motion = f.Motion
	cfg.Chrome = f.Chrome
	if f.Navbar.Path == "" {
		f.Navbar.Path = f.Path
	}

	return Layout(cfg,
		SiteNavbar(f.Navbar),
		Main(ID("main"), g.Group(main)),
		SiteFooter(f.Year),
	)
}

// HomePage composes the landing page in section order.
func HomePage(p HomeProps) g.Node {
	partnerOpts := widgets.DefaultMarqueeOptions()
	partnerOpts.Motion = p.Motion
	if p.Speed != "" {
		partnerOpts.Speed = p.Speed
	}

	cardOpts := widgets.MarqueeOptions{
		Motion:       p.Motion,
		Speed:        widgets.SpeedNormal,
		Direction:    widgets.DirectionRight,
		PauseOnHover: true,
	}

	return page(p.Frame, PageConfig{},
		HeroSection(),
		StatsBar(),
		QuickNavBar(),
		BrandMarquee(MarqueeProps{
			Partners: content.Partners(),
			Options:  partnerOpts,
			Logos:    p.Logos,
		}),
		ServicesSections(),
		WhyChooseUsSection(),
		ProcessSection(),
		AwardsSection(),
		TestimonialsSection(InfiniteMovingCards(CardsProps{
			Testimonials: content.Testimonials(),
			Options:      cardOpts,
		})),
		ContactSection(p.Form),
		FinalCTASection(),
	)
}

// ContentPage renders a markdown page body that was already converted to HTML.
func ContentPage(f Frame, title, description string, body []byte) g.Node {
	return page(f, PageConfig{Title: title, Description: description},
		g.El("article", Class("container prose"),
			H1(BlueprintText("underline", "", title)),
			g.Raw(string(body)),
		),
	)
}

// NotFoundPage renders the themed 404.
func NotFoundPage(f Frame) g.Node {
	site := content.Site()
	return page(f, PageConfig{Title: "Page not found"},
		Section(Class("container not-found"),
			DraftLines("corners"),
			H1(g.Text("We couldn't find that page")),
			P(g.Text("The page may have moved. Try the home page or give us a call.")),
			Div(Class("not-found__actions"),
				A(Class("btn btn--primary"), Href("/"), g.Text("Back to home")),
				A(Class("btn"), Href(site.PhoneHref()), icon("phone"), g.Text(site.Phone)),
			),
		),
	)
}
