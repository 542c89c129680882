package components

import (
	"github.com/devcontracting/dcsite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroSection is the above-the-fold banner with trust badges.
func HeroSection() g.Node {
	hero := content.HeroContent()

	return Section(ID("hero"), Class("hero"),
		BlueprintBackground(),
		Div(Class("container hero__inner"),
			P(Class("eyebrow"), g.Text(hero.Eyebrow)),
			H1(Class("hero__headline"), BlueprintText("underline", "", hero.Headline)),
			P(Class("hero__sub"), g.Text(hero.Subheadline)),
			Div(Class("hero__actions"),
				A(Class("btn btn--primary"), Href(hero.PrimaryCTA.Href),
					icon("phone"),
					g.Text(hero.PrimaryCTA.Text),
					g.If(hero.PrimaryCTA.Phone != "", Span(Class("btn__detail"), g.Text(hero.PrimaryCTA.Phone))),
				),
				DraftButton(hero.SecondaryCTA.Href, hero.SecondaryCTA.Text),
			),
			Ul(Class("trust-badges"),
				g.Map(content.TrustBadges(), func(b content.TrustBadge) g.Node {
					label := g.Group([]g.Node{icon(b.Icon), Span(g.Text(b.Label))})
					if b.Href == "" {
						return Li(Class("trust-badge"), label)
					}
					return Li(Class("trust-badge"),
						A(Href(b.Href), g.Attr("target", "_blank"), Rel("noopener noreferrer"), label),
					)
				}),
			),
		),
		DraftLines("corners"),
	)
}

// StatsBar renders the proof numbers.
func StatsBar() g.Node {
	return Section(ID("stats"), Class("stats band-dark"), Aria("label", "By the numbers"),
		Dl(Class("container stats__grid"),
			g.Map(content.Stats(), func(s content.Stat) g.Node {
				return Div(Class("stat"),
					Dt(Class("stat__label"), g.Text(s.Label)),
					Dd(Class("stat__value"), g.Text(s.Value)),
				)
			}),
		),
	)
}

// QuickNavBar links to the home page sections.
func QuickNavBar() g.Node {
	return Nav(Class("quick-nav"), Aria("label", "On this page"),
		Ul(Class("container quick-nav__list"),
			g.Map(content.QuickNav(), func(l content.Link) g.Node {
				return Li(A(Href(l.Href), g.Text(l.Name)))
			}),
		),
	)
}

func serviceGrid(id, heading, intro string, services []content.Service) g.Node {
	return Section(ID(id), Class("services"), Aria("labelledby", id+"-heading"),
		Div(Class("container"),
			H2(ID(id+"-heading"), BlueprintText("bracket", "", heading)),
			g.If(intro != "", P(Class("section-intro text-muted"), g.Text(intro))),
			Ul(Class("services__grid"),
				g.Map(services, func(s content.Service) g.Node {
					classes := "service-card card"
					if s.Featured {
						classes += " service-card--featured"
					}
					return Li(Class(classes),
						H3(A(Href(s.Href), g.Text(s.Title))),
						P(g.Text(s.Description)),
					)
				}),
			),
		),
	)
}

// ServicesSections renders the remodeling, additions and restoration groups.
func ServicesSections() g.Node {
	all := content.AllServices()
	return g.Group([]g.Node{
		serviceGrid("services", "Remodeling", "Kitchens, baths and whole-home renovations built to last.", all.Remodeling),
		serviceGrid("additions", "Home Additions", "More space without leaving the neighborhood you love.", all.Additions),
		serviceGrid("restoration", "Restoration", "Fast response and insurance coordination when the worst happens.", all.Restoration),
	})
}

// WhyChooseUsSection lists the differentiators.
func WhyChooseUsSection() g.Node {
	return Section(ID("about"), Class("why-us"), Aria("labelledby", "why-heading"),
		Div(Class("container"),
			H2(ID("why-heading"), g.Text("Why Choose "+content.Site().Name)),
			Ul(Class("why-us__grid"),
				g.Map(content.WhyChooseUs(), func(r content.Reason) g.Node {
					return Li(Class("reason card"),
						icon(r.Icon),
						H3(g.Text(r.Title)),
						P(g.Text(r.Description)),
					)
				}),
			),
		),
	)
}

// ProcessSection renders the numbered working process.
func ProcessSection() g.Node {
	return Section(ID("process"), Class("process"), Aria("labelledby", "process-heading"),
		Div(Class("container"),
			H2(ID("process-heading"), BlueprintText("annotate", "5 steps", "Our Process")),
			Ol(Class("process__steps"),
				g.Map(content.ProcessSteps(), func(s content.ProcessStep) g.Node {
					return Li(Class("process-step"),
						Span(Class("process-step__number"), Aria("hidden", "true"), g.Text(s.Number)),
						H3(g.Text(s.Title)),
						P(g.Text(s.Description)),
					)
				}),
			),
			DraftLines("dimension"),
		),
	)
}

// AwardsSection renders the credential cards.
func AwardsSection() g.Node {
	return Section(ID("credentials"), Class("awards"), Aria("labelledby", "awards-heading"),
		Div(Class("container"),
			H2(ID("awards-heading"), g.Text("Licensed, Accredited, Trusted")),
			Ul(Class("awards__grid"),
				g.Map(content.Awards(), func(a content.Award) g.Node {
					return Li(Class("award card"),
						icon(a.Icon),
						H3(g.Text(a.Title)),
						P(g.Text(a.Description)),
						g.If(a.VerifyURL != "", A(Class("award__verify"), Href(a.VerifyURL),
							g.Attr("target", "_blank"), Rel("noopener noreferrer"),
							g.Text("Verify"),
						)),
					)
				}),
			),
		),
	)
}

// TestimonialsSection renders the review carousel.
func TestimonialsSection(cards g.Node) g.Node {
	return Section(ID("reviews"), Class("testimonials"), Aria("labelledby", "reviews-heading"),
		Div(Class("container"),
			H2(ID("reviews-heading"), g.Text("What Our Clients Say")),
		),
		cards,
	)
}

// FinalCTASection is the closing call-to-action band.
func FinalCTASection() g.Node {
	cta := content.FinalCTAContent()
	return Section(ID("final-cta"), Class("final-cta band-dark"),
		BlueprintBackground(),
		Div(Class("container final-cta__inner"),
			H2(g.Text(cta.Headline)),
			P(g.Text(cta.Subheadline)),
			A(Class("btn btn--primary"), Href(cta.PrimaryCTA.Href),
				icon("phone"), g.Text(cta.PrimaryCTA.Text+" "+cta.PrimaryCTA.Phone),
			),
		),
		DraftLines("sides"),
	)
}

// SiteFooter renders the footer with licensing and links.
func SiteFooter(year int) g.Node {
	site := content.Site()
	lic := content.Licenses()

	return g.El("footer", Class("site-footer band-dark"),
		Div(Class("container site-footer__grid"),
			Div(Class("site-footer__brand"),
				brandMark(),
				P(g.Text(site.Tagline)),
				g.El("address",
					A(Href(site.PhoneHref()), icon("phone"), g.Text(site.Phone)), Br(),
					A(Href(site.EmailHref()), icon("mail"), g.Text(site.Email)), Br(),
					g.Text(site.Location),
				),
				Ul(Class("social"),
					g.Map(content.Social(), func(s content.SocialLink) g.Node {
						return Li(A(Href(s.Href), Aria("label", s.Name),
							g.Attr("target", "_blank"), Rel("noopener noreferrer"),
							icon(s.Icon),
						))
					}),
				),
			),
			footerLinks("Services", content.FooterServices()),
			footerLinks("Company", content.FooterCompany()),
			Div(Class("site-footer__licensing"),
				H2(g.Text("Licensing")),
				P(A(Href(lic.CCB.VerifyURL), g.Attr("target", "_blank"), Rel("noopener noreferrer"), g.Text(lic.CCB.Display))),
				g.If(lic.BBB.Accredited, P(A(Href(lic.BBB.ProfileURL), g.Attr("target", "_blank"), Rel("noopener noreferrer"), g.Text(lic.BBB.Display)))),
				P(g.Textf("Licensed in %s", joinAnd(lic.States))),
				P(g.Text(site.Hours)),
			),
		),
		P(Class("container site-footer__legal text-muted"),
			g.Textf("© %d %s. All rights reserved. %s", year, site.Name, lic.CCB.Display),
		),
	)
}

func footerLinks(heading string, links []content.Link) g.Node {
	return Nav(Class("site-footer__links"), Aria("label", heading),
		H2(g.Text(heading)),
		Ul(g.Map(links, func(l content.Link) g.Node {
			return Li(A(Href(l.Href), g.Text(l.Name)))
		})),
	)
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	out := ""
	for i, s := range items {
		switch {
		case i == 0:
			out = s
		case i == len(items)-1:
			out += " and " + s
		default:
			out += ", " + s
		}
	}
	return out
}
