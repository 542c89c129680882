package components

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LogoLookup reports what the server knows about a partner's logo. Unknown
// domains are ImagePending and render an <img> with a text fallback.
type LogoLookup func(domain string) widgets.ImageState

// MarqueeProps configures BrandMarquee.
type MarqueeProps struct {
	Heading  string
	Partners []content.Partner
	Options  widgets.MarqueeOptions
	Logos    LogoLookup
	Tooltips *widgets.Tooltips
}

// LogoURL is the local proxy path serving a partner's normalized logo.
func LogoURL(domain string) string {
	return "/logos/" + url.PathEscape(domain)
}

// BrandMarquee renders the partner strip. Full motion gets a 2N track with
// the mirrored half hidden from assistive tech; reduced motion gets the N
// originals as a static grid. One routine serves both.
func BrandMarquee(p MarqueeProps) g.Node {
	track := widgets.BuildTrack(p.Partners, p.Options)

	tips := p.Tooltips
	if tips == nil {
		taglines := make([]string, len(p.Partners))
		for i, partner := range p.Partners {
			taglines[i] = partner.Tagline
		}
		tips = widgets.NewTooltips(taglines)
	}

	heading := p.Heading
	if heading == "" {
		heading = "Trusted brands we install"
	}

	return Section(
		ID("partners"),
		Class("marquee-section"),
		Aria("labelledby", "partners-heading"),
		H2(ID("partners-heading"), Class("marquee-heading"), g.Text(heading)),
		marqueeFrame(track, p.Options.PauseOnHover,
			g.Map(track.Items, func(it widgets.TrackItem[content.Partner]) g.Node {
				return logoSlot(it, p.Logos, tips)
			}),
		),
	)
}

func marqueeFrame[T any](track widgets.Track[T], pause bool, items g.Node) g.Node {
	classes := "marquee"
	if track.Layout == widgets.LayoutGrid {
		classes += " marquee--grid"
	}
	return Div(
		Class(classes),
		g.Attr("data-animated", strconv.FormatBool(track.Animated)),
		g.Attr("data-pause-on-hover", strconv.FormatBool(pause && track.Animated)),
		Ul(
			Class("marquee-track"),
			g.If(track.Animated, g.Attr("style", track.AnimationStyle())),
			items,
		),
	)
}

func logoSlot(it widgets.TrackItem[content.Partner], lookup LogoLookup, tips *widgets.Tooltips) g.Node {
	partner := it.Value
	card := widgets.NewLogoCard(partner.Name, partner.Tagline)
	if lookup != nil {
		switch lookup(partner.Domain) {
		case widgets.ImageFailed:
			card.Failed()
		case widgets.ImageLoaded:
			card.Loaded()
		}
	}

	tipID := fmt.Sprintf("tip-%d", it.Source)
	if it.Duplicate {
		tipID += "-dup"
	}

	return Li(
		Class("marquee-item"),
		g.If(it.Duplicate, g.Attr("data-duplicate", "true")),
		g.If(it.Duplicate, Aria("hidden", "true")),

		Div(Class("logo-card"),
			g.Attr("data-logo-state", card.Image().String()),
			g.Attr("data-index", strconv.Itoa(it.Source)),
			A(Class("logo-card__link"), Href(partner.Href),
				Aria("label", fmt.Sprintf("View %s projects - %s", partner.Name, partner.Tagline)),
				Aria("describedby", tipID),
				g.If(it.Duplicate, TabIndex("-1")),

				g.If(!card.Image().ShowsText(), Img(
					Class("logo-card__img"),
					Src(LogoURL(partner.Domain)),
					Alt(partner.Name+" logo"),
					g.Attr("loading", "lazy"),
					g.Attr("decoding", "async"),
					g.Attr("data-fallback", "logo-text"),
				)),
				Span(Class("logo-text"),
					g.If(!card.Image().ShowsText(), g.Attr("hidden")),
					g.Text(partner.Name),
				),
			),
			Span(ID(tipID), Class("tooltip"), Role("tooltip"),
				g.If(!tips.IsVisible(it.Source), g.Attr("hidden")),
				g.Text(partner.Tagline),
			),
		),
	)
}

// CardsProps configures InfiniteMovingCards.
type CardsProps struct {
	Testimonials []content.Testimonial
	Options      widgets.MarqueeOptions
}

// InfiniteMovingCards loops testimonial cards with the same track builder
// the brand marquee uses.
func InfiniteMovingCards(p CardsProps) g.Node {
	track := widgets.BuildTrack(p.Testimonials, p.Options)

	return marqueeFrame(track, p.Options.PauseOnHover,
		g.Map(track.Items, func(it widgets.TrackItem[content.Testimonial]) g.Node {
			t := it.Value
			return Li(
				Class("marquee-item testimonial-card card"),
				g.If(it.Duplicate, g.Attr("data-duplicate", "true")),
				g.If(it.Duplicate, Aria("hidden", "true")),
				g.El("blockquote",
					P(Class("testimonial-card__quote"), g.Text(t.Quote)),
					g.El("footer", Class("testimonial-card__by"),
						Span(Class("testimonial-card__rating"),
							Aria("label", fmt.Sprintf("%d out of 5 stars", t.Rating)),
							g.Text(strings.Repeat("★", clampRating(t.Rating))),
						),
						Strong(g.Text(t.Name)),
						Span(Class("text-muted"), g.Text(t.Location+" · "+t.Type)),
					),
				),
			)
		}),
	)
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
