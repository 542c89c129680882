package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Drafting overlays are visual only. Every one of them is hidden from
// assistive tech and ignores the pointer.

func decorSVG(class, viewBox string, children ...g.Node) g.Node {
	return g.El("svg",
		g.Attr("class", "decor "+class),
		g.Attr("viewBox", viewBox),
		g.Attr("fill", "none"),
		g.Attr("aria-hidden", "true"),
		g.Attr("focusable", "false"),
		g.Attr("style", "pointer-events: none"),
		g.Group(children),
	)
}

func drawPath(d string, width string) g.Node {
	return g.El("path",
		g.Attr("class", "draw"),
		g.Attr("d", d),
		g.Attr("stroke", "var(--color-cedar)"),
		g.Attr("stroke-width", width),
		g.Attr("pathLength", "100"),
	)
}

// DraftLines renders drafting marks around a container. Variants are
// "corners" (default), "sides" and "dimension".
func DraftLines(variant string) g.Node {
	switch variant {
	case "sides":
		return decorSVG("draft-lines draft-lines--sides", "0 0 100 100",
			g.Attr("preserveAspectRatio", "none"),
			drawPath("M 1 10 L 1 90", "0.3"),
			drawPath("M 99 10 L 99 90", "0.3"),
			drawPath("M 0 10 L 3 10 M 0 90 L 3 90", "0.3"),
			drawPath("M 97 10 L 100 10 M 97 90 L 100 90", "0.3"),
		)
	case "dimension":
		return decorSVG("draft-lines draft-lines--dimension", "0 0 100 12",
			g.Attr("preserveAspectRatio", "none"),
			drawPath("M 2 6 L 98 6", "0.4"),
			drawPath("M 2 2 L 2 10 M 98 2 L 98 10", "0.4"),
		)
	default:
		return decorSVG("draft-lines draft-lines--corners", "0 0 100 100",
			g.Attr("preserveAspectRatio", "none"),
			drawPath("M 0 12 L 0 0 L 12 0", "0.5"),
			drawPath("M 88 0 L 100 0 L 100 12", "0.5"),
			drawPath("M 0 88 L 0 100 L 12 100", "0.5"),
			drawPath("M 88 100 L 100 100 L 100 88", "0.5"),
		)
	}
}

// BlueprintText decorates text with a dimension-style underline, brackets
// or an annotation callout. The text itself stays plain and readable.
func BlueprintText(variant, label string, text string) g.Node {
	var mark g.Node
	switch variant {
	case "bracket":
		mark = g.Group([]g.Node{
			decorSVG("blueprint-bracket blueprint-bracket--left", "0 0 12 32", drawPath("M 11 1 L 3 1 L 3 31 L 11 31", "1")),
			decorSVG("blueprint-bracket blueprint-bracket--right", "0 0 12 32", drawPath("M 1 1 L 9 1 L 9 31 L 1 31", "1")),
		})
	case "annotate":
		mark = Span(Class("blueprint-annotation"), Aria("hidden", "true"),
			decorSVG("blueprint-callout", "0 0 60 40", drawPath("M 0 30 L 20 20 L 55 20", "0.75")),
			g.If(label != "", Span(Class("blueprint-label"), g.Text(label))),
		)
	default:
		mark = decorSVG("blueprint-underline", "0 0 100 16",
			g.Attr("preserveAspectRatio", "none"),
			drawPath("M 0 4 L 100 4", "1"),
			drawPath("M 0 0 L 0 8 M 100 0 L 100 8", "1.5"),
		)
	}

	return Span(Class("blueprint-text blueprint-text--"+orDefault(variant, "underline")),
		g.Text(text),
		mark,
	)
}

// DraftButton is a call-to-action link with a drafted outline.
func DraftButton(href, label string) g.Node {
	return A(Class("btn draft-button"), Href(href),
		Span(Class("draft-button__label"), g.Text(label)),
		decorSVG("draft-button__outline", "0 0 100 40",
			g.Attr("preserveAspectRatio", "none"),
			drawPath("M 1 1 L 99 1 L 99 39 L 1 39 Z", "0.6"),
		),
	)
}

// BlueprintBackground is the faint grid behind dark bands.
func BlueprintBackground() g.Node {
	return decorSVG("blueprint-background", "0 0 100 100",
		g.Attr("preserveAspectRatio", "none"),
		g.El("defs",
			g.El("pattern",
				ID("blueprint-grid"),
				g.Attr("width", "10"),
				g.Attr("height", "10"),
				g.Attr("patternUnits", "userSpaceOnUse"),
				g.El("path",
					g.Attr("d", "M 10 0 L 0 0 0 10"),
					g.Attr("stroke", "var(--color-cedar)"),
					g.Attr("stroke-width", "0.1"),
					g.Attr("stroke-opacity", "0.3"),
				),
			),
		),
		g.El("rect",
			g.Attr("width", "100"),
			g.Attr("height", "100"),
			g.Attr("fill", "url(#blueprint-grid)"),
		),
	)
}

// icon renders a small decorative stroke icon.
func icon(name string) g.Node {
	d, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		g.Attr("class", "icon icon-"+name),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("width", "20"),
		g.Attr("height", "20"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "1.5"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("focusable", "false"),
		g.El("path", g.Attr("d", d)),
	)
}

var iconPaths = map[string]string{
	"phone":     "M5 4h4l2 5-2.5 1.5a11 11 0 0 0 5 5L15 13l5 2v4a2 2 0 0 1-2 2A16 16 0 0 1 3 6a2 2 0 0 1 2-2",
	"mail":      "M3 7a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2v10a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V7zm0 0 9 6 9-6",
	"menu":      "M4 6h16M4 12h16M4 18h16",
	"close":     "M6 6l12 12M18 6 6 18",
	"chevron":   "M6 9l6 6 6-6",
	"check":     "M4.5 12.75l6 6 9-13.5",
	"star":      "M12 17.75l-6.172 3.245 1.179-6.873-5-4.867 6.9-1 3.086-6.253 3.086 6.253 6.9 1-5 4.867 1.179 6.873z",
	"shield":    "M12 3l8 4v5c0 5-3.5 8.5-8 9-4.5-.5-8-4-8-9V7l8-4z",
	"bbb":       "M12 15a6 6 0 1 0 0-12 6 6 0 0 0 0 12zm-3.5-1L7 21l5-3 5 3-1.5-7",
	"license":   "M7 3h10a1 1 0 0 1 1 1v16a1 1 0 0 1-1 1H7a1 1 0 0 1-1-1V4a1 1 0 0 1 1-1zm2 5h6M9 12h6M9 16h3",
	"document":  "M14 3H7a1 1 0 0 0-1 1v16a1 1 0 0 0 1 1h10a1 1 0 0 0 1-1V7l-4-4zm0 0v4h4",
	"home":      "M3 11l9-7 9 7v9a1 1 0 0 1-1 1h-5v-6h-6v6H4a1 1 0 0 1-1-1v-9z",
	"leaf":      "M5 21c0-9 6-15 15-16-1 9-7 15-15 16zm0 0 8-8",
	"states":    "M3 6l6-3 6 3 6-3v15l-6 3-6-3-6 3V6zm6-3v15m6-12v15",
	"facebook":  "M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z",
	"instagram": "M7 3h10a4 4 0 0 1 4 4v10a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4V7a4 4 0 0 1 4-4zm5 13a4 4 0 1 0 0-8 4 4 0 0 0 0 8zm5-9.5h.01",
	"google":    "M21 12.2c0-.7-.1-1.4-.2-2H12v3.8h5a4.3 4.3 0 0 1-1.9 2.8v2.3h3A9 9 0 0 0 21 12.2zM12 21a8.9 8.9 0 0 0 6.1-2.2l-3-2.3a5.5 5.5 0 0 1-8.2-2.9H3.8v2.4A9 9 0 0 0 12 21z",
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
