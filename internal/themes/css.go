// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// GenerateCSS generates CSS with color variables from colors struct
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-cedar: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
}

body {
  background-color: var(--color-bg);
  color: var(--color-text);
}

a {
  color: var(--color-primary);
}

.btn {
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
}

.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
}

input, textarea, select {
  border: 1px solid var(--color-border);
  background-color: var(--color-bg);
  color: var(--color-text);
}

input:focus, textarea:focus, select:focus {
  outline: 2px solid var(--color-primary);
  outline-offset: 1px;
}

.band-dark {
  background-color: var(--color-secondary);
  color: #f8fafc;
}

.text-muted { color: var(--color-text-muted); }
.success { color: var(--color-success); }
.error { color: var(--color-error); }
.warning { color: var(--color-warning); }
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Accent,
		colors.Background, colors.Surface, colors.Text, colors.TextMuted,
		colors.Border, colors.Success, colors.Error, colors.Warning)
}

// widgetCSS carries the keyframes and state selectors the widget markup
// depends on. The reduced-motion block mirrors what the server renders for
// MotionReduced so the browser preference wins even without a client hint.
const widgetCSS = `
@keyframes marquee-scroll {
  from { transform: translateX(0); }
  to { transform: translateX(-50%); }
}

@keyframes draft-draw {
  from { stroke-dashoffset: 100; opacity: 0; }
  to { stroke-dashoffset: 0; opacity: 1; }
}

.marquee { overflow: hidden; }
.marquee-track { display: flex; width: max-content; gap: 3rem; }
.marquee[data-pause-on-hover="true"]:hover .marquee-track { animation-play-state: paused; }
.marquee--grid .marquee-track { width: auto; flex-wrap: wrap; justify-content: center; }

.logo-card { position: relative; }
.logo-card .logo-text[hidden] { display: none; }
.logo-card .tooltip[hidden] { display: none; }
.logo-card:hover .tooltip[hidden],
.logo-card:focus-within .tooltip[hidden] { display: block; }

.decor { pointer-events: none; }
.decor .draw { stroke-dasharray: 100; animation: draft-draw 1.2s ease-in-out both; }

.site-header { transition: padding 0.2s, background-color 0.2s, box-shadow 0.2s; }
.site-header[data-scrolled="true"] { box-shadow: 0 2px 12px rgba(15, 23, 42, 0.15); }

body.scroll-locked { overflow: hidden; }
.mobile-menu[aria-hidden="true"] { display: none; }

@media (prefers-reduced-motion: reduce) {
  .marquee-track { animation: none !important; flex-wrap: wrap; width: auto; justify-content: center; }
  .marquee-item[data-duplicate="true"] { display: none; }
  .decor .draw { animation: none; stroke-dasharray: none; }
  .site-header { transition: none; }
}
`

// WidgetCSS returns the widget keyframes and state selectors.
func WidgetCSS() string {
	return widgetCSS
}

// Stylesheet returns the full theme stylesheet served at /theme.css.
func Stylesheet(paletteName string, darkMode bool) string {
	colors := GenerateColors(ResolvePalette(paletteName), darkMode)

	var b strings.Builder
	b.WriteString(GenerateCSS(colors))
	b.WriteString(widgetCSS)
	return b.String()
}
