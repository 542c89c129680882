package themes

import (
	"strconv"
	"strings"
)

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on top of Primary
	Secondary       string // Dark band color (navbar, footer, final CTA)
	Accent          string // Drafting line color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string
	Error           string
	Warning         string
}

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, darkMode bool) *Colors {
	if palette == nil {
		palette = GetPalette(DefaultPalette)
	}
	if darkMode {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

func generateLightColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: ContrastText(palette.Primary),
		Secondary:       palette.Secondary,
		Accent:          palette.Accent,
		Background:      "#ffffff",
		Surface:         "#f8fafc",
		Text:            "#0f172a",
		TextMuted:       "#475569",
		Border:          "#e2e8f0",
		Success:         "#16a34a",
		Error:           "#dc2626",
		Warning:         "#d97706",
	}
}

func generateDarkColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: ContrastText(palette.Primary),
		Secondary:       "#020617",
		Accent:          palette.Accent,
		Background:      "#0f172a",
		Surface:         "#1e293b",
		Text:            "#f1f5f9",
		TextMuted:       "#94a3b8",
		Border:          "#334155",
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}

// ContrastText returns black or white, whichever reads better on hex.
// Malformed input gets white.
func ContrastText(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return "#ffffff"
	}
	// ITU-R BT.601 luma
	luma := (299*r + 587*g + 114*b) / 1000
	if luma > 150 {
		return "#000000"
	}
	return "#ffffff"
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
