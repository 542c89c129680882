package themes

// DefaultPalette is the brand palette used when ui.palette is unset or unknown.
const DefaultPalette = "cedar"

// Palette defines the base colors for a theme
type Palette struct {
	Name      string // "cedar", "slate", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
	Accent    string // drafting line color, hex #RRGGBB
}

var palettes = map[string]*Palette{
	"cedar": {
		Name:      "cedar",
		Primary:   "#c1733f",
		Secondary: "#0f172a",
		Accent:    "#c1733f",
	},
	"slate": {
		Name:      "slate",
		Primary:   "#334155",
		Secondary: "#0f172a",
		Accent:    "#94a3b8",
	},
	"blueprint": {
		Name:      "blueprint",
		Primary:   "#1d4ed8",
		Secondary: "#0f172a",
		Accent:    "#60a5fa",
	},
	"amber": {
		Name:      "amber",
		Primary:   "#d97706",
		Secondary: "#1e293b",
		Accent:    "#f59e0b",
	},
	"forest": {
		Name:      "forest",
		Primary:   "#166534",
		Secondary: "#1c1917",
		Accent:    "#a3a380",
	},
	"neutral": {
		Name:      "neutral",
		Primary:   "#525252",
		Secondary: "#171717",
		Accent:    "#a3a3a3",
	},
}

var paletteOrder = []string{"cedar", "slate", "blueprint", "amber", "forest", "neutral"}

// GetPalette returns a palette by name, or nil
func GetPalette(name string) *Palette {
	p, ok := palettes[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ResolvePalette returns the named palette, falling back to DefaultPalette.
func ResolvePalette(name string) *Palette {
	if p := GetPalette(name); p != nil {
		return p
	}
	return GetPalette(DefaultPalette)
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	var out []*Palette
	for _, name := range paletteOrder {
		if p := GetPalette(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}
