package themes

import (
	"strings"
	"testing"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette("cedar")
	if palette == nil {
		t.Fatal("cedar palette not found")
	}
	if palette.Primary != "#c1733f" {
		t.Errorf("expected cedar primary #c1733f, got %s", palette.Primary)
	}
}

func TestGetPaletteReturnsCopy(t *testing.T) {
	p := GetPalette("cedar")
	p.Primary = "#000000"

	if GetPalette("cedar").Primary == "#000000" {
		t.Fatal("mutating a returned palette changed the table")
	}
}

func TestResolvePaletteFallsBack(t *testing.T) {
	if got := ResolvePalette("no-such-palette"); got == nil || got.Name != DefaultPalette {
		t.Fatalf("expected fallback to %s, got %+v", DefaultPalette, got)
	}
	if got := ResolvePalette("slate"); got.Name != "slate" {
		t.Errorf("expected slate, got %s", got.Name)
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	colors := GenerateColors(GetPalette("cedar"), false)

	if colors.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if colors.Background == "" {
		t.Fatal("Background color not generated")
	}
	if colors.PrimaryContrast != "#ffffff" {
		t.Errorf("expected white text on cedar, got %s", colors.PrimaryContrast)
	}
}

func TestGenerateColorsNilPalette(t *testing.T) {
	colors := GenerateColors(nil, true)
	if colors.Primary != "#c1733f" {
		t.Errorf("nil palette should use cedar, got %s", colors.Primary)
	}
}

func TestListPalettes(t *testing.T) {
	palettes := ListPalettes()
	if len(palettes) != len(paletteOrder) {
		t.Errorf("expected %d palettes, got %d", len(paletteOrder), len(palettes))
	}
	if palettes[0].Name != DefaultPalette {
		t.Errorf("default palette should be listed first, got %s", palettes[0].Name)
	}

	names := make(map[string]bool)
	for _, p := range palettes {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestContrastText(t *testing.T) {
	cases := map[string]string{
		"#ffffff": "#000000",
		"#fff":    "#000000",
		"#f59e0b": "#000000",
		"#0f172a": "#ffffff",
		"bogus":   "#ffffff",
	}
	for in, want := range cases {
		if got := ContrastText(in); got != want {
			t.Errorf("ContrastText(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestGeneratedColorsAreHex(t *testing.T) {
	for _, p := range ListPalettes() {
		colors := GenerateColors(p, false)
		for _, c := range []string{colors.Primary, colors.Secondary, colors.Accent, colors.Background, colors.Text} {
			if !strings.HasPrefix(c, "#") || (len(c) != 7 && len(c) != 4) {
				t.Errorf("%s: invalid hex color %q", p.Name, c)
			}
		}
	}
}
