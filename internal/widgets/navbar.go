package widgets

import "strings"

// NavbarVariant names one of the navbar designs.
type NavbarVariant string

const (
	NavbarHeader    NavbarVariant = "header"
	NavbarElegant   NavbarVariant = "elegant"
	NavbarResizable NavbarVariant = "resizable"
)

// ParseNavbarVariant returns the named variant, falling back to elegant.
func ParseNavbarVariant(name string) NavbarVariant {
	switch NavbarVariant(strings.ToLower(strings.TrimSpace(name))) {
	case NavbarHeader:
		return NavbarHeader
	case NavbarResizable:
		return NavbarResizable
	default:
		return NavbarElegant
	}
}

// Threshold returns the scroll offset in pixels past which the variant compacts.
func (v NavbarVariant) Threshold() int {
	if v == NavbarResizable {
		return 100
	}
	return 50
}

// ScrollState tracks whether the page has scrolled past a threshold.
//
// With Hysteresis 0 the rule is a strict offset > Threshold on every update.
// A positive Hysteresis keeps the scrolled state until the offset drops to
// Threshold-Hysteresis or below.
type ScrollState struct {
	Threshold  int
	Hysteresis int
	scrolled   bool
}

// NewScrollState returns a ScrollState for the variant.
func NewScrollState(v NavbarVariant, hysteresis int) *ScrollState {
	if hysteresis < 0 {
		hysteresis = 0
	}
	return &ScrollState{Threshold: v.Threshold(), Hysteresis: hysteresis}
}

// Update feeds a new vertical scroll offset and reports the resulting state
// and whether it changed.
func (s *ScrollState) Update(offset int) (scrolled, changed bool) {
	next := offset > s.Threshold
	if s.scrolled && !next && s.Hysteresis > 0 {
		next = offset > s.Threshold-s.Hysteresis
	}
	changed = next != s.scrolled
	s.scrolled = next
	return next, changed
}

// Scrolled reports the current state.
func (s *ScrollState) Scrolled() bool {
	return s.scrolled
}
