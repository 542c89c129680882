package widgets

// ImageState is the load state of a single remote logo.
type ImageState int

const (
	ImagePending ImageState = iota
	ImageLoaded
	ImageFailed
)

func (s ImageState) String() string {
	switch s {
	case ImageLoaded:
		return "loaded"
	case ImageFailed:
		return "failed"
	default:
		return "pending"
	}
}

// ShowsText reports whether the card renders its name instead of the image.
func (s ImageState) ShowsText() bool {
	return s == ImageFailed
}

// LogoCard is the per-item state of one marquee card. Each card owns its
// own state; a failure never touches siblings.
type LogoCard struct {
	Name    string
	Tagline string
	image   ImageState
}

// NewLogoCard returns a card whose image has not loaded yet.
func NewLogoCard(name, tagline string) *LogoCard {
	return &LogoCard{Name: name, Tagline: tagline}
}

// Loaded records a successful load. A failed card stays failed.
func (c *LogoCard) Loaded() {
	if c.image == ImagePending {
		c.image = ImageLoaded
	}
}

// Failed records a load or decode error.
func (c *LogoCard) Failed() {
	c.image = ImageFailed
}

// Image returns the card's image state.
func (c *LogoCard) Image() ImageState {
	return c.image
}
