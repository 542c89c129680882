package content

// Service is a card in one of the service groups.
type Service struct {
	Title       string
	Description string
	Href        string
	Featured    bool
}

// Partner is a brand shown in the logo marquee. Identity is the name.
type Partner struct {
	Name    string
	Domain  string
	Href    string
	Tagline string
}

// Award is a credential card.
type Award struct {
	Title       string
	Description string
	Icon        string
	VerifyURL   string
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote    string
	Name     string
	Location string
	Type     string
	Rating   int
}

// Stat is a proof number in the stats bar.
type Stat struct {
	Value string
	Label string
}

// ProcessStep is one numbered step of the working process.
type ProcessStep struct {
	Number      string
	Title       string
	Description string
}

// Reason is a "why choose us" card.
type Reason struct {
	Title       string
	Description string
	Icon        string
}

// CTA is a call-to-action button.
type CTA struct {
	Text  string
	Href  string
	Phone string
}

// Hero is the above-the-fold copy.
type Hero struct {
	Eyebrow      string
	Headline     string
	Subheadline  string
	PrimaryCTA   CTA
	SecondaryCTA CTA
}

// FinalCTA is the closing banner copy.
type FinalCTA struct {
	Headline    string
	Subheadline string
	PrimaryCTA  CTA
}

// Services groups the three service tables.
type Services struct {
	Remodeling  []Service
	Additions   []Service
	Restoration []Service
}

var quickNav = []Link{
	{Name: "Services", Href: "#services"},
	{Name: "About", Href: "#about"},
	{Name: "Reviews", Href: "#reviews"},
	{Name: "Contact", Href: "#contact"},
}

var remodelingServices = []Service{
	{
		Title:       "Kitchen Remodel",
		Description: "Transform your kitchen with custom cabinets, modern countertops, and thoughtful design that enhances both function and beauty.",
		Href:        "/remodeling/kitchen",
		Featured:    true,
	},
	{
		Title:       "Bathroom Remodel",
		Description: "From powder rooms to master suites. Walk-in showers, soaking tubs, and accessible designs tailored to your needs.",
		Href:        "/remodeling/bathroom",
		Featured:    true,
	},
	{
		Title:       "Whole Home Renovation",
		Description: "Complete interior and exterior renovations. We manage every detail from permits to final walkthrough.",
		Href:        "/remodeling/whole-home",
	},
	{
		Title:       "Interior Renovation",
		Description: "Open floor plans, updated finishes, and modern touches that bring new life to your living spaces.",
		Href:        "/remodeling/interior",
	},
	{
		Title:       "Exterior Renovation",
		Description: "Curb appeal upgrades including siding, windows, doors, and outdoor living spaces.",
		Href:        "/remodeling/exterior",
	},
}

var additionsServices = []Service{
	{
		Title:       "Room Addition",
		Description: "Expand your living space with a seamlessly integrated room addition that matches your home's character.",
		Href:        "/additions/room",
		Featured:    true,
	},
	{
		Title:       "In-Law Addition",
		Description: "Create comfortable, private living space for family members with full kitchenette and accessibility options.",
		Href:        "/additions/in-law",
		Featured:    true,
	},
	{
		Title:       "Home Additions Overview",
		Description: "From sunrooms to second stories, we design and build additions that feel like they've always been there.",
		Href:        "/additions",
	},
}

var restorationServices = []Service{
	{
		Title:       "Water Damage",
		Description: "Expert water damage restoration. We extract water, dry structures, and restore your home to pre-loss condition.",
		Href:        "/restoration/water-damage",
	},
	{
		Title:       "Fire Damage",
		Description: "Complete fire damage restoration from cleanup to reconstruction. We handle insurance coordination.",
		Href:        "/restoration/fire-damage",
	},
	{
		Title:       "Exterior Damage",
		Description: "Storm damage, wind damage, and exterior repairs to protect your home from the elements.",
		Href:        "/restoration/exterior",
	},
	{
		Title:       "General Restoration",
		Description: "Comprehensive restoration services to return your property to its original condition.",
		Href:        "/restoration",
	},
}

var partners = []Partner{
	{Name: "Kohler", Domain: "kohler.com", Href: "/projects?brand=kohler", Tagline: "Kitchen & Bath"},
	{Name: "Moen", Domain: "moen.com", Href: "/projects?brand=moen", Tagline: "Fixtures"},
	{Name: "Delta Faucet", Domain: "deltafaucet.com", Href: "/projects?brand=delta", Tagline: "Faucets"},
	{Name: "Andersen Windows", Domain: "andersenwindows.com", Href: "/projects?brand=andersen", Tagline: "Windows & Doors"},
	{Name: "Pella", Domain: "pella.com", Href: "/projects?brand=pella", Tagline: "Windows & Doors"},
	{Name: "James Hardie", Domain: "jameshardie.com", Href: "/projects?brand=james-hardie", Tagline: "Fiber Cement Siding"},
	{Name: "GAF", Domain: "gaf.com", Href: "/projects?brand=gaf", Tagline: "Roofing"},
	{Name: "Shaw Floors", Domain: "shawfloors.com", Href: "/projects?brand=shaw-floors", Tagline: "Flooring"},
	{Name: "Benjamin Moore", Domain: "benjaminmoore.com", Href: "/projects?brand=benjamin-moore", Tagline: "Premium Paint"},
	{Name: "CertainTeed", Domain: "certainteed.com", Href: "/projects?brand=certainteed", Tagline: "Building Materials"},
	{Name: "Milgard", Domain: "milgard.com", Href: "/projects?brand=milgard", Tagline: "Windows & Doors"},
	{Name: "American Standard", Domain: "americanstandard-us.com", Href: "/projects?brand=american-standard", Tagline: "Plumbing Fixtures"},
}

var awards = []Award{
	{Title: "BBB Accredited Business", Description: "Accredited since 12/19/2025 with A+ rating", Icon: "bbb", VerifyURL: "https://www.bbb.org/"},
	{Title: "Oregon CCB Licensed", Description: "Oregon Construction Contractors Board #221238", Icon: "license", VerifyURL: "https://www.ccb.state.or.us/search/"},
	{Title: "Licensed in OR & WA", Description: "Fully licensed to work in Oregon and Washington", Icon: "states"},
	{Title: "Lead-Safe Certified", Description: "EPA RRP certified for work in pre-1978 homes", Icon: "leaf"},
	{Title: "Bonded & Insured", Description: "Fully bonded and insured for your protection", Icon: "shield"},
	{Title: "5-Star Rated", Description: "Consistently rated 5 stars on Google Reviews", Icon: "star"},
}

var testimonials = []Testimonial{
	{
		Quote:    "They turned a stressful water damage situation into a seamless renovation. Professional, communicative, and the craftsmanship speaks for itself.",
		Name:     "Sarah M.",
		Location: "Pearl District, Portland",
		Type:     "Restoration",
		Rating:   5,
	},
	{
		Quote:    "Our kitchen remodel exceeded every expectation. They listened, suggested smart solutions, and delivered on time and on budget.",
		Name:     "Michael & Jennifer K.",
		Location: "Alberta Arts, Portland",
		Type:     "Remodeling",
		Rating:   5,
	},
	{
		Quote:    "After our basement flooded, they were there within hours. The restoration was flawless—you'd never know it happened.",
		Name:     "David R.",
		Location: "Sellwood, Portland",
		Type:     "Restoration",
		Rating:   5,
	},
	{
		Quote:    "We've used them for two bathroom renovations now. Exceptional attention to detail and always on schedule.",
		Name:     "Lisa T.",
		Location: "Hawthorne, Portland",
		Type:     "Remodeling",
		Rating:   5,
	},
	{
		Quote:    "The team was incredible from start to finish. Our new addition feels like it was always part of the house.",
		Name:     "Lingyan K.",
		Location: "Lake Oswego, OR",
		Type:     "Addition",
		Rating:   5,
	},
	{
		Quote:    "Top-notch professionalism. They handled all the permits, kept us informed daily, and the final result is stunning.",
		Name:     "Vincent G.",
		Location: "West Linn, OR",
		Type:     "Remodeling",
		Rating:   5,
	},
}

var stats = []Stat{
	{Value: "200+", Label: "Loyal Clients"},
	{Value: "10+", Label: "Years Experience"},
	{Value: "230+", Label: "Total Projects"},
	{Value: "100k+", Label: "Client Savings"},
}

var processSteps = []ProcessStep{
	{Number: "01", Title: "Free Consultation", Description: "We listen to your vision and assess the scope."},
	{Number: "02", Title: "Detailed Estimate", Description: "Transparent pricing with no hidden costs."},
	{Number: "03", Title: "Design & Permits", Description: "We handle all paperwork and approvals."},
	{Number: "04", Title: "Quality Build", Description: "Expert crews, premium materials, daily updates."},
	{Number: "05", Title: "Final Walkthrough", Description: "Your satisfaction is our success."},
}

var whyChooseUs = []Reason{
	{Title: "Licensed & Insured", Description: "CCB #221238. Fully licensed, bonded, and insured in Oregon and Washington.", Icon: "shield"},
	{Title: "BBB Accredited", Description: "A+ rated by the Better Business Bureau. Trusted since 2025.", Icon: "bbb"},
	{Title: "Insurance Expertise", Description: "We work directly with insurance companies to streamline your claim.", Icon: "document"},
	{Title: "Local & Trusted", Description: "Family-owned, Portland-based. Your neighbors are our customers.", Icon: "home"},
}

var heroContent = Hero{
	Eyebrow:     "Serving Oregon & Washington",
	Headline:    "Quality Remodeling & Home Additions",
	Subheadline: "Transform your home with expert craftsmanship. From kitchen renovations to room additions, we bring your vision to life.",
	PrimaryCTA: CTA{
		Text:  "CALL NOW",
		Href:  PhoneHref(company.Phone),
		Phone: company.Phone,
	},
	SecondaryCTA: CTA{
		Text: "Browse Services",
		Href: "#services",
	},
}

var finalCTA = FinalCTA{
	Headline:    "Ready to Start Your Project?",
	Subheadline: "From remodels to additions, our team is ready to bring your vision to life. Licensed in Oregon & Washington.",
	PrimaryCTA: CTA{
		Text:  "CALL NOW",
		Href:  PhoneHref(company.Phone),
		Phone: company.Phone,
	},
}

// HomeSections lists the home page sections in render order.
var HomeSections = []string{
	"Hero",
	"StatsBar",
	"PartnersMarquee",
	"Restoration",
	"Services",
	"WhyChooseUs",
	"About",
	"Process",
	"Projects",
	"Reviews",
	"Contact",
}

// QuickNav returns the in-page anchor navigation.
func QuickNav() []Link { return append([]Link(nil), quickNav...) }

// AllServices returns the three service groups.
func AllServices() Services {
	return Services{
		Remodeling:  append([]Service(nil), remodelingServices...),
		Additions:   append([]Service(nil), additionsServices...),
		Restoration: append([]Service(nil), restorationServices...),
	}
}

// Partners returns the marquee brands in display order.
func Partners() []Partner { return append([]Partner(nil), partners...) }

// Awards returns the credential cards.
func Awards() []Award { return append([]Award(nil), awards...) }

// Testimonials returns the customer quotes.
func Testimonials() []Testimonial { return append([]Testimonial(nil), testimonials...) }

// Stats returns the proof numbers.
func Stats() []Stat { return append([]Stat(nil), stats...) }

// ProcessSteps returns the numbered process.
func ProcessSteps() []ProcessStep { return append([]ProcessStep(nil), processSteps...) }

// WhyChooseUs returns the reasons cards.
func WhyChooseUs() []Reason { return append([]Reason(nil), whyChooseUs...) }

// HeroContent returns the hero copy.
func HeroContent() Hero { return heroContent }

// FinalCTAContent returns the closing banner copy.
func FinalCTAContent() FinalCTA { return finalCTA }
