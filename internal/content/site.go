// SPDX-License-Identifier: MIT

// Package content holds the site's static content tables. Everything here is
// defined at package scope and read during render; accessors hand out copies
// so a handler can never mutate what the next request sees.
package content

// Company is the singleton business record read by most components.
type Company struct {
	Name            string
	ShortName       string
	Tagline         string
	Phone           string
	Email           string
	Location        string
	ServiceArea     string
	ServiceAreaLong string
	Hours           string
}

// PhoneHref returns the tel: URI for the company phone number.
func (c Company) PhoneHref() string {
	return PhoneHref(c.Phone)
}

// EmailHref returns the mailto: URI for the company email address.
func (c Company) EmailHref() string {
	return MailHref(c.Email)
}

// License describes the CCB license.
type License struct {
	Number    string
	Display   string
	VerifyURL string
}

// BBB describes Better Business Bureau accreditation.
type BBB struct {
	Accredited      bool
	Rating          string
	AccreditedSince string
	ProfileURL      string
	Display         string
}

// Licensing groups accreditation facts shown in badges and the footer.
type Licensing struct {
	CCB               License
	BBB               BBB
	States            []string
	LeadSafeCertified bool
	Insured           bool
	Bonded            bool
}

// SocialLink is an outbound social profile link.
type SocialLink struct {
	Name string
	Href string
	Icon string
}

// SubmenuItem is a child entry of a NavItem.
type SubmenuItem struct {
	Name        string
	Href        string
	Description string
}

// NavItem is a top-level navigation entry. Primary items get a "Popular"
// badge in the mobile menu; secondary items are rendered muted.
type NavItem struct {
	Name      string
	Href      string
	Primary   bool
	Secondary bool
	Submenu   []SubmenuItem
}

// HasSubmenu reports whether the item owns submenu entries.
func (n NavItem) HasSubmenu() bool {
	return len(n.Submenu) > 0
}

// Link is a plain labelled hyperlink.
type Link struct {
	Name string
	Href string
}

// SEO holds the default document metadata.
type SEO struct {
	SiteName           string
	DefaultTitle       string
	DefaultDescription string
	DefaultImage       string
}

// TrustBadge is a short credential shown under the hero.
type TrustBadge struct {
	Label string
	Href  string
	Icon  string
}

var company = Company{
	Name:            "Development Contracting",
	ShortName:       "DC",
	Tagline:         "Building Dreams. Restoring Homes.",
	Phone:           "(503) 470-7007",
	Email:           "info@developmentcontracting.com",
	Location:        "Portland, Oregon",
	ServiceArea:     "Oregon & Washington",
	ServiceAreaLong: "Serving Oregon and Washington",
	Hours:           "Available Mon–Sat, 7am–6pm",
}

var licensing = Licensing{
	CCB: License{
		Number:    "221238",
		Display:   "CCB #221238",
		VerifyURL: "https://www.ccb.state.or.us/search/",
	},
	BBB: BBB{
		Accredited:      true,
		Rating:          "A+",
		AccreditedSince: "12/19/2025",
		ProfileURL:      "https://www.bbb.org/",
		Display:         "BBB Accredited • A+ Rated",
	},
	States:            []string{"Oregon", "Washington"},
	LeadSafeCertified: true,
	Insured:           true,
	Bonded:            true,
}

var socialLinks = []SocialLink{
	{Name: "Facebook", Href: "https://facebook.com/developmentcontracting", Icon: "facebook"},
	{Name: "Instagram", Href: "https://instagram.com/developmentcontracting", Icon: "instagram"},
	{Name: "Google Business", Href: "https://g.page/developmentcontracting", Icon: "google"},
}

// Priority order matters: the desktop bar truncates from the end.
var mainNavigation = []NavItem{
	{
		Name:    "Remodeling",
		Href:    "/remodeling",
		Primary: true,
		Submenu: []SubmenuItem{
			{Name: "Kitchen Remodeling", Href: "/remodeling/kitchen", Description: "Cabinets, counters and layout"},
			{Name: "Bathroom Remodeling", Href: "/remodeling/bathroom", Description: "Powder rooms to master suites"},
			{Name: "Whole Home Renovation", Href: "/remodeling/whole-home", Description: "Permits to final walkthrough"},
		},
	},
	{
		Name:    "Additions",
		Href:    "/additions",
		Primary: true,
		Submenu: []SubmenuItem{
			{Name: "Room Additions", Href: "/additions/room", Description: "More room, same character"},
			{Name: "In-Law Additions", Href: "/additions/in-law", Description: "Private space for family"},
		},
	},
	{Name: "Residential", Href: "/residential"},
	{Name: "Restoration", Href: "/restoration", Secondary: true},
	{Name: "About", Href: "/about"},
	{Name: "Contact", Href: "/contact"},
}

var footerServices = []Link{
	{Name: "Kitchen Remodeling", Href: "/remodeling/kitchen"},
	{Name: "Bathroom Remodeling", Href: "/remodeling/bathroom"},
	{Name: "Whole Home Renovation", Href: "/remodeling/whole-home"},
	{Name: "Room Additions", Href: "/additions/room"},
	{Name: "In-Law Additions", Href: "/additions/in-law"},
	{Name: "Water Damage Restoration", Href: "/restoration/water-damage"},
}

var footerCompany = []Link{
	{Name: "About Us", Href: "/about"},
	{Name: "Our Projects", Href: "/projects"},
	{Name: "Reviews", Href: "/reviews"},
	{Name: "Contact", Href: "/contact"},
	{Name: "Service Areas", Href: "/service-areas"},
	{Name: "Privacy Policy", Href: "/privacy"},
}

var seoDefaults = SEO{
	SiteName:           "Development Contracting",
	DefaultTitle:       "Remodeling & Home Additions | Development Contracting | Oregon & Washington",
	DefaultDescription: "Expert remodeling, home additions, and renovation services in Oregon & Washington. Licensed, bonded, and insured. CCB #221238. BBB Accredited with A+ Rating. Call (503) 470-7007.",
	DefaultImage:       "/og-image.jpg",
}

var trustBadges = []TrustBadge{
	{Label: "BBB Accredited • A+ Rated", Href: "https://www.bbb.org/", Icon: "bbb"},
	{Label: "CCB #221238", Href: "https://www.ccb.state.or.us/search/", Icon: "license"},
	{Label: "Licensed in OR + WA", Icon: "shield"},
	{Label: "Lead-Safe Certified (EPA RRP)", Icon: "check"},
}

// Site returns the company record.
func Site() Company {
	return company
}

// Licenses returns the licensing record.
func Licenses() Licensing {
	l := licensing
	l.States = append([]string(nil), licensing.States...)
	return l
}

// Social returns the social profile links.
func Social() []SocialLink {
	return append([]SocialLink(nil), socialLinks...)
}

// MainNavigation returns the primary navigation in priority order.
func MainNavigation() []NavItem {
	out := make([]NavItem, len(mainNavigation))
	for i, item := range mainNavigation {
		item.Submenu = append([]SubmenuItem(nil), item.Submenu...)
		out[i] = item
	}
	return out
}

// FooterServices returns the footer's service links.
func FooterServices() []Link {
	return append([]Link(nil), footerServices...)
}

// FooterCompany returns the footer's company links.
func FooterCompany() []Link {
	return append([]Link(nil), footerCompany...)
}

// SEODefaults returns the default document metadata.
func SEODefaults() SEO {
	return seoDefaults
}

// TrustBadges returns the hero credential badges.
func TrustBadges() []TrustBadge {
	return append([]TrustBadge(nil), trustBadges...)
}
