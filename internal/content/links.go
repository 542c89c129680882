package content

import (
	"strings"
	"unicode"
)

// PhoneHref builds a tel: URI from a display phone number. Every non-digit is
// stripped; a bare 10-digit NANP number gets the +1 country code.
func PhoneHref(display string) string {
	var digits strings.Builder
	for _, r := range display {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	switch {
	case d == "":
		return ""
	case len(d) == 10:
		return "tel:+1" + d
	case len(d) == 11 && d[0] == '1':
		return "tel:+" + d
	default:
		return "tel:" + d
	}
}

// MailHref builds a mailto: URI.
func MailHref(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	return "mailto:" + addr
}

// FindPartner looks a partner up by name, case-insensitively.
func FindPartner(name string) (Partner, bool) {
	for _, p := range partners {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Partner{}, false
}

// IsPartnerDomain reports whether domain is the logo domain of a partner.
func IsPartnerDomain(domain string) bool {
	for _, p := range partners {
		if strings.EqualFold(p.Domain, domain) {
			return true
		}
	}
	return false
}

// PartnerDomains returns the logo domains of every partner in display order.
func PartnerDomains() []string {
	out := make([]string, 0, len(partners))
	for _, p := range partners {
		out = append(out, p.Domain)
	}
	return out
}
