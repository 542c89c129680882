package tls

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"time"
)

// certmagic's directory names for the Let's Encrypt endpoints
var caDirs = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
	Staging         bool
}

// CertificateStatus returns the status of every provisioned certificate.
// Domains without a certificate on disk yet are omitted.
func (c *Config) CertificateStatus(now time.Time) []CertificateStatus {
	var statuses []CertificateStatus

	for _, domain := range c.Domains() {
		for i, ca := range caDirs {
			path := filepath.Join(c.CertDir, "certificates", ca, domain, domain+".crt")
			cert, err := readCertificate(path)
			if err != nil {
				continue
			}
			statuses = append(statuses, CertificateStatus{
				Domain:          domain,
				Issuer:          cert.Issuer.CommonName,
				NotBefore:       cert.NotBefore,
				NotAfter:        cert.NotAfter,
				DaysUntilExpiry: int(cert.NotAfter.Sub(now).Hours() / 24),
				Staging:         i == 1,
			})
			break
		}
	}

	return statuses
}

func readCertificate(path string) (*x509.Certificate, error) {
	certPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, os.ErrInvalid
	}
	return x509.ParseCertificate(block.Bytes)
}
