// SPDX-License-Identifier: MIT

// Package tls provisions Let's Encrypt certificates for the site's domains.
package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/caddyserver/certmagic"
	"github.com/devcontracting/dcsite/internal/logger"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	log       *logger.Logger
	certmagic *certmagic.Config
	issuer    *certmagic.ACMEIssuer
}

// NewManager creates a new TLS manager
func NewManager(cfg *Config, log *logger.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if len(cfg.Domains()) == 0 {
		return nil, fmt.Errorf("no domains to manage")
	}
	if log == nil {
		log = logger.Nop()
	}

	var magicCfg *certmagic.Config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return magicCfg, nil
		},
	})

	magicCfg = certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
	})

	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	issuer := certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
		CA:     ca,
		Email:  cfg.Email,
		Agreed: true,
	})
	magicCfg.Issuers = []certmagic.Issuer{issuer}

	return &Manager{
		cfg:       cfg,
		log:       log,
		certmagic: magicCfg,
		issuer:    issuer,
	}, nil
}

// Manage starts obtaining and renewing certificates in the background
func (m *Manager) Manage(ctx context.Context) error {
	domains := m.cfg.Domains()
	m.log.WithFields(map[string]any{"domains": domains, "staging": m.cfg.Staging}).Info("managing certificates")

	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}
	return nil
}

// HTTPChallengeHandler answers ACME HTTP-01 challenges and passes
// everything else to next.
func (m *Manager) HTTPChallengeHandler(next http.Handler) http.Handler {
	return m.issuer.HTTPChallengeHandler(next)
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	cfg := m.certmagic.TLSConfig()
	cfg.NextProtos = append([]string{"h2", "http/1.1"}, cfg.NextProtos...)
	return cfg
}
