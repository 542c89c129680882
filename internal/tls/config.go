package tls

import (
	"fmt"
	"os"
	"strings"

	"github.com/devcontracting/dcsite/internal/config"
)

// Config holds TLS configuration
type Config struct {
	Email        string
	CertDir      string
	Staging      bool
	BaseDomain   string
	ExtraDomains []string
	Enabled      bool
}

// LoadConfig loads TLS configuration from config system
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Email:        config.GetString("tls.email"),
		CertDir:      config.GetString("tls.cert_dir"),
		Staging:      config.GetBool("tls.staging"),
		BaseDomain:   config.GetString("server.base_domain"),
		ExtraDomains: config.GetStringSlice("tls.extra_domains"),
		Enabled:      config.GetBool("server.tls_enabled"),
	}

	// Validate required fields if TLS is enabled
	if cfg.Enabled {
		if cfg.Email == "" {
			return nil, fmt.Errorf("tls.email is required when TLS is enabled")
		}
		if cfg.BaseDomain == "" || cfg.BaseDomain == "localhost" {
			return nil, fmt.Errorf("server.base_domain must be a public domain when TLS is enabled")
		}
	}

	// Create cert directory if it doesn't exist
	if cfg.CertDir != "" {
		if err := os.MkdirAll(cfg.CertDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create cert directory: %w", err)
		}
	}

	return cfg, nil
}

// Domains is every host name a certificate is managed for: the base
// domain, its www alias, then any extras, without duplicates.
func (c *Config) Domains() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(d string) {
		d = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d == "" || seen[d] {
			return
		}
		seen[d] = true
		out = append(out, d)
	}

	if c.BaseDomain != "" {
		add(c.BaseDomain)
		if !strings.HasPrefix(strings.ToLower(c.BaseDomain), "www.") {
			add("www." + c.BaseDomain)
		}
	}
	for _, d := range c.ExtraDomains {
		add(d)
	}
	return out
}
