// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	// DCSITE_SERVER_HTTP_PORT overrides server.http_port, and so on
	v.SetEnvPrefix("DCSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// First run: persist defaults so operators have something to edit
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.behind_proxy", false)
	v.SetDefault("server.base_domain", "localhost")
	v.SetDefault("server.tls_enabled", false)

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "/var/lib/dcsite/dcsite.db")

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
	v.SetDefault("auth.jwt_expiry_hours", 8)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password_hash", "")

	// Contact form defaults
	v.SetDefault("contact.notify_to", "info@developmentcontracting.com")
	v.SetDefault("contact.rate_limit", 5)
	v.SetDefault("contact.rate_window", "10m")
	v.SetDefault("contact.notify_timeout", "15s")

	// Logo proxy defaults
	v.SetDefault("logos.base_url", "https://logo.clearbit.com")
	v.SetDefault("logos.ttl", "24h")
	v.SetDefault("logos.failure_ttl", "30m")
	v.SetDefault("logos.warm_on_start", true)

	// Content defaults
	v.SetDefault("content.pages_dir", "")

	// Backup defaults
	v.SetDefault("backups.path", "/var/lib/dcsite/backups")
	v.SetDefault("backups.interval", "24h")
	v.SetDefault("backups.retention", 10)
	v.SetDefault("backups.enable_auto_backup", true)

	// TLS defaults
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "/var/lib/dcsite/certs")
	v.SetDefault("tls.staging", false)
	v.SetDefault("tls.extra_domains", []string{})

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", false)

	// Security defaults
	v.SetDefault("security.blocked_ips", []string{})

	// UI defaults
	v.SetDefault("ui.navbar_variant", "elegant")
	v.SetDefault("ui.scroll_hysteresis", 0)
	v.SetDefault("ui.marquee_speed", "slow")
	v.SetDefault("ui.palette", "cedar")
	v.SetDefault("ui.dark_mode", false)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as a list of strings
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
