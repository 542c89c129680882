// SPDX-License-Identifier: MIT
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/devcontracting/dcsite/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNoAdmin is returned when no admin account is configured.
var ErrNoAdmin = errors.New("admin account not configured")

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword verifies a password against a bcrypt hash using constant-time comparison
func CheckPassword(password, hash string) bool {
	if password == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AdminEmail returns the configured admin address, normalized
func AdminEmail() string {
	return strings.ToLower(strings.TrimSpace(config.GetString("auth.admin_email")))
}

// Authenticate checks credentials against the single configured admin account
func Authenticate(email, password string) error {
	admin := AdminEmail()
	hash := config.GetString("auth.admin_password_hash")
	if admin == "" || hash == "" {
		return ErrNoAdmin
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(admin)) == 1
	// Always run bcrypt so timing does not reveal the admin address
	passOK := CheckPassword(password, hash)
	if !emailOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
