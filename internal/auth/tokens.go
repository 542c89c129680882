// SPDX-License-Identifier: MIT
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecret creates a random 256-bit hex secret for auth.jwt_secret
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
