package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	csrfCookieName = "dcsite_csrf"
	// CSRFHeaderName carries the token on script submissions.
	CSRFHeaderName = "X-CSRF-Token"
	// CSRFFormField carries the token on plain form posts.
	CSRFFormField = "csrf_token"
	csrfTokenLen  = 32
	csrfMaxAge    = 3600 * 8
)

// CSRFMiddleware provides double-submit Cross-Site Request Forgery protection.
// The token cookie is readable by the page script so it can echo it in a header.
func CSRFMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(csrfCookieName, token, csrfMaxAge, "/", "", secure, false)
		}

		// Store token in context for rendering
		c.Set("csrf_token", token)

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			clientToken := c.GetHeader(CSRFHeaderName)
			if clientToken == "" {
				clientToken = c.PostForm(CSRFFormField)
			}

			if subtle.ConstantTimeCompare([]byte(clientToken), []byte(token)) != 1 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "Invalid CSRF token",
				})
				return
			}
		}

		c.Next()
	}
}

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, csrfTokenLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GetCSRFToken retrieves the CSRF token from the context for rendering
func GetCSRFToken(c *gin.Context) string {
	return c.GetString("csrf_token")
}
