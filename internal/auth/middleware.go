package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName holds the admin session token.
const CookieName = "dcsite_admin"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// SetSessionCookie stores a token for the configured session lifetime
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(tokenTTL().Seconds()), "/admin", "", secure, true)
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/admin", "", secure, true)
}

// RequireAdmin middleware validates the session cookie against the configured admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			redirectToLogin(c)
			return
		}

		claims, err := ValidateToken(cookie)
		if err != nil {
			redirectToLogin(c)
			return
		}

		// A token for a previous admin address is no longer valid
		if admin := AdminEmail(); admin == "" || claims.Email != admin {
			redirectToLogin(c)
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.Path)
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// SafeNext keeps post-login redirects inside the admin area
func SafeNext(next string) string {
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/admin/") || u.Path == LoginPath {
		return "/admin/leads"
	}
	return u.Path
}
