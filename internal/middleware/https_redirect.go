// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirectMiddleware redirects HTTP requests to HTTPS on httpsPort.
// ACME challenges under /.well-known/acme-challenge/ pass through.
func HTTPSRedirectMiddleware(httpsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.TLS != nil {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/.well-known/acme-challenge/") {
			c.Next()
			return
		}

		c.Redirect(http.StatusMovedPermanently, HTTPSURL(c.Request, httpsPort))
		c.Abort()
	}
}

// HTTPSURL rewrites a request URL to https, keeping path and query
func HTTPSURL(r *http.Request, httpsPort string) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if httpsPort != "" && httpsPort != "443" {
		host = net.JoinHostPort(host, httpsPort)
	}
	return "https://" + host + r.URL.RequestURI()
}
