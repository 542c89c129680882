package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/logos"
	"github.com/gin-gonic/gin"
)

// LogoHandler serves a normalized partner logo. Any failure is a plain 404
// so the marquee's onerror swaps in the brand name. Only partner domains are
// fetched; anything else never reaches the provider or the cache.
func LogoHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d.Logos == nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		domain, err := logos.NormalizeDomain(c.Param("domain"))
		if err != nil || !content.IsPartnerDomain(domain) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		logo, err := d.Logos.Get(c.Request.Context(), domain)
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				c.AbortWithStatus(statusClientClosed)
			default:
				c.Header("Cache-Control", "public, max-age=300")
				c.AbortWithStatus(http.StatusNotFound)
			}
			return
		}

		etag := fmt.Sprintf(`"%s-%d"`, logo.Domain, logo.FetchedAt.Unix())
		c.Header("ETag", etag)
		c.Header("Cache-Control", "public, max-age=86400")
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, "image/png", logo.PNG)
	}
}
