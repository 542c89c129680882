package handlers

import (
	"net/http"
	"strings"

	"github.com/devcontracting/dcsite/internal/components"
	"github.com/gin-gonic/gin"
)

// HomeHandler renders the landing page with an idle contact form.
func HomeHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, release := d.frame(c)
		defer release()

		noStore(c)
		render(c, http.StatusOK, components.HomePage(components.HomeProps{
			Frame: f,
			Speed: d.UI.MarqueeSpeed,
			Logos: d.logoLookup(),
			Form:  components.ContactFormView{CSRFToken: csrfToken(c)},
		}))
	}
}

// PageHandler renders a markdown content page by slug.
func PageHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.Trim(c.Param("slug"), "/")
		if d.Pages == nil || slug == "" {
			NotFoundHandler(d)(c)
			return
		}

		p, ok := d.Pages.Get(slug)
		if !ok {
			NotFoundHandler(d)(c)
			return
		}

		f, release := d.frame(c)
		defer release()

		render(c, http.StatusOK, components.ContentPage(f, p.Title, p.Description, p.HTML))
	}
}

// NotFoundHandler renders the themed 404 page, or JSON for API clients.
func NotFoundHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		f, release := d.frame(c)
		defer release()

		render(c, http.StatusNotFound, components.NotFoundPage(f))
	}
}

// HealthHandler reports liveness and database reachability.
func HealthHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d.DB != nil {
			sqlDB, err := d.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				d.log().Error(err, "health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
