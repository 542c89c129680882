// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"time"

	"github.com/devcontracting/dcsite/internal/auth"
	"github.com/devcontracting/dcsite/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RouterOptions are the transport-level knobs of NewRouter.
type RouterOptions struct {
	BlockedIPs []string
	// RateLimit submissions per RateWindow per IP on the POST endpoints.
	RateLimit  int
	RateWindow time.Duration
	// TrustedProxies is passed to gin; nil trusts none.
	TrustedProxies []string
}

// Router is the configured engine plus the resources it owns.
type Router struct {
	*gin.Engine
	limiter *middleware.RateLimiter
}

// Close stops the rate limiter's cleanup goroutine.
func (r *Router) Close() {
	r.limiter.Stop()
}

// NewRouter wires every route of the site.
func NewRouter(d *Deps, opts RouterOptions) (*Router, error) {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = 10 * time.Minute
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.log()))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPFilterMiddleware(opts.BlockedIPs))

	// System routes
	r.GET("/health", HealthHandler(d))
	r.GET("/robots.txt", RobotsHandler)
	r.GET("/static/*filepath", StaticHandler())
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/static/favicon.svg")
	})
	r.GET("/theme.css", ThemeCSSHandler(d.UI))
	r.GET("/logos/:domain", LogoHandler(d))

	limiter := middleware.NewRateLimiter(opts.RateLimit, opts.RateWindow)
	rateLimited := middleware.RateLimitMiddleware(limiter, "/contact", "/api/contact", auth.LoginPath)

	site := r.Group("/")
	site.Use(middleware.CSRFMiddleware(d.UI.SecureCookies))
	{
		site.GET("/", HomeHandler(d))
		site.POST("/contact", rateLimited, ContactSubmitHandler(d))
		site.POST("/api/contact", rateLimited, ContactAPIHandler(d))

		adminGroup := site.Group("/admin")
		{
			adminGroup.GET("/admin.css", AdminCSSHandler())
			adminGroup.GET("/login", LoginFormHandler(d))
			adminGroup.POST("/login", rateLimited, LoginHandler(d))

			adminGroup.GET("/", func(c *gin.Context) {
				c.Redirect(http.StatusFound, "/admin/leads")
			})

			adminGroup.Use(auth.RequireAdmin())
			{
				adminGroup.POST("/logout", LogoutHandler(d))
				adminGroup.GET("/leads", LeadsHandler(d))
				adminGroup.GET("/leads.json", ExportLeadsHandler(d))
				adminGroup.POST("/leads/:id/delete", DeleteLeadHandler(d))
			}
		}
	}

	// Content pages live at the top level too: /about, /privacy.
	r.NoRoute(middleware.CSRFMiddleware(d.UI.SecureCookies), func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			NotFoundHandler(d)(c)
			return
		}
		c.Params = append(c.Params, gin.Param{Key: "slug", Value: c.Request.URL.Path})
		PageHandler(d)(c)
	})

	return &Router{Engine: r, limiter: limiter}, nil
}
