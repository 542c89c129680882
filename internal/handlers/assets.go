// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"

	"github.com/devcontracting/dcsite/internal/web"
	"github.com/gin-gonic/gin"
)

// StaticHandler serves the embedded site assets under /static.
func StaticHandler() gin.HandlerFunc {
	fileServer := http.StripPrefix("/static", http.FileServer(http.FS(web.Static())))
	return func(c *gin.Context) {
		filename := c.Param("filepath")
		if filename == "" || filename == "/" || strings.HasSuffix(filename, "/") {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Header("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

// RobotsHandler keeps crawlers out of the lead inbox
func RobotsHandler(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /admin/\nDisallow: /api/\n")
}
