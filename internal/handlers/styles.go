// SPDX-License-Identifier: MIT
package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sync"

	"github.com/devcontracting/dcsite/internal/themes"
	"github.com/gin-gonic/gin"
)

const (
	// Lead inbox palette
	ColorBgPrimary   = "#FAFAF8" // Cream background
	ColorBgCard      = "#FFFFFF" // White card
	ColorTextPrimary = "#2D2D2D" // Dark charcoal
	ColorTextSecond  = "#6B7280" // Light gray
	ColorAccent      = "#8B5A2B" // Cedar
	ColorAccentHover = "#6F4620" // Darker cedar
	ColorSuccess     = "#10B981" // Green (notified)
	ColorWarning     = "#F59E0B" // Amber (new)
	ColorDanger      = "#EF4444" // Red (notify failed, delete)
	ColorBorder      = "#E5E5E3" // Subtle border
)

// AdminCSS returns the lead inbox stylesheet
func AdminCSS() string {
	return `
:root {
	--color-bg-primary: ` + ColorBgPrimary + `;
	--color-bg-card: ` + ColorBgCard + `;
	--color-text-primary: ` + ColorTextPrimary + `;
	--color-text-secondary: ` + ColorTextSecond + `;
	--color-accent: ` + ColorAccent + `;
	--color-accent-hover: ` + ColorAccentHover + `;
	--color-success: ` + ColorSuccess + `;
	--color-warning: ` + ColorWarning + `;
	--color-danger: ` + ColorDanger + `;
	--color-border: ` + ColorBorder + `;
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--spacing-lg: 40px;
	--radius-sm: 4px;
	--radius-base: 6px;
	--shadow-sm: 0 1px 3px rgba(0, 0, 0, 0.1);
	--transition: 200ms ease;
	--focus-ring-color: rgba(139, 90, 43, 0.15);
}

* { box-sizing: border-box; }

body.admin {
	font-family: var(--font-family);
	background: var(--color-bg-primary);
	color: var(--color-text-primary);
	margin: 0;
	line-height: 1.5;
}

h1 { font-size: 28px; font-weight: 700; margin: 0; }

a {
	color: var(--color-accent);
	text-decoration: none;
	transition: color var(--transition);
}

a:hover { color: var(--color-accent-hover); }

input {
	font-family: inherit;
	font-size: 16px;
	padding: var(--spacing-sm) var(--spacing-base);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-sm);
	width: 100%;
}

input:focus {
	outline: none;
	border-color: var(--color-accent);
	box-shadow: 0 0 0 2px var(--focus-ring-color);
}

.admin-header {
	background: var(--color-bg-card);
	border-bottom: 1px solid var(--color-border);
	box-shadow: var(--shadow-sm);
	position: sticky;
	top: 0;
	z-index: 10;
}

.container {
	max-width: 1400px;
	margin: 0 auto;
	padding: var(--spacing-base) var(--spacing-lg);
	display: flex;
	justify-content: space-between;
	align-items: center;
}

.header-actions { display: flex; gap: var(--spacing-base); align-items: center; }
.header-actions form { margin: 0; }

.card {
	background: var(--color-bg-card);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-base);
	padding: var(--spacing-md);
	box-shadow: var(--shadow-sm);
}

.admin-login {
	max-width: 400px;
	margin: 10vh auto 0;
	display: grid;
	gap: var(--spacing-base);
}

.admin-login form { display: grid; gap: var(--spacing-sm); }
.admin-error { color: var(--color-danger); font-weight: 600; }
.text-muted { color: var(--color-text-secondary); font-size: 13px; }
.empty { padding: var(--spacing-lg) 0; color: var(--color-text-secondary); }

.admin-container {
	max-width: 1400px;
	margin: 0 auto;
	padding: var(--spacing-lg);
}

.filters { display: flex; gap: var(--spacing-sm); margin-bottom: var(--spacing-base); }
.filter {
	padding: 4px 12px;
	border: 1px solid var(--color-border);
	border-radius: 999px;
	color: var(--color-text-secondary);
}
.filter--active { background: var(--color-accent); border-color: var(--color-accent); color: white; }
.filter--active:hover { color: white; }

.data-table { width: 100%; border-collapse: collapse; margin-top: var(--spacing-base); }
.data-table th {
	text-align: left;
	padding: var(--spacing-sm) var(--spacing-md);
	border-bottom: 2px solid var(--color-border);
	font-weight: 600;
}
.data-table td {
	padding: var(--spacing-sm) var(--spacing-md);
	border-bottom: 1px solid var(--color-border);
	vertical-align: top;
}
.data-table tr:hover { background: var(--color-bg-card); }
.data-table td.project { max-width: 480px; white-space: pre-wrap; }
.data-table form { margin: 0; }

.badge {
	display: inline-block;
	padding: 2px 8px;
	border-radius: var(--radius-sm);
	font-size: 12px;
	font-weight: 600;
	color: white;
}
.badge--new { background: var(--color-warning); }
.badge--notified { background: var(--color-success); }
.badge--notify_failed { background: var(--color-danger); }

.pager { display: flex; gap: var(--spacing-base); margin-top: var(--spacing-md); }

.btn {
	background: var(--color-accent);
	color: white;
	padding: var(--spacing-sm) var(--spacing-base);
	border: none;
	border-radius: var(--radius-base);
	font-size: 14px;
	font-weight: 600;
	cursor: pointer;
	transition: opacity var(--transition);
	display: inline-block;
}
.btn:hover { opacity: 0.9; color: white; }
.btn-small { padding: 4px 12px; font-size: 13px; }
.btn-secondary { background: var(--color-text-secondary); }
.btn-danger { background: #dc2626; }
.btn-danger:hover { background: #b91c1c; }
`
}

// cssAsset is a generated stylesheet with a content ETag.
type cssAsset struct {
	body string
	etag string
}

func newCSSAsset(body string) cssAsset {
	sum := sha256.Sum256([]byte(body))
	return cssAsset{body: body, etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
}

func (a cssAsset) serve(c *gin.Context) {
	c.Header("ETag", a.etag)
	c.Header("Cache-Control", "public, max-age=3600")
	if c.GetHeader("If-None-Match") == a.etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(a.body))
}

// AdminCSSHandler serves /admin/admin.css
func AdminCSSHandler() gin.HandlerFunc {
	asset := newCSSAsset(AdminCSS())
	return asset.serve
}

// ThemeCSSHandler serves /theme.css for the configured palette. The
// stylesheet is generated once on first request.
func ThemeCSSHandler(ui UISettings) gin.HandlerFunc {
	var (
		once  sync.Once
		asset cssAsset
	)
	return func(c *gin.Context) {
		once.Do(func() {
			asset = newCSSAsset(themes.Stylesheet(ui.Palette, ui.DarkMode))
		})
		asset.serve(c)
	}
}
