package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/devcontracting/dcsite/internal/auth"
	"github.com/devcontracting/dcsite/internal/backup"
	"github.com/devcontracting/dcsite/internal/components"
	"github.com/devcontracting/dcsite/internal/leads"
	"github.com/devcontracting/dcsite/internal/models"
	"github.com/gin-gonic/gin"
)

// LeadsPerPage is the inbox page size.
const LeadsPerPage = 25

// LoginFormHandler renders the sign-in page
func LoginFormHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		noStore(c)
		render(c, http.StatusOK, components.AdminLoginPage(components.AdminLoginView{
			Next:      auth.SafeNext(c.Query("next")),
			CSRFToken: csrfToken(c),
		}))
	}
}

// LoginHandler handles admin login requests
func LoginHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")
		next := auth.SafeNext(c.PostForm("next"))

		fail := func(status int, msg string) {
			noStore(c)
			render(c, status, components.AdminLoginPage(components.AdminLoginView{
				Email:     email,
				Error:     msg,
				Next:      next,
				CSRFToken: csrfToken(c),
			}))
		}

		if err := auth.Authenticate(email, password); err != nil {
			log := d.log().WithFields(map[string]any{"ip": c.ClientIP()})
			if errors.Is(err, auth.ErrNoAdmin) {
				log.Warn("login attempted with no admin configured")
				fail(http.StatusServiceUnavailable, "Sign-in is not configured.")
				return
			}
			log.Warn("failed admin login")
			fail(http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := auth.GenerateToken(auth.AdminEmail())
		if err != nil {
			d.log().Error(err, "failed to generate admin token")
			fail(http.StatusInternalServerError, "Sign-in failed. Please try again.")
			return
		}

		auth.SetSessionCookie(c, token, d.UI.SecureCookies)
		c.Redirect(http.StatusFound, next)
	}
}

// LogoutHandler handles admin logout requests
func LogoutHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c, d.UI.SecureCookies)
		c.Redirect(http.StatusFound, auth.LoginPath)
	}
}

func leadStatusParam(c *gin.Context) string {
	switch s := c.Query("status"); s {
	case models.StatusNew, models.StatusNotified, models.StatusNotifyFailed:
		return s
	default:
		return ""
	}
}

// LeadsHandler renders one page of the lead inbox
func LeadsHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := leadStatusParam(c)
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		db := d.DB.WithContext(c.Request.Context())

		// One extra row tells us whether there is an older page.
		list, err := leads.List(db, leads.ListOptions{
			Status: status,
			Limit:  LeadsPerPage + 1,
			Offset: (page - 1) * LeadsPerPage,
		})
		if err != nil {
			d.log().Error(err, "failed to list leads")
			c.String(http.StatusInternalServerError, "Failed to load leads")
			return
		}
		total, err := leads.Count(db, status)
		if err != nil {
			d.log().Error(err, "failed to count leads")
			c.String(http.StatusInternalServerError, "Failed to load leads")
			return
		}

		hasMore := len(list) > LeadsPerPage
		if hasMore {
			list = list[:LeadsPerPage]
		}

		noStore(c)
		render(c, http.StatusOK, components.AdminLeadsPage(components.LeadsView{
			Leads:     list,
			Status:    status,
			Page:      page,
			HasMore:   hasMore,
			Total:     total,
			CSRFToken: csrfToken(c),
			AdminUser: c.GetString("admin_email"),
		}))
	}
}

// ExportLeadsHandler downloads every lead as JSON
func ExportLeadsHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := fmt.Sprintf("leads-%s.json", d.now().UTC().Format("20060102-150405"))
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		noStore(c)
		c.Status(http.StatusOK)

		n, err := backup.ExportLeads(c.Request.Context(), d.DB, c.Writer, leadStatusParam(c))
		if err != nil {
			// Headers are gone; all we can do is log.
			d.log().Error(err, "lead export failed")
			return
		}
		d.log().WithFields(map[string]any{"count": n, "admin": c.GetString("admin_email")}).Info("leads exported")
	}
}

// DeleteLeadHandler soft-deletes one lead
func DeleteLeadHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid lead ID")
			return
		}

		if err := leads.Delete(d.DB.WithContext(c.Request.Context()), uint(id)); err != nil {
			if errors.Is(err, leads.ErrNotFound) {
				c.String(http.StatusNotFound, "Lead not found")
				return
			}
			d.log().Error(err, "failed to delete lead")
			c.String(http.StatusInternalServerError, "Failed to delete lead")
			return
		}

		d.log().WithFields(map[string]any{"lead_id": id, "admin": c.GetString("admin_email")}).Info("lead deleted")
		c.Redirect(http.StatusSeeOther, "/admin/leads")
	}
}
