// SPDX-License-Identifier: MIT
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/devcontracting/dcsite/internal/components"
	"github.com/devcontracting/dcsite/internal/contact"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/gin-gonic/gin"
)

// statusClientClosed is logged when the visitor went away mid-submission.
const statusClientClosed = 499

// contactOutcome is one submission mapped onto what the form shows next.
type contactOutcome struct {
	status int
	view   components.ContactFormView
	// canceled means nothing should be rendered.
	canceled bool
}

func (d *Deps) submitContact(c *gin.Context, in contact.Input) contactOutcome {
	in.RemoteIP = c.ClientIP()
	in.UserAgent = c.Request.UserAgent()

	view := components.ContactFormView{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Project:   strings.TrimSpace(in.Project),
		CSRFToken: csrfToken(c),
	}

	if d.Contact == nil {
		m := widgets.NewFormMachine()
		_ = m.Submit()
		_ = m.Fail(contact.RetryMessage)
		view.Machine = m
		return contactOutcome{status: http.StatusServiceUnavailable, view: view}
	}

	res, err := d.Contact.Submit(c.Request.Context(), in)
	view.Machine = res.Machine
	view.Reference = res.Reference

	var verr *contact.ValidationError
	switch {
	case err == nil:
		return contactOutcome{status: http.StatusOK, view: view}
	case errors.As(err, &verr):
		view.FieldErrors = verr.Fields
		return contactOutcome{status: http.StatusUnprocessableEntity, view: view}
	case errors.Is(err, contact.ErrUnavailable):
		// Stored; the visitor still sees success.
		return contactOutcome{status: http.StatusOK, view: view}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		d.log().WithFields(map[string]any{"ip": in.RemoteIP}).Debug("contact submission abandoned")
		return contactOutcome{status: statusClientClosed, canceled: true}
	default:
		if !errors.Is(err, contact.ErrServer) {
			d.log().Error(err, "contact submission failed")
		}
		if view.Machine == nil || view.Machine.State() != widgets.FormFailed {
			m := widgets.NewFormMachine()
			_ = m.Submit()
			_ = m.Fail(contact.RetryMessage)
			view.Machine = m
		}
		return contactOutcome{status: http.StatusInternalServerError, view: view}
	}
}

// ContactSubmitHandler handles the plain form post and re-renders the
// home page with the form in its new state.
func ContactSubmitHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contact.Input
		if err := c.ShouldBind(&in); err != nil {
			c.String(http.StatusBadRequest, "Invalid form data")
			return
		}

		out := d.submitContact(c, in)
		if out.canceled {
			c.AbortWithStatus(out.status)
			return
		}

		f, release := d.frame(c)
		defer release()

		noStore(c)
		render(c, out.status, components.HomePage(components.HomeProps{
			Frame: f,
			Speed: d.UI.MarqueeSpeed,
			Logos: d.logoLookup(),
			Form:  out.view,
		}))
	}
}

// contactResponse is the JSON body of /api/contact. HTML is the rendered
// form fragment for the new state.
type contactResponse struct {
	State     string            `json:"state"`
	Reference string            `json:"reference,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Message   string            `json:"message,omitempty"`
	HTML      string            `json:"html"`
}

// ContactAPIHandler handles the enhanced fetch submission.
func ContactAPIHandler(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contact.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		out := d.submitContact(c, in)
		if out.canceled {
			c.AbortWithStatus(out.status)
			return
		}

		var html strings.Builder
		if err := components.ContactForm(out.view).Render(&html); err != nil {
			d.log().Error(err, "failed to render contact form")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}

		resp := contactResponse{
			State:     out.view.Machine.State().String(),
			Reference: out.view.Reference,
			Errors:    out.view.FieldErrors,
			HTML:      html.String(),
		}
		if out.view.Machine.State() == widgets.FormFailed {
			resp.Message = out.view.Machine.Failure()
		}

		noStore(c)
		c.JSON(out.status, resp)
	}
}
