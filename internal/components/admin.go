package components

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AdminLoginView configures AdminLoginPage.
type AdminLoginView struct {
	Email     string
	Error     string
	Next      string
	CSRFToken string
}

// LeadsView configures AdminLeadsPage.
type LeadsView struct {
	Leads     []models.ContactSubmission
	Status    string
	Page      int
	HasMore   bool
	Total     int64
	CSRFToken string
	AdminUser string
}

func adminLayout(title string, children ...g.Node) g.Node {
	site := content.Site()
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("robots"), Content("noindex, nofollow")),
				TitleEl(g.Text(title+" | "+site.Name)),
				Link(Rel("stylesheet"), Href("/admin/admin.css")),
			),
			Body(Class("admin"), g.Group(children)),
		),
	})
}

func csrfField(token string) g.Node {
	return Input(Type("hidden"), Name("csrf_token"), Value(token))
}

// AdminLoginPage is the sign-in form for the lead inbox.
func AdminLoginPage(v AdminLoginView) g.Node {
	return adminLayout("Sign in",
		Main(Class("admin-login card"),
			H1(g.Text("Lead inbox")),
			g.If(v.Error != "", P(Class("admin-error"), Role("alert"), g.Text(v.Error))),
			g.El("form", g.Attr("method", "post"), g.Attr("action", "/admin/login"),
				csrfField(v.CSRFToken),
				Input(Type("hidden"), Name("next"), Value(v.Next)),
				g.El("label", g.Attr("for", "admin-email"), g.Text("Email")),
				Input(ID("admin-email"), Type("email"), Name("email"), Value(v.Email), Required(), g.Attr("autocomplete", "username")),
				g.El("label", g.Attr("for", "admin-password"), g.Text("Password")),
				Input(ID("admin-password"), Type("password"), Name("password"), Required(), g.Attr("autocomplete", "current-password")),
				Button(Type("submit"), Class("btn"), g.Text("Sign in")),
			),
		),
	)
}

var leadFilters = []struct{ label, status string }{
	{"All", ""},
	{"New", models.StatusNew},
	{"Notified", models.StatusNotified},
	{"Notify failed", models.StatusNotifyFailed},
}

func leadsHref(status string, page int) string {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/admin/leads"
	}
	return "/admin/leads?" + q.Encode()
}

// AdminLeadsPage lists contact submissions newest first.
func AdminLeadsPage(v LeadsView) g.Node {
	if v.Page < 1 {
		v.Page = 1
	}

	filters := make([]g.Node, 0, len(leadFilters))
	for _, f := range leadFilters {
		cls := "filter"
		if f.status == v.Status {
			cls += " filter--active"
		}
		filters = append(filters, A(Class(cls), Href(leadsHref(f.status, 1)), g.Text(f.label)))
	}

	return adminLayout("Leads",
		Header(Class("admin-header"),
			Div(Class("container"),
				H1(g.Text("Leads")),
				Div(Class("header-actions"),
					A(Class("btn btn-secondary btn-small"), Href("/admin/leads.json"), g.Text("Export JSON")),
					g.El("form", g.Attr("method", "post"), g.Attr("action", "/admin/logout"),
						csrfField(v.CSRFToken),
						Button(Type("submit"), Class("btn btn-small"), g.Text("Sign out")),
					),
				),
			),
		),
		Main(Class("admin-container"),
			Nav(Class("filters"), Aria("label", "Filter by status"), g.Group(filters)),
			P(Class("text-muted"), g.Textf("%d total", v.Total)),
			g.If(len(v.Leads) == 0, P(Class("empty"), g.Text("No submissions yet."))),
			g.If(len(v.Leads) > 0, leadsTable(v)),
			Nav(Class("pager"), Aria("label", "Pages"),
				g.If(v.Page > 1, A(Href(leadsHref(v.Status, v.Page-1)), Rel("prev"), g.Text("Newer"))),
				g.If(v.HasMore, A(Href(leadsHref(v.Status, v.Page+1)), Rel("next"), g.Text("Older"))),
			),
		),
	)
}

func leadsTable(v LeadsView) g.Node {
	rows := g.Map(v.Leads, func(l models.ContactSubmission) g.Node {
		return g.El("tr", ID("lead-"+l.Reference),
			g.El("td", g.El("time", g.Attr("datetime", l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")),
				g.Text(l.CreatedAt.Format("Jan 2, 2006 3:04 PM")))),
			g.El("td", Strong(g.Text(l.Name)), Br(), Span(Class("text-muted"), g.Text(l.Reference))),
			g.El("td",
				A(Href(content.MailHref(l.Email)), g.Text(l.Email)),
				g.If(l.Phone != "", g.Group([]g.Node{Br(), A(Href(content.PhoneHref(l.Phone)), g.Text(l.Phone))})),
			),
			g.El("td", Class("project"), g.Text(l.Project)),
			g.El("td", Span(Class("badge badge--"+l.Status), g.Attr("title", l.NotifyError), g.Text(l.Status))),
			g.El("td",
				g.El("form", g.Attr("method", "post"), g.Attr("action", fmt.Sprintf("/admin/leads/%d/delete", l.ID)),
					csrfField(v.CSRFToken),
					Button(Type("submit"), Class("btn btn-danger btn-small"), g.Text("Delete")),
				),
			),
		)
	})

	return g.El("table", Class("data-table"),
		g.El("thead", g.El("tr",
			g.El("th", g.Text("Received")),
			g.El("th", g.Text("Name")),
			g.El("th", g.Text("Contact")),
			g.El("th", g.Text("Project")),
			g.El("th", g.Text("Status")),
			g.El("th", g.Text("")),
		)),
		g.El("tbody", g.Group(rows)),
	)
}
