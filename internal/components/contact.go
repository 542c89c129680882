package components

import (
	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/widgets"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactFormView is everything the contact form needs to render one state.
type ContactFormView struct {
	Machine *widgets.FormMachine

	Name    string
	Email   string
	Phone   string
	Project string

	// FieldErrors maps a field name to its message.
	FieldErrors map[string]string
	CSRFToken   string
	Reference   string
}

// ContactSection renders the contact band around the form.
func ContactSection(form ContactFormView) g.Node {
	site := content.Site()

	return Section(ID("contact"), Class("contact band-dark"), Aria("labelledby", "contact-heading"),
		Div(Class("container contact__grid"),
			Div(Class("contact__intro"),
				H2(ID("contact-heading"), g.Text("Let's Talk About Your Project")),
				P(g.Text("Tell us what you have in mind and we'll get back to you with a free estimate.")),
				Ul(Class("contact__details"),
					Li(A(Href(site.PhoneHref()), icon("phone"), g.Text(site.Phone))),
					Li(A(Href(site.EmailHref()), icon("mail"), g.Text(site.Email))),
					Li(g.Text(site.ServiceAreaLong)),
					Li(g.Text(site.Hours)),
				),
			),
			ContactForm(form),
		),
	)
}

// ContactForm renders the form for the machine's current state. Once the
// machine reaches FormSubmitted the fields are gone; only a Reset brings
// them back.
func ContactForm(v ContactFormView) g.Node {
	if v.Machine == nil {
		v.Machine = widgets.NewFormMachine()
	}
	state := v.Machine.State()

	if !v.Machine.ShowsForm() {
		return Div(Class("contact-form contact-form--submitted card"),
			g.Attr("data-state", state.String()),
			Div(Role("status"), Aria("live", "polite"),
				Span(Class("contact-form__check"), icon("check")),
				H3(g.Text("Thank you!")),
				P(g.Text("We'll be in touch within 24 hours.")),
				g.If(v.Reference != "", P(Class("text-muted contact-form__ref"),
					g.Text("Reference: "+v.Reference),
				)),
			),
		)
	}

	submitting := v.Machine.SubmitDisabled()
	submitLabel := "Submit Request"
	if submitting {
		submitLabel = "Submitting..."
	}

	return Div(Class("contact-form card"),
		g.Attr("data-state", state.String()),
		H3(g.Text("Request a Free Estimate")),

		g.If(state == widgets.FormFailed, P(Class("contact-form__failure error"), Role("alert"),
			g.Text(v.Machine.Failure()),
		)),

		g.El("form",
			ID("contact-form"),
			g.Attr("method", "post"),
			g.Attr("action", "/contact"),
			g.Attr("novalidate"),
			g.Attr("data-enhance", "/api/contact"),

			Input(Type("hidden"), Name("csrf_token"), Value(v.CSRFToken)),

			field(v, "name", "Name", "text", "Your name", v.Name, true, "name"),
			field(v, "email", "Email", "email", "your@email.com", v.Email, true, "email"),
			field(v, "phone", "Phone", "tel", "(503) 555-0123", v.Phone, false, "tel"),
			textareaField(v, "project", "Tell us about your project", "Briefly describe your project...", v.Project),

			Button(Type("submit"), Class("btn btn--primary btn--block"),
				g.If(submitting, Disabled()),
				g.If(submitting, Aria("busy", "true")),
				g.Text(submitLabel),
			),
		),
	)
}

func field(v ContactFormView, name, label, typ, placeholder, value string, required bool, autocomplete string) g.Node {
	msg := v.FieldErrors[name]
	inputID := "contact-" + name
	errID := inputID + "-error"

	return Div(Class("form-field"),
		g.El("label", g.Attr("for", inputID), g.Text(label)),
		Input(
			ID(inputID),
			Type(typ),
			Name(name),
			Placeholder(placeholder),
			Value(value),
			g.Attr("autocomplete", autocomplete),
			g.If(required, Required()),
			g.If(msg != "", Aria("invalid", "true")),
			g.If(msg != "", Aria("describedby", errID)),
		),
		fieldError(errID, msg),
	)
}

func textareaField(v ContactFormView, name, label, placeholder, value string) g.Node {
	msg := v.FieldErrors[name]
	inputID := "contact-" + name
	errID := inputID + "-error"

	return Div(Class("form-field"),
		g.El("label", g.Attr("for", inputID), g.Text(label)),
		Textarea(
			ID(inputID),
			Name(name),
			Rows("4"),
			Placeholder(placeholder),
			g.If(msg != "", Aria("invalid", "true")),
			g.If(msg != "", Aria("describedby", errID)),
			g.Text(value),
		),
		fieldError(errID, msg),
	)
}

func fieldError(id, msg string) g.Node {
	if msg == "" {
		return nil
	}
	return P(ID(id), Class("form-field__error error"), Role("alert"), g.Text(msg))
}
