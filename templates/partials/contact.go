package partials

import (
	"context"

	"firm_site_go/middleware"
	"firm_site_go/models"
	"firm_site_go/services/i18n"
	"firm_site_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactPanelID is the swap target for enhanced submissions
const ContactPanelID = "contact-panel"

// ContactPanelProps holds what the contact panel renders from
type ContactPanelProps struct {
	State         models.FormState
	CSRFToken     string
	SchedulingURL string
}

// ContactPanelContent renders the inner content of the contact panel: the
// confirmation once submitted, otherwise the form with any retained values.
func ContactPanelContent(ctx context.Context, props ContactPanelProps) g.Node {
	if props.State.IsSubmitted() {
		return Div(
			ID("contact-success"),
			Class("contact-success"),
			g.Attr("role", "status"),
			P(g.Text(i18n.T(ctx, "contact.thanks"))),
		)
	}
	return contactForm(ctx, props)
}

// ContactPanel renders the panel wrapper with its content
func ContactPanel(ctx context.Context, props ContactPanelProps) g.Node {
	return Div(
		ID(ContactPanelID),
		Class("contact-panel"),
		ContactPanelContent(ctx, props),
	)
}

// ContactPanelFragment is the swap response for enhanced submissions
func ContactPanelFragment(props ContactPanelProps) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return ContactPanelContent(ctx, props)
	})
}

func contactForm(ctx context.Context, props ContactPanelProps) g.Node {
	values := props.State.Values

	return g.Group([]g.Node{
		g.El("form",
			ID("contact-form"),
			Class("contact-form"),
			Method("post"),
			Action("/contact"),
			g.Attr("hx-post", "/contact"),
			g.Attr("hx-target", "#"+ContactPanelID),
			g.Attr("hx-swap", "innerHTML"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			Input(Type("hidden"), Name(middleware.CSRFFormField), Value(props.CSRFToken)),

			textField(ctx, "name", "text", "contact.name", values.Name, true),
			textField(ctx, "email", "email", "contact.email", values.Email, true),
			textField(ctx, "phone", "tel", "contact.phone", values.Phone, true),
			textField(ctx, "company", "text", "contact.company", values.Company, false),

			g.El("label",
				g.Attr("for", inputID("interest")),
				Class("sr-only"),
				g.Text(i18n.T(ctx, "contact.interest_placeholder")),
			),
			Select(
				ID(inputID("interest")),
				Name("interest"),
				Required(),
				Option(Value(""), g.If(values.Interest == "", Selected()), g.Text(i18n.T(ctx, "contact.interest_placeholder"))),
				g.Group(g.Map(models.InterestOptions, func(interest string) g.Node {
					return Option(
						Value(interest),
						g.If(values.Interest == interest, Selected()),
						g.Text(interestLabel(ctx, interest)),
					)
				})),
			),

			g.El("label",
				g.Attr("for", inputID("message")),
				Class("sr-only"),
				g.Text(i18n.T(ctx, "contact.message")),
			),
			Textarea(
				ID(inputID("message")),
				Name("message"),
				g.Attr("rows", "4"),
				Placeholder(i18n.T(ctx, "contact.message")),
				g.Text(values.Message),
			),

			g.El("label",
				Class("contact-consent"),
				Input(
					Type("checkbox"),
					ID(inputID("consent")),
					Name("consent"),
					Value("on"),
					Required(),
					g.If(values.Consent, Checked()),
				),
				Span(g.Text(i18n.T(ctx, "contact.consent"))),
			),

			Button(Type("submit"), Class("btn btn-primary"), g.Text(i18n.T(ctx, "contact.submit"))),
		),
		A(
			Href(props.SchedulingURL),
			Class("btn btn-outline contact-schedule"),
			Target("_blank"),
			Rel("noopener noreferrer"),
			g.Text(i18n.T(ctx, "contact.schedule")),
		),
	})
}

func textField(ctx context.Context, name, inputType, labelKey, value string, required bool) g.Node {
	label := i18n.T(ctx, labelKey)
	return g.Group([]g.Node{
		g.El("label", g.Attr("for", inputID(name)), Class("sr-only"), g.Text(label)),
		Input(
			ID(inputID(name)),
			Type(inputType),
			Name(name),
			Placeholder(label),
			Value(value),
			g.If(required, Required()),
		),
	})
}
