package pages

import (
	"context"

	"firm_site_go/services/i18n"
	"firm_site_go/templates/components"
	"firm_site_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing renders the full single-page site
func Landing(view LandingView) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx,
			components.PageProps{
				SEO:            view.SEO,
				StructuredData: structuredData(ctx, view),
			},
			components.Navbar(ctx),
			Main(
				hero(ctx),
				about(ctx),
				practice(ctx),
				contact(ctx, view),
			),
			components.PageFooter(ctx, view.Year),
		)
	})
}

func structuredData(ctx context.Context, view LandingView) components.LegalServiceSchema {
	areas := make([]string, 0, len(PracticeAreaKeys))
	for _, key := range PracticeAreaKeys {
		areas = append(areas, i18n.T(ctx, key))
	}
	url := ""
	if view.SEO != nil {
		url = view.SEO.Canonical
	}
	return components.NewLegalServiceSchema(i18n.T(ctx, "site.name"), i18n.T(ctx, "seo.description"), url, areas)
}

func hero(ctx context.Context) g.Node {
	return Header(
		ID("hero"),
		Class("hero"),
		H1(Class("hero-title"), g.Text(i18n.T(ctx, "site.name"))),
		P(Class("hero-tagline"), g.Text(i18n.T(ctx, "site.tagline"))),
		A(Href("#contact"), Class("btn btn-primary"), g.Text(i18n.T(ctx, "hero.cta"))),
	)
}

func about(ctx context.Context) g.Node {
	return Section(
		ID("about"),
		Class("section"),
		H2(g.Text(i18n.T(ctx, "about.title"))),
		P(g.Raw(string(i18n.HTML(ctx, "about.body")))),
	)
}

func practice(ctx context.Context) g.Node {
	body := i18n.T(ctx, "practice.card_body")
	return Section(
		ID("practice"),
		Class("section"),
		H2(g.Text(i18n.T(ctx, "practice.title"))),
		Div(
			Class("practice-grid"),
			g.Group(g.Map(PracticeAreaKeys, func(key string) g.Node {
				return Article(
					Class("practice-card"),
					H3(g.Text(i18n.T(ctx, key))),
					P(g.Text(body)),
				)
			})),
		),
	)
}

func contact(ctx context.Context, view LandingView) g.Node {
	return Section(
		ID("contact"),
		Class("section"),
		H2(g.Text(i18n.T(ctx, "contact.title"))),
		partials.ContactPanel(ctx, partials.ContactPanelProps{
			State:         view.Form,
			CSRFToken:     view.CSRFToken,
			SchedulingURL: view.SchedulingURL,
		}),
	)
}
