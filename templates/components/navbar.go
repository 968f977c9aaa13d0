package components

import (
	"context"

	"firm_site_go/middleware"
	"firm_site_go/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// navSections are the in-page anchors, in display order
var navSections = []string{"about", "practice", "attorneys", "cases", "contact"}

// Navbar renders the fixed top bar with section links, theme and language toggles
func Navbar(ctx context.Context) g.Node {
	theme := middleware.GetTheme(ctx)
	next := theme.Toggle()

	otherLang := "es"
	if i18n.GetLocale(ctx) == "es" {
		otherLang = "en"
	}

	return Nav(
		Class("navbar"),
		Span(Class("navbar-brand"), g.Text(i18n.T(ctx, "site.name"))),
		Div(
			Class("navbar-links"),
			g.Group(g.Map(navSections, func(section string) g.Node {
				return A(Href("#"+section), Class("navbar-link"), g.Text(i18n.T(ctx, "nav."+section)))
			})),
			A(
				Href("/?lang="+otherLang),
				Class("navbar-link"),
				g.Attr("hreflang", otherLang),
				g.Text(i18n.T(ctx, "nav.language")),
			),
			A(
				Href("/?theme="+string(next)),
				Class("theme-toggle"),
				g.Attr("aria-label", i18n.T(ctx, "nav.theme_"+string(next))),
				g.Attr("title", i18n.T(ctx, "nav.theme_"+string(next))),
				Span(Class("theme-icon theme-icon-"+string(next)), g.Attr("aria-hidden", "true")),
			),
		),
	)
}
