package components

import (
	"context"

	"firm_site_go/middleware"
	"firm_site_go/models"
	"firm_site_go/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageProps configures the document shell
type PageProps struct {
	SEO            *models.SEO
	StructuredData interface{}
}

// Layout renders the HTML document around body
func Layout(ctx context.Context, props PageProps, body ...g.Node) g.Node {
	seo := props.SEO
	nonce := middleware.GetNonce(ctx)

	return Doctype(
		HTML(
			Lang(i18n.GetLocale(ctx)),
			Class("theme-"+string(middleware.GetTheme(ctx))),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(seo.Title)),
				Meta(Name("description"), Content(seo.Description)),
				g.If(seo.NoIndex, Meta(Name("robots"), Content("noindex, nofollow"))),
				g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
				g.Group(g.Map(seo.AltLocales, func(alt string) g.Node {
					return g.If(seo.Canonical != "", Link(Rel("alternate"), g.Attr("hreflang", alt), Href(seo.AlternateURL(alt))))
				})),
				Meta(g.Attr("property", "og:title"), Content(seo.Title)),
				Meta(g.Attr("property", "og:description"), Content(seo.Description)),
				Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
				Meta(g.Attr("property", "og:locale"), Content(seo.Locale)),
				g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
				g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
				Meta(Name("twitter:card"), Content(seo.TwitterCard)),
				Link(Rel("icon"), Type("image/svg+xml"), Href(middleware.AssetURL("images/favicon.svg"))),
				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/style.css"))),
				Script(
					Src(middleware.HTMXScriptURL),
					g.Attr("integrity", middleware.HTMXScriptIntegrity),
					g.Attr("crossorigin", "anonymous"),
					Defer(),
					g.Attr("nonce", nonce),
				),
				g.If(props.StructuredData != nil,
					Script(Type("application/ld+json"), g.Attr("nonce", nonce), g.Raw(JSON(props.StructuredData))),
				),
			),
			Body(body...),
		),
	)
}
