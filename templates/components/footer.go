package components

import (
	"context"

	"firm_site_go/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(ctx context.Context, year int) g.Node {
	return Footer(
		Class("page-footer"),
		P(g.Text(i18n.T(ctx, "footer.rights", map[string]interface{}{"year": year}))),
	)
}
