package handlers

import (
	"bytes"
	"time"

	"firm_site_go/config"
	"firm_site_go/middleware"
	"firm_site_go/models"
	"firm_site_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// render buffers the component so a render error never leaves a half-written response
func render(c echo.Context, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// getConfig returns the config placed on the context by the server
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{SchedulingURL: config.DefaultSchedulingURL}
}

// landingView assembles the landing page for the current request
func landingView(c echo.Context, form models.FormState) pages.LandingView {
	cfg := getConfig(c)
	return pages.LandingView{
		SEO:           LandingSEO(c.Request().Context(), cfg),
		CSRFToken:     middleware.GetCSRFToken(c),
		SchedulingURL: cfg.SchedulingURL,
		Form:          form,
		Year:          time.Now().Year(),
	}
}
