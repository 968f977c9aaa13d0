package middleware

import (
	"context"

	"firm_site_go/config"
	"firm_site_go/models"

	"github.com/labstack/echo/v4"
)

const ThemeKey contextKey = "theme"

// Theme resolves the colour scheme for the request: "theme" query param
// (persisted to a cookie), then the cookie, then dark.
func Theme(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			theme := models.ThemeDark
			if q := c.QueryParam("theme"); q != "" {
				theme, _ = models.ParseTheme(q)
				setPreferenceCookie(c, "theme", string(theme), cfg.IsProduction())
			} else if cookie, err := c.Cookie("theme"); err == nil {
				theme, _ = models.ParseTheme(cookie.Value)
			}

			c.Set(string(ThemeKey), theme)
			ctx := context.WithValue(c.Request().Context(), ThemeKey, theme)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetTheme returns the theme resolved for the request, dark if none
func GetTheme(ctx context.Context) models.Theme {
	if theme, ok := ctx.Value(ThemeKey).(models.Theme); ok {
		return theme
	}
	return models.ThemeDark
}
