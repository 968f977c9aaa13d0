package handlers

import (
	"net/http"

	"firm_site_go/models"
	"firm_site_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the single-page site with an empty contact form
func LandingHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Landing(landingView(c, models.IdleForm())))
}
