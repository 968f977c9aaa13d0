package handlers

import (
	"context"

	"firm_site_go/config"
	"firm_site_go/models"
	"firm_site_go/services/i18n"
)

// LandingSEO returns the landing page metadata in the request locale
func LandingSEO(ctx context.Context, cfg *config.Config) *models.SEO {
	seo := models.DefaultSEO(
		i18n.T(ctx, "seo.title"),
		i18n.T(ctx, "seo.description"),
		i18n.GetLocale(ctx),
	)
	if cfg.AppURL != "" {
		seo.WithCanonical(cfg.AppURL + "/")
	}
	// Staging and local copies stay out of search indexes
	if !cfg.IsProduction() {
		seo.WithNoIndex()
	}
	return seo
}
