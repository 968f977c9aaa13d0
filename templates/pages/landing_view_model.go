package pages

import (
	"firm_site_go/models"
)

// LandingView holds the data for the landing page
type LandingView struct {
	SEO           *models.SEO
	CSRFToken     string
	SchedulingURL string
	Form          models.FormState
	Year          int
}

// PracticeAreaKeys are the locale keys of the practice cards, in display order
var PracticeAreaKeys = []string{
	"practice.areas.corporate_law",
	"practice.areas.mergers_acquisitions",
	"practice.areas.commercial_litigation",
	"practice.areas.intellectual_property",
	"practice.areas.real_estate_law",
	"practice.areas.legal_advisory",
}
