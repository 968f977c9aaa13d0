package handlers

import (
	"context"
	"errors"
	"net/http"

	"firm_site_go/middleware"
	"firm_site_go/models"
	"firm_site_go/services"
	"firm_site_go/templates/pages"
	"firm_site_go/templates/partials"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ContactHandler relays contact form submissions to the configured webhook
type ContactHandler struct {
	submitter services.InquirySubmitter
	logger    logrus.FieldLogger
}

func NewContactHandler(submitter services.InquirySubmitter, logger logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{
		submitter: submitter,
		logger:    logger,
	}
}

// ContactThanksPath shows the confirmation after a successful plain post
const ContactThanksPath = "/contact/thanks"

// Submit handles POST /contact.
//
// Success swaps the confirmation in for htmx and redirects plain posts to
// ContactThanksPath, so a reload never relays twice. A rejected or
// unreachable webhook is logged once and the visitor keeps the form with
// their values; no error text is shown.
func (h *ContactHandler) Submit(c echo.Context) error {
	inquiry := bindInquiry(c)

	if err := c.Validate(&inquiry); err != nil {
		var precondition *services.PreconditionError
		if !errors.As(err, &precondition) {
			return err
		}
		h.logger.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"fields":     precondition.Fields,
		}).Warn("Contact form precondition not met")
		return h.respond(c, http.StatusUnprocessableEntity, models.IdleFormWith(inquiry))
	}

	// The relay runs to completion even if the visitor navigates away
	ctx := context.WithoutCancel(c.Request().Context())
	if err := h.submitter.Submit(ctx, inquiry); err != nil {
		entry := h.logger.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"interest":   inquiry.Interest,
		}).WithError(err)

		var rejected *services.RejectedError
		if errors.As(err, &rejected) {
			entry = entry.WithField("status", rejected.StatusCode)
		}
		entry.Error("Contact inquiry relay failed")

		// Enhanced clients keep the form exactly as it is on screen
		if middleware.IsHTMX(c) {
			return c.NoContent(http.StatusNoContent)
		}
		return h.respond(c, http.StatusBadGateway, models.IdleFormWith(inquiry))
	}

	if middleware.IsHTMX(c) {
		return h.respond(c, http.StatusOK, models.SubmittedForm())
	}
	return c.Redirect(http.StatusSeeOther, ContactThanksPath)
}

// Thanks handles GET /contact/thanks
func (h *ContactHandler) Thanks(c echo.Context) error {
	view := landingView(c, models.SubmittedForm())
	view.SEO.WithNoIndex()
	return render(c, http.StatusOK, pages.Landing(view))
}

// respond renders the contact panel alone for htmx requests, the full page otherwise
func (h *ContactHandler) respond(c echo.Context, status int, form models.FormState) error {
	c.Response().Header().Add(echo.HeaderVary, "HX-Request")

	if middleware.IsHTMX(c) {
		cfg := getConfig(c)
		return render(c, status, partials.ContactPanelFragment(partials.ContactPanelProps{
			State:         form,
			CSRFToken:     middleware.GetCSRFToken(c),
			SchedulingURL: cfg.SchedulingURL,
		}))
	}
	return render(c, status, pages.Landing(landingView(c, form)))
}

// bindInquiry reads the form values verbatim. The consent checkbox is only
// present in the body when checked.
func bindInquiry(c echo.Context) models.ContactInquiry {
	return models.ContactInquiry{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Company:  c.FormValue("company"),
		Interest: c.FormValue("interest"),
		Message:  c.FormValue("message"),
		Consent:  c.FormValue("consent") != "",
	}
}
