package partials

import (
	"context"
	"strings"

	"firm_site_go/models"
	"firm_site_go/services/i18n"
)

// interestKeys maps each interest value to its locale key. The submitted value
// stays the English option so the payload is identical in every locale.
var interestKeys = map[string]string{
	models.InterestCorporateLitigation:  "contact.interests.corporate_litigation",
	models.InterestMergersAcquisitions:  "contact.interests.mergers_acquisitions",
	models.InterestIntellectualProperty: "contact.interests.intellectual_property",
	models.InterestLegalAdvisory:        "contact.interests.legal_advisory",
	models.InterestOther:                "contact.interests.other",
}

// interestLabel returns the display label for an interest value
func interestLabel(ctx context.Context, interest string) string {
	if key, ok := interestKeys[interest]; ok {
		return i18n.T(ctx, key)
	}
	return interest
}

// inputID turns a field name into a stable element id
func inputID(field string) string {
	return "contact-" + strings.ReplaceAll(field, "_", "-")
}
