package models

// Interest options offered in the contact form, in display order
const (
	InterestCorporateLitigation  = "Corporate Litigation"
	InterestMergersAcquisitions  = "Mergers & Acquisitions"
	InterestIntellectualProperty = "Intellectual Property"
	InterestLegalAdvisory        = "Legal Advisory"
	InterestOther                = "Other"
)

// InterestOptions is the closed set accepted for ContactInquiry.Interest
var InterestOptions = []string{
	InterestCorporateLitigation,
	InterestMergersAcquisitions,
	InterestIntellectualProperty,
	InterestLegalAdvisory,
	InterestOther,
}

// IsValidInterest checks if an interest value belongs to the closed set
func IsValidInterest(interest string) bool {
	for _, option := range InterestOptions {
		if option == interest {
			return true
		}
	}
	return false
}

// ContactInquiry is a single contact form submission. It lives only for the
// duration of one request and is never stored.
//
// The JSON encoding is the webhook payload: exactly six string keys.
// Consent gates submission but is never transmitted.
type ContactInquiry struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,browser_email"`
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Company  string `json:"company" form:"company"`
	Interest string `json:"interest" form:"interest" validate:"required,interest"`
	Message  string `json:"message" form:"message"`
	Consent  bool   `json:"-" form:"consent" validate:"required"`
}
