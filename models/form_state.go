package models

// FormStatus is the contact panel's view state
type FormStatus string

const (
	// FormIdle shows the editable form
	FormIdle FormStatus = "idle"
	// FormSubmitted shows the confirmation; there is no way back to idle in-page
	FormSubmitted FormStatus = "submitted"
)

// FormState is what the contact panel renders from. It is built per render
// and never shared between requests.
type FormState struct {
	Status FormStatus
	// Values re-populates the form when rendered idle after a failed relay
	Values ContactInquiry
}

// IdleForm returns an empty, editable form state
func IdleForm() FormState {
	return FormState{Status: FormIdle}
}

// IdleFormWith returns an editable form state pre-filled with the given values
func IdleFormWith(values ContactInquiry) FormState {
	return FormState{Status: FormIdle, Values: values}
}

// SubmittedForm returns the confirmation state. Values are dropped so nothing
// from the inquiry outlives the request.
func SubmittedForm() FormState {
	return FormState{Status: FormSubmitted}
}

// IsSubmitted reports whether the confirmation should be shown
func (s FormState) IsSubmitted() bool {
	return s.Status == FormSubmitted
}

// Theme is the page colour scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a raw value to a Theme, reporting whether it was recognised
func ParseTheme(raw string) (Theme, bool) {
	switch Theme(raw) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	default:
		return ThemeDark, false
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
