package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"firm_site_go/models"

	"github.com/go-playground/validator/v10"
)

// PreconditionError lists the form fields that would have blocked a browser submit
type PreconditionError struct {
	Fields []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("inquiry precondition failed: %s", strings.Join(e.Fields, ", "))
}

// browserEmail is the HTML living standard "valid e-mail address" pattern that
// input[type=email] enforces. It accepts dotless domains and consecutive dots
// in the local part, which the validator's own email rule rejects.
var browserEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// IsBrowserEmail reports whether a browser would accept raw in an email input
func IsBrowserEmail(raw string) bool {
	return browserEmail.MatchString(raw)
}

// InquiryValidator applies the same checks the browser enforces on the
// contact form (required, email format, closed interest set, consent).
// Values are never trimmed or rewritten. It satisfies echo.Validator.
type InquiryValidator struct {
	validate *validator.Validate
}

func NewInquiryValidator() *InquiryValidator {
	v := validator.New()

	// Report form field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return models.IsValidInterest(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register interest validation: %v", err))
	}
	if err := v.RegisterValidation("browser_email", func(fl validator.FieldLevel) bool {
		return IsBrowserEmail(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register browser_email validation: %v", err))
	}

	return &InquiryValidator{validate: v}
}

// Validate checks a *models.ContactInquiry (or value) against its struct tags
func (v *InquiryValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &PreconditionError{Fields: fields}
}
