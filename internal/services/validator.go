package services

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/ytareq/portfolio/internal/models"
)

// emailPattern accepts local@domain.tld: one @, a dot somewhere after it and
// no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// SubmissionValidator checks contact form submissions before they are stored
type SubmissionValidator struct {
	validate *validator.Validate
}

// NewSubmissionValidator creates a validator with the contact_email rule registered
func NewSubmissionValidator() *SubmissionValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return isContactEmail(fl.Field().String())
	})
	return &SubmissionValidator{validate: v}
}

// Validate returns the submission unchanged when it is acceptable. Missing
// required fields are reported before a malformed email address.
func (v *SubmissionValidator) Validate(sub models.Submission) (models.Submission, error) {
	err := v.validate.Struct(sub)
	if err == nil {
		return sub, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return sub, err
	}

	var invalidEmail bool
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			return sub, models.NewRequiredFieldError(jsonFieldName(fe.StructField()))
		case "contact_email":
			invalidEmail = true
		}
	}
	if invalidEmail {
		return sub, models.NewInvalidEmailError()
	}
	return sub, err
}

// isContactEmail reports whether address has the local@domain.tld shape
func isContactEmail(address string) bool {
	return emailPattern.MatchString(address)
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Subject":
		return "subject"
	case "Message":
		return "message"
	}
	return structField
}
