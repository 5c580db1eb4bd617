package models

// Messages shown to the visitor when the form is rejected
const (
	MsgRequiredFields = "Please fill in all required fields"
	MsgInvalidEmail   = "Please enter a valid email address"
)

// ValidationError describes a missing or malformed form field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewRequiredFieldError returns the error for an empty required field
func NewRequiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: MsgRequiredFields}
}

// NewInvalidEmailError returns the error for a malformed email address
func NewInvalidEmailError() *ValidationError {
	return &ValidationError{Field: "email", Message: MsgInvalidEmail}
}
