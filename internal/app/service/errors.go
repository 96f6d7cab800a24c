package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrStageOutOfOrder    = errors.New("signup stage out of order")
	ErrDraftNotFound      = errors.New("signup draft not found")
	ErrBenefitNotFound    = errors.New("benefit not found")
	ErrFacilityNotFound   = errors.New("facility not found")
	ErrNoPatient          = errors.New("patient not registered")
)

// ValidationError is a user input problem reported back with a display message.
// It never advances a wizard stage and is not retried.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func newValidationError(code, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
