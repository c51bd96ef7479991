package domain

import "errors"

var (
	ErrMissingToken       = errors.New("token not provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownIdentity    = errors.New("identity no longer exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")

	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound        = errors.New("user not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrFacilityNotFound    = errors.New("facility not found")
	ErrMedicationNotFound  = errors.New("medication not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ValidationError reports a malformed or incomplete request. Message is
// client-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
