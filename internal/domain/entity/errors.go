package entity

import "errors"

// Sentinels shared by the client and the use cases. Backend errors match
// ErrNotFound and ErrInvalidInput through errors.Is; see cms.APIError.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError is a client-side form check that failed before any
// request was sent. Field names the form field. Err, when set, is the
// sentinel behind the message.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns the message alone when it already names the field.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap makes errors.Is(err, ErrValidationFailed) true for every
// ValidationError, and errors.Is(err, e.Err) when Err is set.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidationFailed}
	}
	return []error{ErrValidationFailed, e.Err}
}
