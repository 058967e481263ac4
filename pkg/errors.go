package pkg

import (
	"errors"
	"fmt"
)

// DefaultAPIErrorMessage is used when a failed backend response carries no usable message.
const DefaultAPIErrorMessage = "Error de API"

// NetworkError reports a transport failure talking to the backend.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError is a client-side precondition that failed before any request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PartialFailureError means a multi-step mutation failed and its compensation failed too,
// leaving backend state half-applied.
type PartialFailureError struct {
	Op          string
	Cause       error
	RollbackErr error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s partially applied: %v (rollback failed: %v)", e.Op, e.Cause, e.RollbackErr)
}

func (e *PartialFailureError) Unwrap() []error {
	return []error{e.Cause, e.RollbackErr}
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNetwork(err error) bool {
	var n *NetworkError
	return errors.As(err, &n)
}

func IsPartialFailure(err error) bool {
	var p *PartialFailureError
	return errors.As(err, &p)
}

// AsAPIError returns the backend API error wrapped in err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var a *APIError
	if errors.As(err, &a) {
		return a, true
	}
	return nil, false
}
