package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid identity could be resolved for the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the identity is valid but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrSubscriptionInactive indicates that the organization has no active subscription.
var ErrSubscriptionInactive = errors.New("subscription inactive")

// ErrSignatureVerification indicates that a payment-provider event signature could
// not be verified. Events carrying it must be rejected without being processed.
var ErrSignatureVerification = errors.New("event signature verification failed")

// ModuleNotActiveError indicates that the organization's subscription does not
// include the named module. The module name is surfaced to the caller.
type ModuleNotActiveError struct {
	Module string
}

func (e ModuleNotActiveError) Error() string {
	return fmt.Sprintf("module %q is not active for this organization", e.Module)
}
