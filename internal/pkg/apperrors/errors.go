// Package apperrors defines the sentinel errors shared across services.
// Handlers translate these into HTTP status codes; use cases and
// repositories wrap them with context via fmt.Errorf("...: %w", err).
package apperrors

import "errors"

var (
	// ErrInvalidPackage indicates the referenced subscription package
	// does not exist or cannot be purchased.
	ErrInvalidPackage = errors.New("subscription package not found")

	// ErrTransactionNotFound indicates no transaction matches the given
	// identifier or gateway order id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMembershipNotFound indicates no membership matches the given identifier.
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrForbidden indicates the actor's role or ownership does not
	// permit the requested operation.
	ErrForbidden = errors.New("forbidden")

	// ErrValidationFailed indicates malformed or out-of-range input.
	ErrValidationFailed = errors.New("validation failed")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInvalidPackage) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrMembershipNotFound)
}
