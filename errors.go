package hood

import (
	"errors"
	"fmt"
)

// Done is returned by Paginator.Next when the sequence is exhausted.
var Done = errors.New("no more items")

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")

	// ErrNoAccount is returned by operations that default to the first
	// account when the account list is empty.
	ErrNoAccount = errors.New("no account available")

	// ErrCancelUnavailable is returned by Cancel when the order carries no
	// cancel URL (already filled, already cancelled, or rejected).
	ErrCancelUnavailable = errors.New("order cannot be cancelled")

	// ErrMFARetryLimit is returned when the server demands a multi-factor
	// code again after one has already been submitted.
	ErrMFARetryLimit = errors.New("mfa retry limit exceeded")

	// ErrUnauthorized is returned by operations that require a logged-in
	// client when the client was built without credentials.
	ErrUnauthorized = errors.New("client is not authorized")

	// ErrAuthentication is returned when a login flow completes without a
	// usable token.
	ErrAuthentication = errors.New("login did not return a token")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
