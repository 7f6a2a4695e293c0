package contracts

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the mediator core. Callers match them with
// errors.Is; dispatch sites wrap them with the concrete message type name.
var (
	// ErrNilRequest is returned by Send when the request value is nil.
	ErrNilRequest = errors.New("mediate: request cannot be nil")

	// ErrNilNotification is returned by Publish when the notification value is nil.
	ErrNilNotification = errors.New("mediate: notification cannot be nil")

	// ErrHandlerNotFound is returned by Send when no handler is registered
	// for the request type and the missing-handler policy is Error.
	ErrHandlerNotFound = errors.New("mediate: no handler registered")

	// ErrHandlerExists is returned when a second request handler is
	// registered for the same request type.
	ErrHandlerExists = errors.New("mediate: handler already registered")

	// ErrResponseTypeMismatch is returned by the typed Send helper when the
	// handler produced a response of an unexpected type.
	ErrResponseTypeMismatch = errors.New("mediate: response type mismatch")
)

// AggregateError is the ordered composite of notification handler failures
// collected under the AggregateExceptions policy. Encounter order is
// preserved: registration order for sequential publishing, completion order
// for parallel publishing.
type AggregateError struct {
	Errors []error
}

// Error implements error
func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("1 notification handler failed: %v", e.Errors[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d notification handlers failed:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString(" [")
		sb.WriteString(err.Error())
		sb.WriteString("]")
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}
