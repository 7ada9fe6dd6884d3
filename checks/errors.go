package checks

import "errors"

// Failure kinds. Every error produced by this package (absent a custom error
// factory) wraps exactly one of these sentinels.
var (
	// ErrInvalidArgument is the default kind for failed argument checks.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is the kind used by CheckState for violated object or
	// process invariants.
	ErrInvalidState = errors.New("invalid state")

	// ErrNilArgument is the kind used when a required value is nil.
	ErrNilArgument = errors.New("nil argument")
)

// CheckError is the error returned by a failed check when no custom error
// factory was supplied.
type CheckError struct {
	Kind    error
	Message string
}

// Error returns the check message, or the kind text when no message was set.
func (e *CheckError) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}

	if e.Message == "" {
		return e.Kind.Error()
	}

	return e.Message
}

// Unwrap returns the failure kind for errors.Is.
func (e *CheckError) Unwrap() error {
	return e.Kind
}
