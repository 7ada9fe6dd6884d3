package checks

import "fmt"

// failure holds the configuration for the error of a single failed check.
// It is built only after the predicate has already failed.
type failure struct {
	kind    error
	message string
	args    []any
	format  bool
	factory func(message string) error
}

// Option customizes the error produced by a failed check. Options are
// inspected only on the failure path; a passing check never evaluates them.
type Option func(*failure)

// WithMessage sets the message of the default error.
func WithMessage(message string) Option {
	return func(f *failure) {
		f.message = message
	}
}

// WithMessagef sets a message template with positional replacement values,
// using fmt verbs. The template is formatted only when the check fails.
func WithMessagef(format string, args ...any) Option {
	return func(f *failure) {
		f.message = format
		f.args = args
		f.format = true
	}
}

// WithError replaces the default error with the one produced by fn.
// fn is invoked exactly once, and only when the check fails.
func WithError(fn func() error) Option {
	return func(f *failure) {
		f.factory = func(string) error { return fn() }
	}
}

// WithErrorMessage replaces the default error with the one produced by fn,
// which receives message verbatim.
func WithErrorMessage(fn func(message string) error, message string) Option {
	return func(f *failure) {
		f.message = message
		f.factory = fn
	}
}

// WithErrorMessagef replaces the default error with the one produced by fn,
// which receives the raw template and its replacement values. The template
// is not formatted by this package; formatting is the factory's concern.
func WithErrorMessagef(fn func(format string, args []any) error, format string, args ...any) Option {
	return func(f *failure) {
		f.message = format
		f.factory = func(message string) error { return fn(message, args) }
	}
}

// WithErrorArg replaces the default error with the one produced by fn,
// invoked with arg when the check fails.
func WithErrorArg[T any](fn func(T) error, arg T) Option {
	return func(f *failure) {
		f.factory = func(string) error { return fn(arg) }
	}
}

// WithErrorArgs2 replaces the default error with the one produced by fn,
// invoked with arg1 and arg2 when the check fails.
func WithErrorArgs2[T, U any](fn func(T, U) error, arg1 T, arg2 U) Option {
	return func(f *failure) {
		f.factory = func(string) error { return fn(arg1, arg2) }
	}
}

// WithErrorArgs3 replaces the default error with the one produced by fn,
// invoked with arg1, arg2 and arg3 when the check fails.
func WithErrorArgs3[T, U, V any](fn Func3[T, U, V, error], arg1 T, arg2 U, arg3 V) Option {
	return func(f *failure) {
		f.factory = func(string) error { return fn(arg1, arg2, arg3) }
	}
}

// fail materializes the error for a failed check of the given kind.
func fail(kind error, opts []Option) error {
	f := failure{kind: kind}
	for _, opt := range opts {
		opt(&f)
	}

	if f.factory != nil {
		return f.factory(f.message)
	}

	message := f.message
	if f.format {
		message = fmt.Sprintf(f.message, f.args...)
	}

	return &CheckError{Kind: kind, Message: message}
}
