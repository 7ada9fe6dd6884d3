package checks

import (
	"fmt"
	"reflect"
)

// Check returns an invalid-argument error when condition is false.
//
// Example:
//
//	if err := checks.Check(limit > 0, checks.WithMessagef("limit must be positive, got %d", limit)); err != nil {
//		return err
//	}
func Check(condition bool, opts ...Option) error {
	if condition {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// CheckState returns an invalid-state error when condition is false. Use it
// for invariants about object or process state rather than caller input.
func CheckState(condition bool, opts ...Option) error {
	if condition {
		return nil
	}

	return fail(ErrInvalidState, opts)
}

// IsNil returns an invalid-argument error when v is non-nil.
func IsNil(v any, opts ...Option) error {
	if isNil(v) {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsNotNil returns a nil-argument error when v is nil. Typed nils (a nil
// pointer, slice, map, chan or func stored in a non-nil interface) count as
// nil.
func IsNotNil(v any, opts ...Option) error {
	if !isNil(v) {
		return nil
	}

	return fail(ErrNilArgument, opts)
}

// Equals returns an invalid-argument error when v is not equal to expected
// under value equality. When no option is supplied the error message is
// "Expected {expected} but got {v}".
func Equals(v, expected any, opts ...Option) error {
	if reflect.DeepEqual(v, expected) {
		return nil
	}

	if len(opts) == 0 {
		return &CheckError{
			Kind:    ErrInvalidArgument,
			Message: fmt.Sprintf("Expected %v but got %v", expected, v),
		}
	}

	return fail(ErrInvalidArgument, opts)
}

// isNil reports whether v is nil, handling both untyped nil and typed nil
// (nil values of pointer-like kinds stored in a non-nil interface).
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
