package checks

import "reflect"

// IsEmpty requires v to be non-nil and empty. Supported shapes are strings,
// slices, arrays and maps; a value of any other type fails the check. The
// nil stage delegates to IsNotNil with the same options, so a custom error
// factory covers both stages; without one, a nil v yields a nil-argument
// error and a non-empty v an invalid-argument error.
func IsEmpty(v any, opts ...Option) error {
	if err := IsNotNil(v, opts...); err != nil {
		return err
	}

	return checkLen(v, true, opts)
}

// IsNotEmpty requires v to be non-nil and not empty. See IsEmpty for the
// supported shapes and option semantics.
func IsNotEmpty(v any, opts ...Option) error {
	if err := IsNotNil(v, opts...); err != nil {
		return err
	}

	return checkLen(v, false, opts)
}

func checkLen(v any, wantEmpty bool, opts []Option) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.String, reflect.Slice, reflect.Map:
		if (rv.Len() == 0) == wantEmpty {
			return nil
		}

		return fail(ErrInvalidArgument, opts)
	default:
		// A value without a length satisfies neither check.
		return fail(ErrInvalidArgument, opts)
	}
}
