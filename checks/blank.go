package checks

import "strings"

// IsBlank returns an invalid-argument error when s contains any
// non-whitespace character. The empty string is blank.
func IsBlank(s string, opts ...Option) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsNotBlank returns an invalid-argument error when s is empty or consists
// entirely of whitespace.
func IsNotBlank(s string, opts ...Option) error {
	if strings.TrimSpace(s) != "" {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}
