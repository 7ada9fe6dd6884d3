package checks

import "github.com/shopspring/decimal"

// Number constrains the built-in numeric types accepted by the range checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsPositive returns an invalid-argument error when n <= 0. Values are
// compared as float64 regardless of their native representation, so both 0
// and 0.0 fail.
func IsPositive[T Number](n T, opts ...Option) error {
	if float64(n) > 0 {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsNegative returns an invalid-argument error when n >= 0.
func IsNegative[T Number](n T, opts ...Option) error {
	if float64(n) < 0 {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsBetween returns an invalid-argument error when n is outside the
// inclusive range [min, max]. Values are compared as float64.
func IsBetween[T Number](n, min, max T, opts ...Option) error {
	v := float64(n)
	if v >= float64(min) && v <= float64(max) {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsPositiveDecimal returns an invalid-argument error when d <= 0. The
// comparison is exact; use this instead of IsPositive for monetary amounts,
// where a float64 round trip would lose precision.
func IsPositiveDecimal(d decimal.Decimal, opts ...Option) error {
	if d.IsPositive() {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsNegativeDecimal returns an invalid-argument error when d >= 0. The
// comparison is exact.
func IsNegativeDecimal(d decimal.Decimal, opts ...Option) error {
	if d.IsNegative() {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}

// IsBetweenDecimal returns an invalid-argument error when d is outside the
// inclusive range [min, max]. The comparison is exact.
func IsBetweenDecimal(d, min, max decimal.Decimal, opts ...Option) error {
	if d.Cmp(min) >= 0 && d.Cmp(max) <= 0 {
		return nil
	}

	return fail(ErrInvalidArgument, opts)
}
