//go:build unit

package checks

import "testing"

// Benchmarks cover the hot path: a passing check should do no formatting and
// invoke no factories.

func BenchmarkCheck_Pass(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Check(true)
	}
}

func BenchmarkCheck_PassWithMessagef(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Check(true, WithMessagef("value %d out of range", i))
	}
}

func BenchmarkCheck_Fail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Check(false, WithMessage("failed"))
	}
}

func BenchmarkIsNotNil_NonNil(b *testing.B) {
	v := new(int)

	for i := 0; i < b.N; i++ {
		_ = IsNotNil(v)
	}
}

func BenchmarkIsNotEmpty_NonEmptySlice(b *testing.B) {
	s := []int{1, 2, 3}

	for i := 0; i < b.N; i++ {
		_ = IsNotEmpty(s)
	}
}

func BenchmarkIsBetween_Pass(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = IsBetween(5, 0, 10)
	}
}
