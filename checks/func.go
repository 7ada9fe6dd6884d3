package checks

// Func3 is a function of three arguments, the three-argument counterpart to
// the one- and two-argument function signatures Go expresses directly. It is
// the factory type accepted by WithErrorArgs3.
type Func3[T, U, V, R any] func(T, U, V) R
