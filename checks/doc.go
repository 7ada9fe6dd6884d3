// Package checks provides precondition and invariant validation helpers that
// return explicit errors instead of panicking.
//
// Every check evaluates a single predicate over its inputs and returns nil
// when it holds. When it does not, the check returns an error wrapping one of
// three failure kinds: ErrInvalidArgument for caller input, ErrInvalidState
// for violated object or process invariants, and ErrNilArgument for required
// values that are nil. Callers branch on the kind with errors.Is:
//
//	if err := checks.IsNotNil(cfg); err != nil {
//		return err // errors.Is(err, checks.ErrNilArgument) == true
//	}
//
// Checks accept options that customize the failure. WithMessage and
// WithMessagef attach a message to the default error; the WithError family
// replaces the default error entirely with one produced by a caller-supplied
// factory, optionally carrying up to three context values:
//
//	err := checks.IsBetween(port, 1, 65535,
//		checks.WithMessagef("port %d out of range", port))
//
//	err := checks.IsNotEmpty(ids,
//		checks.WithErrorArg(func(op string) error {
//			return fmt.Errorf("%s: no account ids", op)
//		}, "settle"))
//
// Options and factories are evaluated only when the check fails; a passing
// check formats nothing and invokes nothing.
//
// All functions are stateless and safe for concurrent use.
package checks
