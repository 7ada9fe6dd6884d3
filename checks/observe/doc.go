// Package observe forwards failed checks to a logger and to OpenTelemetry.
//
// The checks package itself never logs or records telemetry: a failed check
// is an error returned to the caller and nothing else. Services that want
// failed preconditions to show up in logs, traces, and metrics wrap check
// calls in an Observer:
//
//	obs := observe.New(logger, "transaction", "create")
//
//	if err := obs.Observe(ctx, checks.IsNotNil(input)); err != nil {
//		return err
//	}
//
// Observe returns the error unchanged, so the caller's error handling is
// unaffected. On failure it emits one log line, one span event on the
// recording span (plus an error status), and increments the
// checks_failed_total counter labeled with component, operation, and the
// failure kind. A nil error passes through with no side effects.
package observe
