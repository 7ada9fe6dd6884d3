package observe

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-checks/checks"
)

// Logger is the minimal logging interface required by Observer. It is
// satisfied by *zap.SugaredLogger.
type Logger interface {
	Errorf(format string, args ...any)
}

// instrumentationName identifies this package to OpenTelemetry.
const instrumentationName = "github.com/LerianStudio/lib-checks/checks/observe"

// SpanEventName is the event name recorded on spans for failed checks.
const SpanEventName = "check.failed"

// failedChecksMetricName is the counter incremented for every failed check.
const failedChecksMetricName = "checks_failed_total"

// Observer forwards failed checks to a logger and to OpenTelemetry.
// component and operation label everything it emits.
type Observer struct {
	logger    Logger
	component string
	operation string
}

// New creates an Observer. logger may be nil, in which case failures are
// recorded to telemetry only.
func New(logger Logger, component, operation string) *Observer {
	return &Observer{
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// Observe records err when it is non-nil and returns it unchanged, so check
// calls can be wrapped directly:
//
//	if err := obs.Observe(ctx, checks.IsNotEmpty(ids)); err != nil {
//		return err
//	}
//
// A nil err passes through with no side effects. A nil Observer is valid and
// records with empty labels.
func (o *Observer) Observe(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	logger, component, operation := o.values()
	kind := kindLabel(err)

	if logger != nil {
		logger.Errorf("%s: %v", statusMessage(component, operation), err)
	}

	recordMetric(ctx, component, operation, kind)
	recordToSpan(ctx, err, kind, component, operation)

	return err
}

func (o *Observer) values() (Logger, string, string) {
	if o == nil {
		return nil, "", ""
	}

	return o.logger, o.component, o.operation
}

// kindLabel maps err to a low-cardinality metric/span label. Errors produced
// by custom factories have no kind and are labeled "custom".
func kindLabel(err error) string {
	var checkErr *checks.CheckError
	if errors.As(err, &checkErr) && checkErr.Kind != nil {
		return checkErr.Kind.Error()
	}

	return "custom"
}

// recordMetric bumps the failed-check counter. The failure path is cold, so
// the counter is resolved from the global meter per call rather than cached;
// meter providers deduplicate instruments by name.
func recordMetric(ctx context.Context, component, operation, kind string) {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		failedChecksMetricName,
		metric.WithDescription("Total number of failed checks"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("operation", operation),
		attribute.String("kind", kind),
	))
}

func recordToSpan(ctx context.Context, err error, kind, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("check.kind", kind),
		attribute.String("check.message", err.Error()),
	}

	if component != "" {
		attrs = append(attrs, attribute.String("check.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("check.operation", operation))
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, statusMessage(component, operation))
}

func statusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return "check failed in " + component + "/" + operation
	case component != "":
		return "check failed in " + component
	case operation != "":
		return "check failed in " + operation
	default:
		return "check failed"
	}
}
