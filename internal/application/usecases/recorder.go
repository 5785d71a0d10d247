// Package usecases holds what the calculation use cases share: a span per
// calculation and a best-effort calculation.performed event afterwards.
package usecases

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Haleralex/pricecalc/internal/application/ports"
	"github.com/Haleralex/pricecalc/internal/domain/events"
	"github.com/Haleralex/pricecalc/internal/pkg/logger"
)

// TracerName is the instrumentation name of use case spans.
const TracerName = "github.com/Haleralex/pricecalc/internal/application/usecases"

// Recorder traces calculations and publishes their events.
// A nil publisher disables events.
type Recorder struct {
	publisher ports.EventPublisher
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewRecorder creates a Recorder. A nil tracer falls back to the global
// provider, a nil logger to slog.Default().
func NewRecorder(publisher ports.EventPublisher, tracer trace.Tracer, log *slog.Logger) *Recorder {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{
		publisher: publisher,
		tracer:    tracer,
		logger:    log,
	}
}

// Run executes fn inside a "calculation.<operation>" span. On success the
// output is published as a CalculationPerformed event with input as the
// received parameters. Publishing errors are logged and never returned.
func Run[R any](ctx context.Context, r *Recorder, operation string, input map[string]string, fn func() (R, error)) (R, error) {
	ctx, span := r.tracer.Start(ctx, "calculation."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(inputAttributes(operation, input)...),
	)
	defer span.End()

	result, err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.DebugContext(ctx, "calculation rejected",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	span.SetStatus(codes.Ok, "")
	r.publish(ctx, operation, input, result)
	return result, nil
}

func (r *Recorder) publish(ctx context.Context, operation string, input map[string]string, output any) {
	if r.publisher == nil {
		return
	}

	payload := make(map[string]any, len(input))
	for k, v := range input {
		payload[k] = v
	}

	event := events.NewCalculationPerformed(operation, payload, output).
		WithRequestID(logger.GetRequestID(ctx))

	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "failed to publish calculation event",
			slog.String("operation", operation),
			slog.String("event_id", event.EventID().String()),
			slog.Any("error", err),
		)
	}
}

func inputAttributes(operation string, input map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(input)+1)
	attrs = append(attrs, attribute.String("calculation.operation", operation))
	for k, v := range input {
		attrs = append(attrs, attribute.String("calculation.input."+k, v))
	}
	return attrs
}
