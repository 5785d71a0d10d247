package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// LogPublisher writes events to the structured log. It is the publisher
// used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogPublisher creates a publisher logging at level.
func NewLogPublisher(logger *slog.Logger, level slog.Level) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger, level: level}
}

// Publish implements ports.EventPublisher.
func (p *LogPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if !p.logger.Enabled(ctx, p.level) {
		return nil
	}

	data, err := Encode(event)
	if err != nil {
		return err
	}

	p.logger.LogAttrs(ctx, p.level, "event published",
		slog.String("event_id", event.EventID().String()),
		slog.String("event_type", event.EventType()),
		slog.String("subject", Subject("", event)),
		slog.Any("envelope", json.RawMessage(data)),
	)
	return nil
}

// Close implements ports.EventPublisher.
func (p *LogPublisher) Close() error {
	return nil
}
