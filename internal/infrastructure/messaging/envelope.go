// Package messaging - EventPublisher implementations.
//
// NATSPublisher sends events to a NATS server, LogPublisher writes them to
// the structured log and MemoryPublisher keeps them for tests. Every event
// leaves the process wrapped in the same JSON Envelope.
package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// Envelope is the wire form of a domain event.
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// Encode wraps event in an Envelope and marshals it.
// Data holds the exported fields of the concrete event.
func Encode(event events.DomainEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", event.EventType(), err)
	}

	return json.Marshal(Envelope{
		ID:         event.EventID().String(),
		Type:       event.EventType(),
		OccurredAt: event.OccurredAt(),
		Data:       data,
	})
}

// Subject returns the subject event is published on.
func Subject(prefix string, event events.DomainEvent) string {
	if s, ok := event.(interface{ Subject(string) string }); ok {
		return s.Subject(prefix)
	}
	if prefix == "" {
		return event.EventType()
	}
	return prefix + "." + event.EventType()
}
