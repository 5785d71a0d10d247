// Package ports - contracts the application layer needs from infrastructure.
//
// Pattern: Ports & Adapters. Use cases depend on these interfaces; NATS,
// logging and in-memory implementations live in internal/infrastructure.
package ports

import (
	"context"

	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// EventPublisher publishes domain events.
//
// Implementations:
// - NATS (messaging.NATSPublisher)
// - structured log (messaging.LogPublisher), the default
// - in-memory (messaging.MemoryPublisher), for tests
//
// Delivery is best effort: a calculation never fails because its event
// could not be published.
type EventPublisher interface {
	// Publish publishes one event.
	Publish(ctx context.Context, event events.DomainEvent) error

	// Close flushes pending events and releases the connection, if any.
	Close() error
}
