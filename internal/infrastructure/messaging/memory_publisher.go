package messaging

import (
	"context"
	"sync"

	"github.com/Haleralex/pricecalc/internal/domain/events"
)

// MemoryPublisher records events in memory. Safe for concurrent use.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

// NewMemoryPublisher creates an empty publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// FailWith makes subsequent publishes return err; nil restores success.
func (p *MemoryPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Publish implements ports.EventPublisher.
func (p *MemoryPublisher) Publish(_ context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of the recorded events.
func (p *MemoryPublisher) Events() []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Reset forgets recorded events.
func (p *MemoryPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

// Close implements ports.EventPublisher.
func (p *MemoryPublisher) Close() error {
	return nil
}
