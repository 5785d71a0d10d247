// Package events defines domain events raised by the calculators.
// Events are immutable facts about a calculation that already happened;
// nothing in the request path depends on them being delivered.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	eventID    uuid.UUID
	eventType  string
	occurredAt time.Time
}

func newBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		eventID:    uuid.New(),
		eventType:  eventType,
		occurredAt: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID {
	return e.eventID
}

func (e BaseEvent) EventType() string {
	return e.eventType
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Event types
const (
	EventTypeCalculationPerformed = "calculation.performed"
)

// Operations reported by CalculationPerformed.
const (
	OperationConvert      = "convert"
	OperationTTC          = "tva.ttc"
	OperationHT           = "tva.ht"
	OperationTvaAmount    = "tva.montant"
	OperationRemise       = "remise"
	OperationRemiseAmount = "remise.montant"
	OperationRemiseFixe   = "remise.fixe"
	OperationPrixOriginal = "remise.original"
)

// Operations lists every operation name, in a stable order.
func Operations() []string {
	return []string{
		OperationConvert,
		OperationTTC,
		OperationHT,
		OperationTvaAmount,
		OperationRemise,
		OperationRemiseAmount,
		OperationRemiseFixe,
		OperationPrixOriginal,
	}
}

// CalculationPerformed is raised after a calculation succeeded.
// Input holds the parsed inputs, Output the value returned to the caller.
type CalculationPerformed struct {
	BaseEvent
	Operation string         `json:"operation"`
	Input     map[string]any `json:"input"`
	Output    any            `json:"output"`
	RequestID string         `json:"requestId,omitempty"`
}

func NewCalculationPerformed(operation string, input map[string]any, output any) *CalculationPerformed {
	return &CalculationPerformed{
		BaseEvent: newBaseEvent(EventTypeCalculationPerformed),
		Operation: operation,
		Input:     input,
		Output:    output,
	}
}

// WithRequestID attaches the ID of the HTTP request that triggered the calculation.
func (e *CalculationPerformed) WithRequestID(requestID string) *CalculationPerformed {
	e.RequestID = requestID
	return e
}

// Subject returns the messaging subject for the event under prefix,
// e.g. "pricecalc.calculation.performed.convert".
func (e *CalculationPerformed) Subject(prefix string) string {
	subject := e.EventType() + "." + e.Operation
	if prefix == "" {
		return subject
	}
	return prefix + "." + subject
}
