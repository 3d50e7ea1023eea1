package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransactionStart   EventType = "transaction_start"
	EventTransactionReduce  EventType = "transaction_reduce"
	EventTransactionFulfill EventType = "transaction_fulfill"
	EventDiagnostic         EventType = "diagnostic"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TransactionEvent describes a step in the life of a single transaction.
type TransactionEvent struct {
	EventBase
	TransactionID string        `json:"transaction_id"`
	Action        string        `json:"action"`
	Duration      time.Duration `json:"duration,omitempty"`
}

// DiagnosticEvent carries a non-fatal problem found while reducing a model.
type DiagnosticEvent struct {
	EventBase
	TransactionID string `json:"transaction_id,omitempty"`
	Action        string `json:"action"`
	Keypath       string `json:"keypath"`
	Err           error  `json:"-"`
}

// LifecycleHooks defines callbacks for store observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnTransactionStart   func(context.Context, *TransactionEvent)
	OnReduce             func(context.Context, *TransactionEvent)
	OnTransactionFulfill func(context.Context, *TransactionEvent)
	OnDiagnostic         func(context.Context, *DiagnosticEvent)
}
