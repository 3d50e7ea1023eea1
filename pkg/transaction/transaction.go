package transaction

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// PerformFunc does the work of a transaction. It must eventually fulfill tx, exactly once.
type PerformFunc func(ctx context.Context, tx *Transaction)

// Transaction is a unit of work with dependencies and a one-shot completion signal.
// Dependencies are non-owning references to transactions declared in earlier stages.
type Transaction struct {
	id         string
	label      string
	deps       []*Transaction
	perform    PerformFunc
	completion *Completion
}

// Option configures a Transaction.
type Option func(*Transaction)

// WithID overrides the generated identity.
func WithID(id string) Option {
	return func(t *Transaction) {
		t.id = id
	}
}

// WithLabel sets a human readable label (e.g. the action name).
func WithLabel(label string) Option {
	return func(t *Transaction) {
		t.label = label
	}
}

// New creates a transaction. A nil perform function fulfills immediately when performed.
func New(perform PerformFunc, opts ...Option) *Transaction {
	t := &Transaction{
		id:         uuid.NewString(),
		perform:    perform,
		completion: newCompletion(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the transaction identity.
func (t *Transaction) ID() string { return t.id }

// Label returns the label, falling back to the ID.
func (t *Transaction) Label() string {
	if t.label == "" {
		return t.id
	}
	return t.label
}

// Dependencies returns the transactions this one waits for.
func (t *Transaction) Dependencies() []*Transaction {
	return slices.Clone(t.deps)
}

// DependOn registers dependencies. Self references and duplicates are ignored.
func (t *Transaction) DependOn(others ...*Transaction) {
	for _, o := range others {
		if o == nil || o == t || t.DependsOn(o) {
			continue
		}
		t.deps = append(t.deps, o)
	}
}

// DependsOn reports whether other is a direct dependency.
func (t *Transaction) DependsOn(other *Transaction) bool {
	return slices.Contains(t.deps, other)
}

// Perform runs the transaction body.
func (t *Transaction) Perform(ctx context.Context) {
	if t.perform == nil {
		_ = t.Fulfill()
		return
	}
	t.perform(ctx, t)
}

// Fulfill signals completion. See Completion.Fulfill.
func (t *Transaction) Fulfill() error { return t.completion.Fulfill() }

// Done is closed once the transaction is fulfilled.
func (t *Transaction) Done() <-chan struct{} { return t.completion.Done() }

// Fulfilled reports whether the transaction completed.
func (t *Transaction) Fulfilled() bool { return t.completion.Fulfilled() }

// Transactions makes a single transaction usable as a stage.
// A nil transaction is an empty stage.
func (t *Transaction) Transactions() []*Transaction {
	if t == nil {
		return nil
	}
	return []*Transaction{t}
}
