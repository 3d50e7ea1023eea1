package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/aretw0/lattice/pkg/transaction"
)

// Store owns a model and serializes every mutation of it.
type Store[M any] struct {
	mu     sync.Mutex
	model  M
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

var _ ports.Dispatcher[struct{}] = (*Store[struct{}])(nil)

// New creates a store seeded with initial.
func New[M any](initial M, opts ...Option) *Store[M] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[M]{
		model:  initial,
		logger: o.logger,
		hooks:  o.hooks,
	}
}

// Model returns a copy of the current model value.
// Reference fields (slices, maps, pointers) are shared; clone them before mutating.
func (s *Store[M]) Model() M {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// ReduceModel invokes fn with exclusive access to the model.
func (s *Store[M]) ReduceModel(fn func(model *M)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.model)
}

// Transaction wraps a into a transaction whose body reduces it against this store.
// The label defaults to the action name.
func (s *Store[M]) Transaction(a ports.Action[M], opts ...transaction.Option) *transaction.Transaction {
	opts = append([]transaction.Option{transaction.WithLabel(a.Name())}, opts...)
	return transaction.New(func(ctx context.Context, tx *transaction.Transaction) {
		s.perform(ctx, tx, a)
	}, opts...)
}

// Group wraps each action into a transaction and groups them to run concurrently.
func (s *Store[M]) Group(actions ...ports.Action[M]) transaction.Group {
	items := make([]transaction.Convertible, 0, len(actions))
	for _, a := range actions {
		items = append(items, s.Transaction(a))
	}
	return transaction.Concurrent(items...)
}

// Dispatch runs a single action and waits for its transaction to be fulfilled.
func (s *Store[M]) Dispatch(ctx context.Context, a ports.Action[M]) error {
	tx := s.Transaction(a)
	tx.Perform(ctx)

	select {
	case <-tx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store[M]) perform(ctx context.Context, tx *transaction.Transaction, a ports.Action[M]) {
	tc := &transactionContext[M]{
		ctx:    ctx,
		store:  s,
		tx:     tx,
		action: a.Name(),
	}
	tc.emit(s.hooks.OnTransactionStart, domain.EventTransactionStart, 0)

	a.Reduce(tc)
}
