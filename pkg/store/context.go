package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/aretw0/lattice/pkg/transaction"
)

// transactionContext is what an action sees while its transaction runs.
type transactionContext[M any] struct {
	ctx    context.Context
	store  *Store[M]
	tx     *transaction.Transaction
	action string
}

var (
	_ ports.TransactionContext[struct{}] = (*transactionContext[struct{}])(nil)
	_ ports.DiagnosticReporter           = (*transactionContext[struct{}])(nil)
)

func (tc *transactionContext[M]) ReduceModel(fn func(model *M)) {
	start := time.Now()
	tc.store.ReduceModel(fn)
	tc.emit(tc.store.hooks.OnReduce, domain.EventTransactionReduce, time.Since(start))
}

func (tc *transactionContext[M]) Fulfill() {
	if err := tc.tx.Fulfill(); err != nil {
		tc.Logger().Warn("Ignoring repeated fulfillment", "err", err)
		return
	}
	tc.emit(tc.store.hooks.OnTransactionFulfill, domain.EventTransactionFulfill, 0)
}

func (tc *transactionContext[M]) Logger() *slog.Logger {
	return tc.store.logger.With(
		"transaction_id", tc.tx.ID(),
		"action", tc.action,
	)
}

// Report logs an absorbed failure and forwards it to the diagnostic hook.
func (tc *transactionContext[M]) Report(action, keypath string, err error) {
	tc.store.logger.Error("Mutation skipped",
		"transaction_id", tc.tx.ID(),
		"action", action,
		"keypath", keypath,
		"err", err,
	)
	if tc.store.hooks.OnDiagnostic == nil {
		return
	}
	tc.store.hooks.OnDiagnostic(tc.ctx, &domain.DiagnosticEvent{
		EventBase:     domain.EventBase{Timestamp: time.Now(), Type: domain.EventDiagnostic},
		TransactionID: tc.tx.ID(),
		Action:        action,
		Keypath:       keypath,
		Err:           err,
	})
}

func (tc *transactionContext[M]) emit(hook func(context.Context, *domain.TransactionEvent), typ domain.EventType, d time.Duration) {
	if hook == nil {
		return
	}
	hook(tc.ctx, &domain.TransactionEvent{
		EventBase:     domain.EventBase{Timestamp: time.Now(), Type: typ},
		TransactionID: tc.tx.ID(),
		Action:        tc.action,
		Duration:      d,
	})
}
