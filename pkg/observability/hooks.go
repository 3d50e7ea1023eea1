package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/lattice/pkg/domain"
)

// LoggingHooks logs every lifecycle event at debug level.
// Diagnostics are already logged by the store at error level, so they are skipped here.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransactionStart: func(ctx context.Context, e *domain.TransactionEvent) {
			logger.DebugContext(ctx, "transaction_start", "transaction_id", e.TransactionID, "action", e.Action)
		},
		OnReduce: func(ctx context.Context, e *domain.TransactionEvent) {
			logger.DebugContext(ctx, "transaction_reduce",
				"transaction_id", e.TransactionID,
				"action", e.Action,
				"duration", e.Duration,
			)
		},
		OnTransactionFulfill: func(ctx context.Context, e *domain.TransactionEvent) {
			logger.DebugContext(ctx, "transaction_fulfill", "transaction_id", e.TransactionID, "action", e.Action)
		},
	}
}

// Chain combines hook sets. Each event is delivered to every set in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		out.OnTransactionStart = chainTx(out.OnTransactionStart, h.OnTransactionStart)
		out.OnReduce = chainTx(out.OnReduce, h.OnReduce)
		out.OnTransactionFulfill = chainTx(out.OnTransactionFulfill, h.OnTransactionFulfill)
		out.OnDiagnostic = chainDiag(out.OnDiagnostic, h.OnDiagnostic)
	}
	return out
}

func chainTx(a, b func(context.Context, *domain.TransactionEvent)) func(context.Context, *domain.TransactionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.TransactionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainDiag(a, b func(context.Context, *domain.DiagnosticEvent)) func(context.Context, *domain.DiagnosticEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.DiagnosticEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
