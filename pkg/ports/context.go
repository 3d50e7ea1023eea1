package ports

import "log/slog"

// TransactionContext is handed to an action while its transaction runs.
type TransactionContext[M any] interface {
	// ReduceModel invokes fn with exclusive access to the model.
	// The pointer must not be retained after fn returns.
	ReduceModel(fn func(model *M))

	// Fulfill signals that the transaction is complete.
	// Only the first call counts; later calls are reported and ignored.
	Fulfill()

	// Logger is the diagnostic sink for non-fatal problems found during reduction.
	Logger() *slog.Logger
}

// DiagnosticReporter is optionally implemented by a TransactionContext that wants to
// observe absorbed failures itself instead of relying on the logger alone.
type DiagnosticReporter interface {
	Report(action, keypath string, err error)
}
