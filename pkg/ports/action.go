package ports

// Action is a single model mutation. It is constructed per dispatch, reduced once, then discarded.
type Action[M any] interface {
	// Name identifies the kind of action in logs and metrics (e.g. "push").
	Name() string

	// Reduce performs the mutation through ctx and must fulfill it exactly once.
	Reduce(ctx TransactionContext[M])
}
