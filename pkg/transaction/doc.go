/*
Package transaction composes transactions into a dependency graph.

A Transaction is a unit of model-mutating work with an identity, a set of
dependencies and a one-shot completion signal. Transactions are declared in
stages: each stage is either a single *Transaction or a Group built with
Concurrent. Sequence (or the fluent Builder) compiles the stages into a flat,
ordered list where every transaction depends on all transactions of the stage
declared right before it. Members of the same group never depend on each other.

	list := transaction.Sequence(
		fetch,
		transaction.Concurrent(resize, thumbnail),
		publish,
	)
	// resize and thumbnail depend on fetch; publish depends on both.

The result is pure metadata. Executing it is left to a scheduler such as store.Run,
which must never start a transaction before all of its dependencies are fulfilled.
*/
package transaction
