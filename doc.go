/*
Package lattice is a transactional, in-memory state store for Go programs.

A model of any type is owned by a store. Actions mutate one field of the model,
addressed by a typed keypath, and every mutation runs inside a transaction that
is fulfilled exactly once. Transactions are composed into stages: members of a
stage run concurrently and each stage depends on the whole stage before it.

# Concepts

  - Keypath: a named get/set pair for one field, either Required or Optional.
  - Action: Assign, Filter, RemoveAt or Push on a keypath.
  - Transaction: a unit of work with an identity, dependencies and a completion token.
  - Stage: a single transaction or a Concurrent group; Null is the empty stage.

# Usage

Typed models use the packages directly:

	type Cart struct{ Items []string }

	items := domain.Required("items",
		func(c *Cart) []string { return c.Items },
		func(c *Cart, v []string) { c.Items = v },
	)

	s := store.New(Cart{})
	txs := transaction.Sequence(
		s.Group(action.NewPush(items, "apple"), action.NewPush(items, "pear")),
		s.Transaction(action.NewRemoveAt[string](items, 0)),
	)
	if err := s.Run(ctx, txs); err != nil {
		log.Fatal(err)
	}

Declarative plans operate on map models and are run with RunPlan:

	p, err := plan.Load("checkout.yaml")
	if err != nil {
		log.Fatal(err)
	}
	res, err := lattice.RunPlan(ctx, p)

# Packages

  - pkg/domain: keypaths, sentinel errors and lifecycle events.
  - pkg/keypath: the collection mutators.
  - pkg/action: the four actions.
  - pkg/transaction: transactions, groups, sequencing and the dependency graph.
  - pkg/store: the store and its reference scheduler.
  - pkg/mapmodel, pkg/registry, pkg/plan: dynamic models and declarative plans.
  - pkg/observability: Prometheus metrics and logging hooks.
*/
package lattice
