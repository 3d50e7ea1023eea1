/*
Package store holds a single model in memory and runs actions against it as transactions.

The Store grants exclusive access to the model through ReduceModel, turns actions into
transactions, and offers a reference scheduler (Run) that executes a compiled
transaction list while honoring its dependency edges.

	s := store.New(Cart{}, store.WithLogger(logger))

	list := transaction.Sequence(
		s.Transaction(action.NewPush(items, "apple")),
		s.Group(
			action.NewPush(items, "pear"),
			action.NewAssign(owner, &name),
		),
	)
	if err := s.Run(ctx, list); err != nil {
		return err
	}
*/
package store
