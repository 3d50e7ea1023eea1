package store

import (
	"context"
	"fmt"

	"github.com/aretw0/lattice/pkg/transaction"
	"golang.org/x/sync/errgroup"
)

// Run executes a compiled transaction list. A transaction starts only after all of its
// dependencies are fulfilled; transactions without an edge between them may run
// concurrently. Run returns when every transaction is fulfilled or ctx is done.
// Transactions fulfilled by an earlier run are not performed again, so running a
// list twice applies each action once. Do not run the same list from two goroutines.
func (s *Store[M]) Run(ctx context.Context, txs []*transaction.Transaction) error {
	graph := transaction.NewGraph(txs)
	if err := graph.Validate(); err != nil {
		return fmt.Errorf("invalid transaction graph: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, tx := range graph.Transactions() {
		g.Go(func() error {
			for _, dep := range tx.Dependencies() {
				select {
				case <-dep.Done():
				case <-gctx.Done():
					return gctx.Err()
				}
			}

			if tx.Fulfilled() {
				s.logger.Debug("Skipping fulfilled transaction", "transaction_id", tx.ID(), "label", tx.Label())
				return nil
			}

			s.logger.Debug("Performing transaction", "transaction_id", tx.ID(), "label", tx.Label())
			tx.Perform(gctx)

			select {
			case <-tx.Done():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}
