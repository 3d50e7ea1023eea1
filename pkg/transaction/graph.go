package transaction

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// Graph indexes a compiled transaction list for validation and scheduling.
type Graph struct {
	order      []*Transaction
	index      map[string]*Transaction
	dependents map[string][]*Transaction
	dupes      []string
}

// NewGraph builds a graph over txs. It does not validate; call Validate.
func NewGraph(txs []*Transaction) *Graph {
	g := &Graph{
		order:      txs,
		index:      make(map[string]*Transaction, len(txs)),
		dependents: make(map[string][]*Transaction),
	}
	for _, tx := range txs {
		if _, exists := g.index[tx.ID()]; exists {
			g.dupes = append(g.dupes, tx.ID())
			continue
		}
		g.index[tx.ID()] = tx
	}
	for _, tx := range txs {
		for _, dep := range tx.deps {
			g.dependents[dep.ID()] = append(g.dependents[dep.ID()], tx)
		}
	}
	return g
}

// Transactions returns the list in declaration order.
func (g *Graph) Transactions() []*Transaction {
	return g.order
}

// Get looks a transaction up by identity.
func (g *Graph) Get(id string) (*Transaction, bool) {
	tx, ok := g.index[id]
	return tx, ok
}

// Dependents returns the transactions that directly depend on id.
func (g *Graph) Dependents(id string) []*Transaction {
	return g.dependents[id]
}

// Validate checks that identities are unique, every dependency is part of the graph
// and the graph is acyclic.
func (g *Graph) Validate() error {
	if len(g.dupes) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, g.dupes[0])
	}

	for _, tx := range g.order {
		for _, dep := range tx.deps {
			if known, ok := g.index[dep.ID()]; !ok || known != dep {
				return fmt.Errorf("%w: %s depends on %s", domain.ErrUnknownDependency, tx.Label(), dep.Label())
			}
		}
	}

	return g.detectCycles()
}

// detectCycles runs a depth-first search with a recursion stack (temporary)
// and a set of nodes known to be safe (permanent).
func (g *Graph) detectCycles() error {
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(tx *Transaction) error
	visit = func(tx *Transaction) error {
		if permanent[tx.ID()] {
			return nil
		}
		if temporary[tx.ID()] {
			return fmt.Errorf("%w involving %s", domain.ErrCycle, tx.Label())
		}

		temporary[tx.ID()] = true
		for _, dep := range tx.deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		delete(temporary, tx.ID())
		permanent[tx.ID()] = true
		return nil
	}

	for _, tx := range g.order {
		if err := visit(tx); err != nil {
			return err
		}
	}
	return nil
}

// Ready returns, in declaration order, the transactions not yet in fulfilled whose
// dependencies all are.
func (g *Graph) Ready(fulfilled map[string]bool) []*Transaction {
	var ready []*Transaction
	for _, tx := range g.order {
		if fulfilled[tx.ID()] {
			continue
		}
		if g.satisfied(tx, fulfilled) {
			ready = append(ready, tx)
		}
	}
	return ready
}

func (g *Graph) satisfied(tx *Transaction, fulfilled map[string]bool) bool {
	for _, dep := range tx.deps {
		if !fulfilled[dep.ID()] {
			return false
		}
	}
	return true
}

// Levels groups transactions into layers: every transaction only depends on earlier layers.
// Transactions in the same layer may run concurrently.
func (g *Graph) Levels() ([][]*Transaction, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(g.order))
	var levels [][]*Transaction
	for len(done) < len(g.order) {
		level := g.Ready(done)
		for _, tx := range level {
			done[tx.ID()] = true
		}
		levels = append(levels, level)
	}
	return levels, nil
}
