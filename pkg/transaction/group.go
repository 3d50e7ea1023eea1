package transaction

import "slices"

// Convertible is anything that can be used as a stage: a single *Transaction or a Group.
type Convertible interface {
	// Transactions returns the wrapped transactions in declaration order.
	Transactions() []*Transaction
}

// Group is an ordered set of transactions with no dependency among themselves.
type Group struct {
	transactions []*Transaction
}

// Concurrent groups items so they share the same dependencies when used as one stage.
func Concurrent(items ...Convertible) Group {
	var g Group
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, tx := range item.Transactions() {
			if tx != nil {
				g.transactions = append(g.transactions, tx)
			}
		}
	}
	return g
}

// Null is the empty group.
func Null() Group {
	return Group{}
}

// Transactions returns the wrapped transactions.
func (g Group) Transactions() []*Transaction {
	return slices.Clone(g.transactions)
}

// Len returns the number of transactions in the group.
func (g Group) Len() int { return len(g.transactions) }

// Plus concatenates two groups without adding dependencies between them.
func (g Group) Plus(other Convertible) Group {
	return Concat(g, other)
}

// Concat returns a group with the transactions of lhs followed by those of rhs.
func Concat(lhs, rhs Convertible) Group {
	return Concurrent(lhs, rhs)
}
