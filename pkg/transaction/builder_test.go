package transaction_test

import (
	"testing"

	"github.com/aretw0/lattice/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(id string) *transaction.Transaction {
	return transaction.New(nil, transaction.WithID(id), transaction.WithLabel(id))
}

func ids(txs []*transaction.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID())
	}
	return out
}

func TestSequence_Linear(t *testing.T) {
	t1, t2, t3 := named("t1"), named("t2"), named("t3")

	list := transaction.Sequence(t1, t2, t3)

	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(list))
	assert.Empty(t, t1.Dependencies())
	assert.Equal(t, []string{"t1"}, ids(t2.Dependencies()))
	assert.Equal(t, []string{"t2"}, ids(t3.Dependencies()))
}

func TestSequence_ConcurrentStage(t *testing.T) {
	t1, t2, t3, t4 := named("t1"), named("t2"), named("t3"), named("t4")

	list := transaction.Sequence(t1, transaction.Concurrent(t2, t3), t4)

	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, ids(list))
	assert.Equal(t, []string{"t1"}, ids(t2.Dependencies()))
	assert.Equal(t, []string{"t1"}, ids(t3.Dependencies()))
	assert.False(t, t2.DependsOn(t3))
	assert.False(t, t3.DependsOn(t2))
	assert.ElementsMatch(t, []string{"t2", "t3"}, ids(t4.Dependencies()))
}

func TestSequence_LengthAndUniqueness(t *testing.T) {
	a, b, c, d, e := named("a"), named("b"), named("c"), named("d"), named("e")

	list := transaction.Sequence(
		transaction.Concurrent(a, b),
		c,
		transaction.Concurrent(d, e),
		a, // declared again
	)

	require.Len(t, list, 5)
	seen := make(map[string]bool)
	for _, tx := range list {
		assert.False(t, seen[tx.ID()], "duplicate %s", tx.ID())
		seen[tx.ID()] = true
	}
}

func TestSequence_EmptyStageResetsChain(t *testing.T) {
	t1, t2 := named("t1"), named("t2")

	list := transaction.Sequence(t1, transaction.Null(), t2)

	assert.Equal(t, []string{"t1", "t2"}, ids(list))
	assert.Empty(t, t2.Dependencies(), "stage after an empty one starts with no dependencies")
}

func TestBuilder_SkipEmptyStages(t *testing.T) {
	t1, t2 := named("t1"), named("t2")

	list := transaction.NewBuilder(transaction.WithEmptyStages(transaction.SkipEmptyStages)).
		Then(t1, transaction.Null(), transaction.Concurrent()).
		Then(t2).
		Build()

	assert.Equal(t, []string{"t1", "t2"}, ids(list))
	assert.Equal(t, []string{"t1"}, ids(t2.Dependencies()))
}

func TestBuilder_Parallel(t *testing.T) {
	start, left, right, end := named("start"), named("left"), named("right"), named("end")

	list := transaction.NewBuilder().
		Then(start).
		Parallel(left, right).
		Then(end).
		Build()

	assert.Equal(t, []string{"start", "left", "right", "end"}, ids(list))
	assert.ElementsMatch(t, []string{"left", "right"}, ids(end.Dependencies()))
}

func TestBuilder_NestedGroupsFlatten(t *testing.T) {
	root, x, y, z := named("root"), named("x"), named("y"), named("z")

	inner := transaction.Concurrent(x, y)
	transaction.Sequence(root, transaction.Concurrent(inner, z))

	for _, tx := range []*transaction.Transaction{x, y, z} {
		assert.Equal(t, []string{"root"}, ids(tx.Dependencies()))
	}
}

type sparse []*transaction.Transaction

func (s sparse) Transactions() []*transaction.Transaction { return s }

func TestSequence_NilTransactionIsEmptyStage(t *testing.T) {
	var missing *transaction.Transaction
	t1, t3 := named("t1"), named("t3")

	var list []*transaction.Transaction
	require.NotPanics(t, func() {
		list = transaction.Sequence(t1, missing, t3)
	})

	assert.Equal(t, []string{"t1", "t3"}, ids(list))
	assert.Empty(t, t3.Dependencies(), "a nil stage resets the chain like any empty stage")
	assert.Empty(t, missing.Transactions())
}

func TestConcurrent_SkipsNilMembers(t *testing.T) {
	var missing *transaction.Transaction
	t1, t2 := named("t1"), named("t2")

	g := transaction.Concurrent(t1, missing, sparse{nil, t2})
	assert.Equal(t, []string{"t1", "t2"}, ids(g.Transactions()))

	t3 := named("t3")
	list := transaction.NewBuilder().Then(sparse{t1, nil}).Then(t3).Build()
	assert.Equal(t, []string{"t1", "t3"}, ids(list))
	assert.Equal(t, []string{"t1"}, ids(t3.Dependencies()))
}
