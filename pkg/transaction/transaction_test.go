package transaction_test

import (
	"context"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesIdentity(t *testing.T) {
	a := transaction.New(nil)
	b := transaction.New(nil)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.ID(), a.Label(), "label falls back to the ID")
}

func TestFulfill_ExactlyOnce(t *testing.T) {
	tx := transaction.New(nil)
	assert.False(t, tx.Fulfilled())

	require.NoError(t, tx.Fulfill())
	assert.True(t, tx.Fulfilled())

	assert.ErrorIs(t, tx.Fulfill(), domain.ErrAlreadyFulfilled)

	select {
	case <-tx.Done():
	default:
		t.Fatal("Done should be closed after Fulfill")
	}
}

func TestPerform(t *testing.T) {
	called := false
	tx := transaction.New(func(ctx context.Context, tx *transaction.Transaction) {
		called = true
		_ = tx.Fulfill()
	})

	tx.Perform(context.Background())

	assert.True(t, called)
	assert.True(t, tx.Fulfilled())
}

func TestPerform_NilBodyFulfills(t *testing.T) {
	tx := transaction.New(nil)
	tx.Perform(context.Background())
	assert.True(t, tx.Fulfilled())
}

func TestDependOn_IgnoresSelfAndDuplicates(t *testing.T) {
	a, b := named("a"), named("b")

	a.DependOn(a, b, b, nil)

	assert.Equal(t, []string{"b"}, ids(a.Dependencies()))
	assert.True(t, a.DependsOn(b))
	assert.False(t, b.DependsOn(a))
}
