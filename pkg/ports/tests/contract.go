package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lattice/pkg/action"
	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DispatcherFactory creates a dispatcher seeded with initial and a function that reads
// the dispatcher's current model.
type DispatcherFactory func(initial mapmodel.Model) (ports.Dispatcher[mapmodel.Model], func() mapmodel.Model)

// stuckAction never fulfills its transaction.
type stuckAction struct{}

func (stuckAction) Name() string { return "stuck" }

func (stuckAction) Reduce(ports.TransactionContext[mapmodel.Model]) {}

// RunDispatcherContract is a reusable test suite that verifies if a dispatcher applies
// the built-in actions with the documented semantics.
func RunDispatcherContract(t *testing.T, factory DispatcherFactory) {
	t.Helper()

	dispatch := func(t *testing.T, initial mapmodel.Model, a ports.Action[mapmodel.Model]) mapmodel.Model {
		t.Helper()
		d, read := factory(initial)
		require.NoError(t, d.Dispatch(context.Background(), a))
		return read()
	}

	t.Run("Push", func(t *testing.T) {
		m := dispatch(t, mapmodel.Model{"items": []any{"a", "b"}},
			action.NewPush(mapmodel.Required("items"), any("e")))
		assert.Equal(t, []any{"a", "b", "e"}, m["items"])
	})

	t.Run("Filter", func(t *testing.T) {
		m := dispatch(t, mapmodel.Model{"items": []any{1, 2, 3, 4}},
			action.NewFilter(mapmodel.Required("items"), func(v any) bool { return v.(int)%2 == 0 }))
		assert.Equal(t, []any{2, 4}, m["items"])
	})

	t.Run("RemoveAt", func(t *testing.T) {
		m := dispatch(t, mapmodel.Model{"items": []any{"a", "b", "c"}},
			action.NewRemoveAt[any](mapmodel.Required("items"), 1))
		assert.Equal(t, []any{"a", "c"}, m["items"])
	})

	t.Run("Assign Required", func(t *testing.T) {
		v := any("new")
		m := dispatch(t, mapmodel.Model{"name": "old"}, action.NewAssign(mapmodel.Required("name"), &v))
		assert.Equal(t, "new", m["name"])

		m = dispatch(t, mapmodel.Model{"name": "old"}, action.NewAssign(mapmodel.Required("name"), nil))
		assert.Equal(t, "old", m["name"])
	})

	t.Run("Assign Optional Clears", func(t *testing.T) {
		m := dispatch(t, mapmodel.Model{"name": "old"}, action.NewAssign(mapmodel.Optional("name"), nil))
		assert.NotContains(t, m, "name")
	})

	t.Run("Absent Optional Is Noop", func(t *testing.T) {
		m := dispatch(t, mapmodel.Model{"other": 1},
			action.NewPush(mapmodel.Optional("items"), any("x")))
		assert.Equal(t, mapmodel.Model{"other": 1}, m)
	})

	t.Run("Unsupported Collection Is Noop", func(t *testing.T) {
		m := dispatch(t, mapmodel.Model{"items": "not a list"},
			action.NewPush(mapmodel.Required("items"), any("x")))
		assert.Equal(t, mapmodel.Model{"items": "not a list"}, m)
	})

	t.Run("Unfulfilled Action Honors Context", func(t *testing.T) {
		d, _ := factory(mapmodel.Model{})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := d.Dispatch(ctx, stuckAction{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
