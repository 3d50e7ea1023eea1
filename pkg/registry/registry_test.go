package registry_test

import (
	"context"
	"testing"

	"github.com/aretw0/lattice/pkg/action"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func apply(t *testing.T, m mapmodel.Model, spec registry.Spec) mapmodel.Model {
	t.Helper()
	a, err := registry.Default().Build(spec)
	require.NoError(t, err)

	s := store.New(m)
	require.NoError(t, s.Dispatch(context.Background(), a))
	return s.Model()
}

func TestDefault_Names(t *testing.T) {
	assert.Equal(t,
		[]string{action.NameAssign, action.NameFilter, action.NamePush, action.NameRemoveAt},
		registry.Default().Names(),
	)
}

func TestBuild_BuiltIns(t *testing.T) {
	m := apply(t, mapmodel.Model{"n": []any{1, 2, 3, 4}}, registry.Spec{
		Action: "filter", Path: "n", Where: &registry.Predicate{Op: "even"},
	})
	assert.Equal(t, []any{2, 4}, m["n"])

	m = apply(t, mapmodel.Model{"n": []any{"a", "b", "c"}}, registry.Spec{
		Action: "remove_at", Path: "n", Index: intPtr(1),
	})
	assert.Equal(t, []any{"a", "c"}, m["n"])

	m = apply(t, mapmodel.Model{"n": []any{"a"}}, registry.Spec{
		Action: "push", Path: "n", Value: "b",
	})
	assert.Equal(t, []any{"a", "b"}, m["n"])

	m = apply(t, mapmodel.Model{}, registry.Spec{
		Action: "assign", Path: "user.name", Value: "ada",
	})
	v, _ := mapmodel.Get(m, "user.name")
	assert.Equal(t, "ada", v)

	m = apply(t, mapmodel.Model{"nick": "x"}, registry.Spec{
		Action: "assign", Path: "nick", Optional: true, Unset: true,
	})
	assert.NotContains(t, m, "nick")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec registry.Spec
		want error
	}{
		{name: "Unknown action", spec: registry.Spec{Action: "explode", Path: "x"}, want: domain.ErrUnknownAction},
		{name: "Missing path", spec: registry.Spec{Action: "push"}, want: domain.ErrInvalidStep},
		{name: "Assign without value", spec: registry.Spec{Action: "assign", Path: "x"}, want: domain.ErrInvalidStep},
		{name: "Filter without where", spec: registry.Spec{Action: "filter", Path: "x"}, want: domain.ErrInvalidStep},
		{name: "Negative index", spec: registry.Spec{Action: "remove_at", Path: "x", Index: intPtr(-1)}, want: domain.ErrInvalidStep},
		{name: "Missing index", spec: registry.Spec{Action: "remove_at", Path: "x"}, want: domain.ErrInvalidStep},
		{name: "Bad predicate", spec: registry.Spec{Action: "filter", Path: "x", Where: &registry.Predicate{Op: "near"}}, want: domain.ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Default().Build(tt.spec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

type noop struct{}

func (noop) Name() string { return "noop" }

func (noop) Reduce(ctx ports.TransactionContext[mapmodel.Model]) { ctx.Fulfill() }

func TestRegister_Custom(t *testing.T) {
	r := registry.NewRegistry()
	assert.False(t, r.Has("noop"))

	r.Register("noop", func(registry.Spec) (ports.Action[mapmodel.Model], error) { return noop{}, nil })
	assert.True(t, r.Has("noop"))

	a, err := r.Build(registry.Spec{Action: "noop", Path: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "noop", a.Name())
}
