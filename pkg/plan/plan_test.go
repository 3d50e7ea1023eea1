package plan_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	p, err := plan.Load("testdata/checkout.yaml")
	require.NoError(t, err)

	assert.Equal(t, "checkout", p.Name)
	require.Len(t, p.Stages, 3)
	assert.Len(t, p.Stages[1], 3)

	items, ok := mapmodel.Get(p.Model, "cart.items")
	require.True(t, ok)
	assert.Equal(t, []any{"apple", "kiwi"}, items)
}

func TestLoad_JSONNamesFromFile(t *testing.T) {
	p, err := plan.Load("testdata/checkout.json")
	require.NoError(t, err)
	assert.Equal(t, "checkout", p.Name)

	stages, err := p.Steps()
	require.NoError(t, err)
	require.NotNil(t, stages[0][0].Index)
	assert.Equal(t, 2, *stages[0][0].Index, "JSON numbers decode into ints")
	assert.Equal(t, "s0.0", stages[0][0].ID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := plan.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecodeStep(t *testing.T) {
	step, err := plan.DecodeStep(map[string]any{
		"id":     "f",
		"action": "filter",
		"path":   "xs",
		"where":  map[string]any{"op": "gt", "value": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "f", step.ID)
	assert.Equal(t, "filter", step.Action)
	require.NotNil(t, step.Where)
	assert.Equal(t, "gt", step.Where.Op)

	_, err = plan.DecodeStep(map[string]any{"action": "push", "pth": "typo"})
	assert.ErrorIs(t, err, domain.ErrInvalidStep)
}

func TestCompile_AndRun(t *testing.T) {
	p, err := plan.Load("testdata/checkout.yaml")
	require.NoError(t, err)

	compiled, err := plan.Compile(p, nil)
	require.NoError(t, err)
	require.Len(t, compiled.Transactions, 5)

	byID := make(map[string][]string)
	for _, tx := range compiled.Transactions {
		for _, dep := range tx.Dependencies() {
			byID[tx.ID()] = append(byID[tx.ID()], dep.ID())
		}
	}
	assert.Empty(t, byID["add-pear"])
	assert.Equal(t, []string{"add-pear"}, byID["drop-first"])
	assert.Equal(t, []string{"add-pear"}, byID["evens"])
	assert.ElementsMatch(t, []string{"drop-first", "owner", "evens"}, byID["note"])

	require.NoError(t, compiled.Store.Run(context.Background(), compiled.Transactions))

	final := compiled.Store.Model()
	items, _ := mapmodel.Get(final, "cart.items")
	assert.Equal(t, []any{"kiwi", "pear"}, items)
	owner, _ := mapmodel.Get(final, "cart.owner")
	assert.Equal(t, "ada", owner)
	assert.Equal(t, []any{2, 4}, final["scores"])
	_, hasNotes := mapmodel.Get(final, "cart.notes")
	assert.False(t, hasNotes)

	original, _ := mapmodel.Get(p.Model, "cart.items")
	assert.Equal(t, []any{"apple", "kiwi"}, original, "compiling must not mutate the plan")
}

func TestCompile_EmptyStagePolicies(t *testing.T) {
	src := `
empty_stages: %s
stages:
  - - {id: a, action: push, path: xs, value: 1}
  - []
  - - {id: b, action: push, path: xs, value: 2}
`
	for policy, want := range map[string][]string{
		plan.EmptyStagesReset: nil,
		plan.EmptyStagesSkip:  {"a"},
	} {
		t.Run(policy, func(t *testing.T) {
			p, err := plan.Parse([]byte(fmt.Sprintf(src, policy)), "yaml")
			require.NoError(t, err)

			compiled, err := plan.Compile(p, nil)
			require.NoError(t, err)

			var deps []string
			for _, d := range compiled.Transactions[1].Dependencies() {
				deps = append(deps, d.ID())
			}
			assert.Equal(t, want, deps)
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "Unknown action",
			src:  "stages: [[{action: explode, path: x}]]",
			want: domain.ErrUnknownAction,
		},
		{
			name: "Invalid step",
			src:  "stages: [[{action: remove_at, path: x}]]",
			want: domain.ErrInvalidStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := plan.Parse([]byte(tt.src), "yaml")
			require.NoError(t, err)

			_, err = plan.Compile(p, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Duplicate id", func(t *testing.T) {
		p, err := plan.Parse([]byte("stages: [[{id: a, action: push, path: x}], [{id: a, action: push, path: x}]]"), "yaml")
		require.NoError(t, err)
		_, err = plan.Compile(p, nil)
		assert.ErrorContains(t, err, "duplicate step id")
	})

	t.Run("Unknown policy", func(t *testing.T) {
		p := &plan.Plan{EmptyStages: "sometimes"}
		_, err := plan.Compile(p, nil)
		assert.ErrorContains(t, err, "empty_stages")
	})
}

func TestResultSchema(t *testing.T) {
	p, err := plan.Load("testdata/checkout.yaml")
	require.NoError(t, err)

	s, err := p.ResultSchema()
	require.NoError(t, err)
	assert.Len(t, s, 4)

	none, err := (&plan.Plan{}).ResultSchema()
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = (&plan.Plan{Schema: map[string]string{"x": "blob"}}).ResultSchema()
	assert.ErrorContains(t, err, "invalid schema")
}
