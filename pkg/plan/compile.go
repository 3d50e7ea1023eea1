package plan

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/store"
	"github.com/aretw0/lattice/pkg/transaction"
)

// Compiled is a plan bound to a store, ready to run.
type Compiled struct {
	Store        *store.Store[mapmodel.Model]
	Transactions []*transaction.Transaction
	Steps        map[string]Step
}

// Compile builds a store seeded with a copy of the plan's model and turns every step into
// a transaction of that store. Stages are chained with transaction.Builder.
func Compile(p *Plan, reg *registry.Registry, opts ...store.Option) (*Compiled, error) {
	if reg == nil {
		reg = registry.Default()
	}

	policy, err := p.emptyStagePolicy()
	if err != nil {
		return nil, err
	}

	stages, err := p.Steps()
	if err != nil {
		return nil, err
	}

	model := mapmodel.Clone(p.Model)
	if model == nil {
		model = mapmodel.Model{}
	}
	s := store.New(model, opts...)

	compiled := &Compiled{
		Store: s,
		Steps: make(map[string]Step),
	}
	builder := transaction.NewBuilder(transaction.WithEmptyStages(policy))

	for i, stage := range stages {
		members := make([]transaction.Convertible, 0, len(stage))
		for _, step := range stage {
			if _, dup := compiled.Steps[step.ID]; dup {
				return nil, fmt.Errorf("stage %d: duplicate step id %q", i, step.ID)
			}
			a, err := reg.Build(step.Spec)
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", step.ID, err)
			}
			compiled.Steps[step.ID] = step
			members = append(members, s.Transaction(a,
				transaction.WithID(step.ID),
				transaction.WithLabel(step.ID),
			))
		}
		builder.Parallel(members...)
	}

	compiled.Transactions = builder.Build()
	return compiled, nil
}

func (p *Plan) emptyStagePolicy() (transaction.EmptyStagePolicy, error) {
	switch p.EmptyStages {
	case "", EmptyStagesReset:
		return transaction.ResetOnEmpty, nil
	case EmptyStagesSkip:
		return transaction.SkipEmptyStages, nil
	default:
		return 0, fmt.Errorf("unknown empty_stages policy %q", p.EmptyStages)
	}
}
