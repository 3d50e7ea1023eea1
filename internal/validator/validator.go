package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/plan"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/transaction"
)

// ValidatePlan checks every step of p and the resulting dependency graph.
// Unlike plan.Compile, it does not stop at the first problem: all findings are reported.
func ValidatePlan(p *plan.Plan, reg *registry.Registry) error {
	if reg == nil {
		reg = registry.Default()
	}

	var errors []string
	seen := make(map[string]string)

	for i, stage := range p.Stages {
		for j, raw := range stage {
			where := fmt.Sprintf("stage %d step %d", i, j)

			step, err := plan.DecodeStep(raw)
			if err != nil {
				errors = append(errors, fmt.Sprintf("%s: %v", where, err))
				continue
			}
			if step.ID == "" {
				step.ID = fmt.Sprintf("s%d.%d", i, j)
			} else {
				where = fmt.Sprintf("%s (%s)", where, step.ID)
			}

			if first, dup := seen[step.ID]; dup {
				errors = append(errors, fmt.Sprintf("%s: id %q already used by %s", where, step.ID, first))
			} else {
				seen[step.ID] = where
			}

			if _, err := reg.Build(step.Spec); err != nil {
				errors = append(errors, fmt.Sprintf("%s: %v", where, err))
			}
		}
	}

	if _, err := p.ResultSchema(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	compiled, err := plan.Compile(p, reg)
	if err != nil {
		return err
	}
	if err := transaction.NewGraph(compiled.Transactions).Validate(); err != nil {
		return fmt.Errorf("invalid dependency graph: %w", err)
	}
	return nil
}
