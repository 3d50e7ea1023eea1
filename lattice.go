package lattice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/internal/validator"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/plan"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/schema"
	"github.com/aretw0/lattice/pkg/store"
	"github.com/aretw0/lattice/pkg/transaction"
)

// Result is the outcome of running a plan.
type Result struct {
	Model        mapmodel.Model
	Delta        *mapmodel.Delta
	Transactions []*transaction.Transaction
}

type config struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	registry *registry.Registry
}

// Option defines a functional option for RunPlan.
type Option func(*config)

// WithLogger sets a custom structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithRegistry replaces the default action registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// RunPlan validates p, compiles it against a fresh store and runs every stage.
// When the plan declares a schema, the final model is checked against it and a
// mismatch is returned together with the result. The plan itself is not modified.
func RunPlan(ctx context.Context, p *plan.Plan, opts ...Option) (*Result, error) {
	cfg := &config{
		logger:   logging.NewNop(),
		registry: registry.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validator.ValidatePlan(p, cfg.registry); err != nil {
		return nil, fmt.Errorf("invalid plan %q: %w", p.Name, err)
	}

	compiled, err := plan.Compile(p, cfg.registry,
		store.WithLogger(cfg.logger),
		store.WithLifecycleHooks(cfg.hooks),
	)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("Running plan", "plan", p.Name, "transactions", len(compiled.Transactions))

	if err := compiled.Store.Run(ctx, compiled.Transactions); err != nil {
		return nil, fmt.Errorf("plan %q: %w", p.Name, err)
	}

	final := compiled.Store.Model()
	res := &Result{
		Model:        final,
		Delta:        mapmodel.Diff(p.Model, final),
		Transactions: compiled.Transactions,
	}

	s, err := p.ResultSchema()
	if err != nil {
		return res, err
	}
	if err := schema.Validate(s, final); err != nil {
		return res, fmt.Errorf("plan %q produced an invalid model: %w", p.Name, err)
	}
	return res, nil
}
