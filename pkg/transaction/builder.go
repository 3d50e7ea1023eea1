package transaction

// EmptyStagePolicy decides what an empty stage does to the dependency chain.
type EmptyStagePolicy int

const (
	// ResetOnEmpty treats an empty stage like any other: it becomes the previous stage,
	// so the stage after it starts with no dependencies.
	ResetOnEmpty EmptyStagePolicy = iota
	// SkipEmptyStages ignores empty stages; the chain continues from the last non-empty one.
	SkipEmptyStages
)

// Builder collects stages and compiles them into a dependency-annotated list.
type Builder struct {
	stages []Convertible
	policy EmptyStagePolicy
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithEmptyStages selects the empty stage policy (default: ResetOnEmpty).
func WithEmptyStages(policy EmptyStagePolicy) BuilderOption {
	return func(b *Builder) {
		b.policy = policy
	}
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Then appends each argument as its own sequential stage.
func (b *Builder) Then(stages ...Convertible) *Builder {
	for _, s := range stages {
		if s == nil {
			s = Null()
		}
		b.stages = append(b.stages, s)
	}
	return b
}

// Parallel appends a single stage made of all items running concurrently.
func (b *Builder) Parallel(items ...Convertible) *Builder {
	b.stages = append(b.stages, Concurrent(items...))
	return b
}

// Build registers the dependencies and returns the flat list in declaration order.
// Every member of a stage depends on every transaction of the previous stage.
// A transaction declared more than once is listed once, at its first position.
func (b *Builder) Build() []*Transaction {
	var result []*Transaction
	seen := make(map[*Transaction]bool)

	var previous Convertible = Null()
	for _, stage := range b.stages {
		members := Concurrent(stage).transactions
		for _, tx := range members {
			tx.DependOn(previous.Transactions()...)
			if !seen[tx] {
				seen[tx] = true
				result = append(result, tx)
			}
		}

		if len(members) == 0 && b.policy == SkipEmptyStages {
			continue
		}
		previous = stage
	}
	return result
}

// Sequence compiles stages with the default policy. Each argument is one stage.
func Sequence(stages ...Convertible) []*Transaction {
	return NewBuilder().Then(stages...).Build()
}
