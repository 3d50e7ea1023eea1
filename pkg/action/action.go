package action

import (
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/keypath"
	"github.com/aretw0/lattice/pkg/ports"
)

// Action names.
const (
	NameAssign   = "assign"
	NameFilter   = "filter"
	NameRemoveAt = "remove_at"
	NamePush     = "push"
)

// Assign replaces the field addressed by Keypath.
// A nil Value is skipped on a required field and clears an optional one.
type Assign[M, V any] struct {
	Keypath domain.Keypath[M, V]
	Value   *V
}

// NewAssign builds an Assign action. Pass nil to express an absent value.
func NewAssign[M, V any](kp domain.Keypath[M, V], value *V) Assign[M, V] {
	return Assign[M, V]{Keypath: kp, Value: value}
}

func (a Assign[M, V]) Name() string { return NameAssign }

func (a Assign[M, V]) Reduce(ctx ports.TransactionContext[M]) {
	defer ctx.Fulfill()
	ctx.ReduceModel(func(model *M) {
		if err := keypath.Assign(model, a.Keypath, a.Value); err != nil {
			report(ctx, a.Name(), a.Keypath.Name(), err)
		}
	})
}

// Filter keeps only the elements of the sequence for which Include returns true.
type Filter[M, V, T any] struct {
	Keypath domain.Keypath[M, V]
	Include func(T) bool
}

func NewFilter[M, V, T any](kp domain.Keypath[M, V], include func(T) bool) Filter[M, V, T] {
	return Filter[M, V, T]{Keypath: kp, Include: include}
}

func (a Filter[M, V, T]) Name() string { return NameFilter }

func (a Filter[M, V, T]) Reduce(ctx ports.TransactionContext[M]) {
	defer ctx.Fulfill()
	ctx.ReduceModel(func(model *M) {
		if err := keypath.Filter(model, a.Keypath, a.Include); err != nil {
			report(ctx, a.Name(), a.Keypath.Name(), err)
		}
	})
}

// RemoveAt removes the element at Index. The caller guarantees the index is in range.
type RemoveAt[M, V, T any] struct {
	Keypath domain.Keypath[M, V]
	Index   int
}

// NewRemoveAt builds a RemoveAt action. The element type cannot be inferred and comes first:
//
//	action.NewRemoveAt[string](tagsKeypath, 2)
func NewRemoveAt[T, M, V any](kp domain.Keypath[M, V], index int) RemoveAt[M, V, T] {
	return RemoveAt[M, V, T]{Keypath: kp, Index: index}
}

func (a RemoveAt[M, V, T]) Name() string { return NameRemoveAt }

func (a RemoveAt[M, V, T]) Reduce(ctx ports.TransactionContext[M]) {
	defer ctx.Fulfill()
	ctx.ReduceModel(func(model *M) {
		if err := keypath.RemoveAt[T](model, a.Keypath, a.Index); err != nil {
			report(ctx, a.Name(), a.Keypath.Name(), err)
		}
	})
}

// Push appends Element at the end of the sequence.
type Push[M, V, T any] struct {
	Keypath domain.Keypath[M, V]
	Element T
}

func NewPush[M, V, T any](kp domain.Keypath[M, V], element T) Push[M, V, T] {
	return Push[M, V, T]{Keypath: kp, Element: element}
}

func (a Push[M, V, T]) Name() string { return NamePush }

func (a Push[M, V, T]) Reduce(ctx ports.TransactionContext[M]) {
	defer ctx.Fulfill()
	ctx.ReduceModel(func(model *M) {
		if err := keypath.Push(model, a.Keypath, a.Element); err != nil {
			report(ctx, a.Name(), a.Keypath.Name(), err)
		}
	})
}

// report sends an absorbed failure to the context's diagnostic sink.
func report[M any](ctx ports.TransactionContext[M], name, kp string, err error) {
	if r, ok := ctx.(ports.DiagnosticReporter); ok {
		r.Report(name, kp, err)
		return
	}
	ctx.Logger().Error("Mutation skipped",
		"action", name,
		"keypath", kp,
		"err", err,
	)
}
