package keypath

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// Assign replaces the field addressed by kp.
// A nil value is ignored on a required field and clears an optional one.
// A write refused by the keypath leaves the model untouched and returns the reason.
func Assign[M, V any](model *M, kp domain.Keypath[M, V], value *V) error {
	if value == nil {
		if kp.Kind() == domain.KindOptional {
			kp.Clear(model)
		}
		return nil
	}
	if err := kp.CanWrite(model); err != nil {
		return fmt.Errorf("keypath %q: %w", kp.Name(), err)
	}
	kp.Write(model, *value)
	return nil
}

// Mutate views the field as a sequence of T, applies fn to a private copy and writes the
// result back. An absent optional field is a no-op. On error the model is left untouched.
func Mutate[T, M, V any](model *M, kp domain.Keypath[M, V], fn func([]T) []T) error {
	current, ok := kp.Read(model)
	if !ok {
		return nil
	}

	buf, err := AsSequence[T](any(current))
	if err != nil {
		return fmt.Errorf("keypath %q: %w", kp.Name(), err)
	}

	next, err := fromSequence(fn(buf), current)
	if err != nil {
		return fmt.Errorf("keypath %q: %w", kp.Name(), err)
	}

	if err := kp.CanWrite(model); err != nil {
		return fmt.Errorf("keypath %q: %w", kp.Name(), err)
	}
	kp.Write(model, next)
	return nil
}

// Filter keeps the elements for which include returns true, in their original order.
func Filter[T, M, V any](model *M, kp domain.Keypath[M, V], include func(T) bool) error {
	return Mutate(model, kp, func(s []T) []T {
		kept := s[:0]
		for _, item := range s {
			if include(item) {
				kept = append(kept, item)
			}
		}
		return kept
	})
}

// RemoveAt deletes the element at index, shifting the ones after it.
// The index must be valid; an out-of-range index panics like any slice access.
func RemoveAt[T, M, V any](model *M, kp domain.Keypath[M, V], index int) error {
	return Mutate(model, kp, func(s []T) []T {
		_ = s[index]
		return append(s[:index], s[index+1:]...)
	})
}

// Push appends element at the end of the sequence.
func Push[T, M, V any](model *M, kp domain.Keypath[M, V], element T) error {
	return Mutate(model, kp, func(s []T) []T {
		return append(s, element)
	})
}
