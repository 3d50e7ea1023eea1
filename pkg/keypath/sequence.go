package keypath

import (
	"fmt"
	"reflect"

	"github.com/aretw0/lattice/pkg/domain"
)

// AsSequence reports whether v can be viewed as an ordered sequence of T.
// It accepts []T, named slice types whose element type is T, and arrays of T.
// The returned slice is always a fresh copy.
func AsSequence[T any](v any) ([]T, error) {
	if s, ok := v.([]T); ok {
		return append([]T(nil), s...), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: <nil>", domain.ErrUnsupportedCollection)
	}

	elem := reflect.TypeFor[T]()
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem() != elem {
			break
		}
		out := make([]T, rv.Len())
		for i := range out {
			reflect.ValueOf(&out[i]).Elem().Set(rv.Index(i))
		}
		return out, nil
	}

	// Dynamic models hold []any; accept it when every element is a T.
	if s, ok := v.([]any); ok {
		out := make([]T, len(s))
		for i, item := range s {
			typed, ok := item.(T)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T", domain.ErrUnsupportedCollection, i, item)
			}
			out[i] = typed
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %T", domain.ErrUnsupportedCollection, v)
}

// fromSequence converts buf back into the field type V.
func fromSequence[V, T any](buf []T, original V) (V, error) {
	var zero V

	// []any fields keep their shape so dynamic models stay homogeneous.
	if _, ok := any(original).([]any); ok {
		out := make([]any, len(buf))
		for i, item := range buf {
			out[i] = item
		}
		return any(out).(V), nil
	}

	src := reflect.ValueOf(buf)

	// An interface-typed field keeps the runtime type it held (e.g. a named slice).
	if held := reflect.TypeOf(any(original)); held != nil && held != src.Type() && reflect.TypeFor[V]().Kind() == reflect.Interface {
		if out, ok := convertSequence(src, held); ok {
			return out.Interface().(V), nil
		}
		return zero, fmt.Errorf("%w: cannot store %T as %s", domain.ErrUnsupportedCollection, buf, held)
	}

	if v, ok := any(buf).(V); ok {
		return v, nil
	}

	target := reflect.TypeFor[V]()
	if out, ok := convertSequence(src, target); ok {
		return out.Interface().(V), nil
	}
	return zero, fmt.Errorf("%w: cannot store %T as %s", domain.ErrUnsupportedCollection, buf, target)
}

// convertSequence turns a slice value into target, a slice or array type.
// Arrays must keep their length.
func convertSequence(src reflect.Value, target reflect.Type) (reflect.Value, bool) {
	switch target.Kind() {
	case reflect.Slice:
		if src.Type().ConvertibleTo(target) {
			return src.Convert(target), true
		}
	case reflect.Array:
		if target.Len() == src.Len() && target.Elem() == src.Type().Elem() {
			arr := reflect.New(target).Elem()
			reflect.Copy(arr, src)
			return arr, true
		}
	}
	return reflect.Value{}, false
}
