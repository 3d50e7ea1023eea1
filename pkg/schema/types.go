package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Type defines the contract for value validation.
type Type interface {
	// Name returns the type as written in a plan (e.g. "string", "[int]").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

type scalar struct {
	name  string
	check func(any) bool
}

func (t scalar) Name() string { return t.name }

func (t scalar) Validate(value any) error {
	if !t.check(value) {
		return fmt.Errorf("expected %s, got %T", t.name, value)
	}
	return nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isAny(any) bool { return true }

func isInt(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		// JSON numbers arrive as float64
		return n == float64(int64(n))
	}
	return false
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return isInt(v)
}

// list validates ordered collections whose every element matches elem.
type list struct {
	elem Type
}

func (t list) Name() string { return "[" + t.elem.Name() + "]" }

func (t list) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return fmt.Errorf("expected %s, got %T", t.Name(), value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elem.Validate(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// optional marks a path that may be absent. Present values must match inner.
type optional struct {
	inner Type
}

func (t optional) Name() string             { return t.inner.Name() + "?" }
func (t optional) Validate(value any) error { return t.inner.Validate(value) }

// String matches string values.
func String() Type { return scalar{"string", isString} }

// Int matches integers, including whole float64 values.
func Int() Type { return scalar{"int", isInt} }

// Float matches any number.
func Float() Type { return scalar{"float", isFloat} }

// Bool matches boolean values.
func Bool() Type { return scalar{"bool", isBool} }

// Map matches nested objects.
func Map() Type { return scalar{"map", isMap} }

// Any matches every present value.
func Any() Type { return scalar{"any", isAny} }

// List matches slices and arrays of elem.
func List(elem Type) Type { return list{elem: elem} }

// Optional allows the path to be absent.
func Optional(inner Type) Type { return optional{inner: inner} }

// Custom creates a type backed by a user-defined check.
func Custom(name string, validate func(any) error) Type {
	return custom{name: name, validate: validate}
}

type custom struct {
	name     string
	validate func(any) error
}

func (t custom) Name() string             { return t.name }
func (t custom) Validate(value any) error { return t.validate(value) }

// IsOptional reports whether t accepts an absent path.
func IsOptional(t Type) bool {
	_, ok := t.(optional)
	return ok
}

// ParseType converts a type name to a Type.
// Supports "string", "int", "float", "bool", "map", "any", lists such as "[int]"
// and a trailing "?" for optional paths.
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)

	if inner, ok := strings.CutSuffix(name, "?"); ok {
		t, err := ParseType(inner)
		if err != nil {
			return nil, err
		}
		return Optional(t), nil
	}

	if len(name) > 2 && name[0] == '[' && name[len(name)-1] == ']' {
		elem, err := ParseType(name[1 : len(name)-1])
		if err != nil {
			return nil, err
		}
		return List(elem), nil
	}

	switch name {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	case "map":
		return Map(), nil
	case "any":
		return Any(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %q", name)
	}
}

// ParseTypeMap converts a map of paths to type names into a Schema.
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema, len(typeMap))
	for path, name := range typeMap {
		t, err := ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", path, err)
		}
		result[path] = t
	}
	return result, nil
}
