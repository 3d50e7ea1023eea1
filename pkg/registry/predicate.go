package registry

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
)

// Predicate describes an element test for filter actions.
//
// Supported operators: eq, ne, gt, gte, lt, lte (compare to Value),
// even, odd (integers), contains (substring of a string element).
type Predicate struct {
	Op    string `mapstructure:"op" json:"op" yaml:"op"`
	Value any    `mapstructure:"value" json:"value,omitempty" yaml:"value,omitempty"`
}

// Compile turns the predicate into a function usable by action.Filter.
func (p Predicate) Compile() (func(any) bool, error) {
	switch strings.ToLower(p.Op) {
	case "eq":
		return func(v any) bool { return equal(v, p.Value) }, nil
	case "ne":
		return func(v any) bool { return !equal(v, p.Value) }, nil
	case "gt", "gte", "lt", "lte":
		want, ok := toFloat(p.Value)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs a numeric value, got %T", domain.ErrInvalidStep, p.Op, p.Value)
		}
		op := strings.ToLower(p.Op)
		return func(v any) bool {
			got, ok := toFloat(v)
			if !ok {
				return false
			}
			switch op {
			case "gt":
				return got > want
			case "gte":
				return got >= want
			case "lt":
				return got < want
			default:
				return got <= want
			}
		}, nil
	case "even", "odd":
		rem := int64(0)
		if strings.ToLower(p.Op) == "odd" {
			rem = 1
		}
		return func(v any) bool {
			f, ok := toFloat(v)
			if !ok || f != float64(int64(f)) {
				return false
			}
			r := int64(f) % 2
			if r < 0 {
				r = -r
			}
			return r == rem
		}, nil
	case "contains":
		needle, ok := p.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: contains needs a string value", domain.ErrInvalidStep)
		}
		return func(v any) bool {
			s, ok := v.(string)
			return ok && strings.Contains(s, needle)
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown predicate %q", domain.ErrInvalidStep, p.Op)
	}
}

// equal compares numbers by value regardless of their decoded type (int vs float64).
func equal(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
