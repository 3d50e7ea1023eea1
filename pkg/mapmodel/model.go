package mapmodel

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
)

// Model is a dynamic, JSON-like model.
type Model = map[string]any

// Required addresses path as a field that is always present. A missing key reads as nil.
func Required(path string) domain.Keypath[Model, any] {
	segments := split(path)
	return domain.Required(path,
		func(m *Model) any {
			v, _ := lookup(*m, segments)
			return v
		},
		func(m *Model, v any) {
			store(m, segments, v)
		},
	).WithCheck(func(m *Model) error {
		return conflict(*m, segments)
	})
}

// Optional addresses path as a field that may be absent. Absent means the key is missing
// or holds nil; clearing removes the key.
func Optional(path string) domain.Keypath[Model, any] {
	segments := split(path)
	return domain.Optional(path,
		func(m *Model) *any {
			v, ok := lookup(*m, segments)
			if !ok || v == nil {
				return nil
			}
			return &v
		},
		func(m *Model, v *any) {
			if v == nil {
				remove(*m, segments)
				return
			}
			store(m, segments, *v)
		},
	).WithCheck(func(m *Model) error {
		return conflict(*m, segments)
	})
}

// Get resolves a dotted path.
func Get(m Model, path string) (any, bool) {
	return lookup(m, split(path))
}

func split(path string) []string {
	return strings.Split(path, ".")
}

func lookup(m Model, segments []string) (any, bool) {
	var current any = m
	for _, seg := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// conflict returns an error when an existing intermediate segment is not a map.
func conflict(m Model, segments []string) error {
	node := m
	for i, seg := range segments[:len(segments)-1] {
		current, exists := node[seg]
		if !exists || current == nil {
			return nil
		}
		next, ok := current.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q holds %T", domain.ErrPathConflict, strings.Join(segments[:i+1], "."), current)
		}
		node = next
	}
	return nil
}

// store creates missing intermediate maps. It never replaces an existing non-map value.
func store(m *Model, segments []string, v any) {
	if *m == nil {
		*m = make(Model)
	}
	node := *m
	for _, seg := range segments[:len(segments)-1] {
		current, exists := node[seg]
		next, ok := current.(map[string]any)
		switch {
		case ok:
		case !exists || current == nil:
			next = make(map[string]any)
			node[seg] = next
		default:
			return
		}
		node = next
	}
	node[segments[len(segments)-1]] = v
}

func remove(m Model, segments []string) {
	node := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			return
		}
		node = next
	}
	delete(node, segments[len(segments)-1])
}

// Clone deep-copies nested maps and slices so a snapshot is isolated from later mutations.
func Clone(m Model) Model {
	if m == nil {
		return nil
	}
	return cloneValue(m).(map[string]any)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
