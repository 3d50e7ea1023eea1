package mapmodel

import (
	"reflect"
	"sort"
)

// Delta represents the changes between two model snapshots.
// It is designed to be serialized to JSON for partial updates.
type Delta struct {
	// Changed contains added or modified top-level keys with their new value.
	Changed map[string]any `json:"changed,omitempty"`

	// Deleted lists top-level keys present in the old model but not in the new one.
	Deleted []string `json:"deleted,omitempty"`
}

// Diff calculates the difference between oldModel and newModel.
// If oldModel is nil, every key of newModel is reported as changed (initial load).
// It returns nil when nothing changed.
func Diff(oldModel, newModel Model) *Delta {
	delta := &Delta{Changed: make(map[string]any)}

	for k, newVal := range newModel {
		oldVal, exists := oldModel[k]
		if !exists || !reflect.DeepEqual(oldVal, newVal) {
			delta.Changed[k] = newVal
		}
	}

	for k := range oldModel {
		if _, exists := newModel[k]; !exists {
			delta.Deleted = append(delta.Deleted, k)
		}
	}
	sort.Strings(delta.Deleted)

	if delta.IsEmpty() {
		return nil
	}
	if len(delta.Changed) == 0 {
		delta.Changed = nil
	}
	return delta
}

// IsEmpty checks if the delta contains any actionable changes.
func (d *Delta) IsEmpty() bool {
	return d == nil || (len(d.Changed) == 0 && len(d.Deleted) == 0)
}
