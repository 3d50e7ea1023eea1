package domain

import "errors"

// ErrUnsupportedCollection is reported when a field value cannot be viewed as an ordered sequence
// of the expected element type.
var ErrUnsupportedCollection = errors.New("unsupported collection type")

// ErrAlreadyFulfilled is returned when a transaction signals completion more than once.
var ErrAlreadyFulfilled = errors.New("transaction already fulfilled")

// ErrUnknownDependency is returned when a transaction depends on one that is not part of the graph.
var ErrUnknownDependency = errors.New("unknown dependency")

// ErrDuplicateTransaction is returned when the same transaction identity appears twice in a graph.
var ErrDuplicateTransaction = errors.New("duplicate transaction")

// ErrCycle is returned when the dependency graph is not acyclic.
var ErrCycle = errors.New("dependency cycle")

// ErrUnknownAction is returned when a plan step names an action that is not registered.
var ErrUnknownAction = errors.New("unknown action")

// ErrInvalidStep is returned when a plan step cannot be decoded into an action.
var ErrInvalidStep = errors.New("invalid step")

// ErrPathConflict is reported when a nested write would overwrite a value that is not a map.
var ErrPathConflict = errors.New("path blocked by a non-map value")

// ErrPathNotFound is reported when a required field of a dynamic model is missing.
var ErrPathNotFound = errors.New("path not found")
