package domain

// KeypathKind tells whether a Keypath addresses a required or an optional field.
type KeypathKind int

const (
	KindRequired KeypathKind = iota // Field is always present
	KindOptional                    // Field may be absent (nil)
)

func (k KeypathKind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Keypath addresses a field of type V inside a model M.
// Exactly one variant is active; build it with Required or Optional.
type Keypath[M, V any] struct {
	name string
	kind KeypathKind

	get func(*M) V
	set func(*M, V)

	getOptional func(*M) *V
	setOptional func(*M, *V)

	check func(*M) error
}

// Required addresses a non-optional field.
func Required[M, V any](name string, get func(*M) V, set func(*M, V)) Keypath[M, V] {
	return Keypath[M, V]{
		name: name,
		kind: KindRequired,
		get:  get,
		set:  set,
	}
}

// Optional addresses a field that may be absent. A nil pointer means absent.
func Optional[M, V any](name string, get func(*M) *V, set func(*M, *V)) Keypath[M, V] {
	return Keypath[M, V]{
		name:        name,
		kind:        KindOptional,
		getOptional: get,
		setOptional: set,
	}
}

// WithCheck returns a copy of k that runs check before every write.
// Models whose fields can be unreachable (e.g. nested paths) use it to refuse a write.
func (k Keypath[M, V]) WithCheck(check func(*M) error) Keypath[M, V] {
	k.check = check
	return k
}

// CanWrite reports why the field cannot be written, or nil.
func (k Keypath[M, V]) CanWrite(model *M) error {
	if k.check == nil {
		return nil
	}
	return k.check(model)
}

// Name returns the descriptive label of the keypath (used in logs).
func (k Keypath[M, V]) Name() string { return k.name }

// Kind returns which variant is active.
func (k Keypath[M, V]) Kind() KeypathKind { return k.kind }

// Read resolves the field. ok is false when an optional field is absent.
func (k Keypath[M, V]) Read(model *M) (value V, ok bool) {
	if k.kind == KindOptional {
		ptr := k.getOptional(model)
		if ptr == nil {
			return value, false
		}
		return *ptr, true
	}
	return k.get(model), true
}

// Write stores value through the same variant used to read it.
func (k Keypath[M, V]) Write(model *M, value V) {
	if k.kind == KindOptional {
		k.setOptional(model, &value)
		return
	}
	k.set(model, value)
}

// Clear sets an optional field to absent. It is a no-op on required fields.
func (k Keypath[M, V]) Clear(model *M) {
	if k.kind == KindOptional {
		k.setOptional(model, nil)
	}
}
