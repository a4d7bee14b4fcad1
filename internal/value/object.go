package value

// Object is an ordered, string-keyed mapping from keys to Values. Insertion
// order is preserved and is the order the encoder emits entries in;
// re-setting an existing key updates its value in place without moving it.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty Object ready for Set calls.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set binds key to v, appending key to the iteration order on first use.
func (o *Object) Set(key string, v any) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value bound to key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the object's keys in insertion order. The slice is owned by
// the caller; mutating it does not affect the Object.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// Equal reports whether o and other hold the same keys, in the same order,
// with equal values. It lets go-cmp compare *Object values without reaching
// into the unexported fields.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
	}
	for _, k := range o.keys {
		av, _ := o.vals[k]
		bv, _ := other.vals[k]
		if !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Number:
		bv, ok := b.(Number)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
