package interact

import (
	"encoding/json"
	"fmt"
)

// Optional is a key that may be absent.
type Optional[K comparable] struct {
	key K
	ok  bool
}

// Some returns a present key.
func Some[K comparable](k K) Optional[K] { return Optional[K]{key: k, ok: true} }

// None returns an absent key.
func None[K comparable]() Optional[K] { return Optional[K]{} }

// Get returns the key and whether it is present.
func (o Optional[K]) Get() (K, bool) { return o.key, o.ok }

// Valid reports whether the key is present.
func (o Optional[K]) Valid() bool { return o.ok }

// Is reports whether the key is present and equal to k.
func (o Optional[K]) Is(k K) bool { return o.ok && o.key == k }

// String returns "none" or the formatted key.
func (o Optional[K]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprint(o.key)
}

// MarshalJSON encodes an absent key as null.
func (o Optional[K]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.key)
}

// UnmarshalJSON decodes null as an absent key.
func (o *Optional[K]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[K]()
		return nil
	}
	var k K
	if err := json.Unmarshal(data, &k); err != nil {
		return err
	}
	*o = Some(k)
	return nil
}

// MapOptional converts the key of o with f, keeping absence.
func MapOptional[K, L comparable](o Optional[K], f func(K) L) Optional[L] {
	if !o.ok {
		return None[L]()
	}
	return Some(f(o.key))
}

// Prop is a hovered or selected input that is either controlled by the
// chart's owner or left to the chart. The zero value is uncontrolled.
type Prop[K comparable] struct {
	value      Optional[K]
	controlled bool
}

// Controlled returns a prop whose value is owned by the caller.
// Controlled(None()) is controlled and empty, which differs from Uncontrolled.
func Controlled[K comparable](v Optional[K]) Prop[K] {
	return Prop[K]{value: v, controlled: true}
}

// Uncontrolled returns a prop whose value the chart tracks itself.
func Uncontrolled[K comparable]() Prop[K] { return Prop[K]{} }

// IsControlled reports whether the caller owns the value.
func (p Prop[K]) IsControlled() bool { return p.controlled }

// Value returns the controlled value; None for uncontrolled props.
func (p Prop[K]) Value() Optional[K] { return p.value }

// Resolve returns the effective value: the controlled value when the prop is
// controlled, otherwise local.
func (p Prop[K]) Resolve(local Optional[K]) Optional[K] {
	if p.controlled {
		return p.value
	}
	return local
}

// MapProp converts the key of a controlled prop with f.
func MapProp[K, L comparable](p Prop[K], f func(K) L) Prop[L] {
	if !p.controlled {
		return Uncontrolled[L]()
	}
	return Controlled(MapOptional(p.value, f))
}
