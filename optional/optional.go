// Package optional provides a generic tri-state field value for
// partial-update payloads. A Value distinguishes three states the wire
// format must keep apart: absent, present-but-null, and present-with-value.
//
// Update shapes declare their fields as Value[T] with the ",omitzero" wire
// tag so that absent fields never reappear on re-serialization:
//
//	type ManufacturerUpdate struct {
//	    Applicant optional.Value[string] `json:"applicant,omitzero"`
//	}
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a tri-state field: absent, null, or set to a value of type T.
// The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
	null    bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// Null returns a present Value holding an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{present: true, null: true}
}

// Present reports whether the field appeared in the payload at all,
// whether as a value or an explicit null.
func (v Value[T]) Present() bool {
	return v.present
}

// IsNull reports whether the field was explicitly set to null.
func (v Value[T]) IsNull() bool {
	return v.present && v.null
}

// Get returns the held value and true when the field is present and
// non-null.
func (v Value[T]) Get() (T, bool) {
	if !v.present || v.null {
		var zero T
		return zero, false
	}
	return v.value, true
}

// MustGet returns the held value, panicking on absent or null fields.
// Intended for tests and call sites that already checked Present.
func (v Value[T]) MustGet() T {
	got, ok := v.Get()
	if !ok {
		panic("optional: MustGet on absent or null value")
	}
	return got
}

// IsZero reports whether the field is absent. encoding/json consults this
// for ",omitzero" tags, which is what keeps absent fields off the wire.
func (v Value[T]) IsZero() bool {
	return !v.present
}

// MarshalJSON emits null for explicit nulls and the encoded value
// otherwise. Absent values are kept off the wire by ",omitzero"; a Value
// marshaled directly without the tag encodes as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.present || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON marks the field present; encoding/json only calls it for
// keys that appear in the payload, so absence survives decoding.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = Null[T]()
		return nil
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*v = Of(decoded)
	return nil
}
