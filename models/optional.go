// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that remembers whether it was present in the
// decoded document.
//
// encoding/json calls UnmarshalJSON only for keys that exist in the input,
// so an absent key leaves Set false. An explicit null sets both Set and Null.
type Optional[T any] struct {
	// Set reports whether the key was present in the JSON object.
	Set bool

	// Null reports whether the key was present with a JSON null value.
	Null bool

	// Value is the decoded value. It is the zero value of T when Null is true.
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements [json.Marshaler]. Unset and null values are both
// encoded as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Present reports whether the key was present and not null.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Or returns the value when present, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Present() {
		return o.Value
	}
	return fallback
}
