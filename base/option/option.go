// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package option provides a value-or-unset type for settings whose
// absence means "use the platform default", distinguishing an explicit
// zero from a value that was never given. Both fields are exported so
// options round-trip through configuration encoders as-is.
package option

// Option holds a value of type T together with whether it has been
// set. The zero Option is unset.
type Option[T any] struct {

	// Value is the held value; meaningful only when Valid is set.
	Value T

	// Valid reports whether Value has been explicitly set.
	Valid bool
}

// Set stores the given value and marks the option as set.
func (o *Option[T]) Set(v T) {
	o.Value = v
	o.Valid = true
}

// Clear marks the option as unset, keeping no value.
func (o *Option[T]) Clear() {
	var zv T
	o.Value = zv
	o.Valid = false
}

// Or returns the held value when set, and fallback otherwise.
func (o *Option[T]) Or(fallback T) T {
	if o.Valid {
		return o.Value
	}
	return fallback
}
