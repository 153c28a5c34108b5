// Copyright (c) 2026 Book Alchemy. All rights reserved.

// Package pointer provides generic helpers for optional values such as a
// book's publication year.
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NilIfZero returns nil for the zero value of T and a pointer to v otherwise.
// It turns "absent" form values into SQL NULLs.
func NilIfZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
