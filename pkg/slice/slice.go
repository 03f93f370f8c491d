// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the generic
conversions the catalog needs between its record types, ids, and rule values.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
// A nil input yields an empty, non-nil slice.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Any widens a typed slice to []any, the shape variadic rule constructors such as
// validation.In expect.
func Any[T any](input []T) []any {
	return Map(input, func(v T) any { return v })
}
