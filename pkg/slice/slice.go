// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the generic
helpers used to move domain enums in and out of plain strings: registry
listings, TEXT[] columns and query parameters.
*/
package slice

// Map applies transform to every element. A nil input stays nil.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Unique drops repeated elements, keeping first occurrences in order. The
// result is never nil, so it encodes as [] rather than null.
func Unique[T comparable](input []T) []T {
	result := make([]T, 0, len(input))
	seen := make(map[T]struct{}, len(input))
	for _, v := range input {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
