package slx

import (
	"slices"
)

func One[T any](v T) []T {
	return []T{v}
}

func SortedKeys[K comparable, V any](values map[K]V, cmp func(K, K) int) []K {
	keys := make([]K, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp)
	return keys
}
