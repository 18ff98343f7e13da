package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first largest element, or -1 for an empty slice.
func ArgMax[T constraints.Ordered](slice []T) int {
	best := -1
	for i, v := range slice {
		if best < 0 || v > slice[best] {
			best = i
		}
	}
	return best
}
