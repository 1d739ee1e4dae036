package util

import (
	"cmp"
	"slices"
)

// RemoveDuplicates returns a sorted copy of list without repeated elements.
func RemoveDuplicates[S ~[]E, E cmp.Ordered](list S) S {
	if len(list) == 0 {
		return S{}
	}

	result := slices.Clone(list)
	slices.Sort(result)

	return slices.Compact(result)
}
