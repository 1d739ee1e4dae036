// Package module holds module identifiers and the requests that enable or disable them.
package module

import (
	"maps"
	"slices"
)

// Set is an unordered set of module identifiers. The zero value is not usable, use NewSet.
type Set map[string]struct{}

// NewSet returns a set holding the given ids.
func NewSet(ids ...string) Set {
	set := make(Set, len(ids))
	set.Add(ids...)

	return set
}

// Add inserts the ids into the set.
func (set Set) Add(ids ...string) {
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// AddSet inserts every id of other.
func (set Set) AddSet(other Set) {
	for id := range other {
		set[id] = struct{}{}
	}
}

// Remove deletes the ids from the set.
func (set Set) Remove(ids ...string) {
	for _, id := range ids {
		delete(set, id)
	}
}

// RemoveSet deletes every id of other.
func (set Set) RemoveSet(other Set) {
	for id := range other {
		delete(set, id)
	}
}

func (set Set) Contains(id string) bool {
	_, ok := set[id]
	return ok
}

func (set Set) Len() int {
	return len(set)
}

// Clone returns an independent copy.
func (set Set) Clone() Set {
	if set == nil {
		return NewSet()
	}

	return maps.Clone(set)
}

// Sorted returns the ids in lexical order.
func (set Set) Sorted() []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
