package features

import (
	"maps"
	"slices"
)

// Set is a set of feature names.
type Set map[string]struct{}

// Add inserts names into the set.
func (s Set) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// Remove deletes names from the set. Absent names are ignored.
func (s Set) Remove(names ...string) {
	for _, name := range names {
		delete(s, name)
	}
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending byte order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
