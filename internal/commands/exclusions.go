package commands

import (
	"sort"

	"github.com/temirov/trr/internal/utils"
)

var defaultExcludedDirectoryNames = []string{
	utils.NodeModulesDirectoryName,
	utils.GitDirectoryName,
	utils.VSCodeDirectoryName,
	utils.PythonCacheDirectoryName,
}

// ExclusionSet is an immutable set of entry names that are listed but never descended into.
// Matching is exact and case-sensitive against an entry's base name.
type ExclusionSet struct {
	names map[string]struct{}
}

// NewExclusionSet builds an ExclusionSet from the provided names. Empty names are dropped.
func NewExclusionSet(names ...string) ExclusionSet {
	set := ExclusionSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		set.names[name] = struct{}{}
	}
	return set
}

// DefaultExclusions returns the built-in exclusion set: dependency caches,
// version control metadata, editor settings and bytecode caches.
func DefaultExclusions() ExclusionSet {
	return NewExclusionSet(defaultExcludedDirectoryNames...)
}

// Contains reports whether name is excluded.
func (set ExclusionSet) Contains(name string) bool {
	_, excluded := set.names[name]
	return excluded
}

// Len returns the number of names in the set.
func (set ExclusionSet) Len() int {
	return len(set.names)
}

// Names returns the excluded names in lexical order.
func (set ExclusionSet) Names() []string {
	names := make([]string, 0, len(set.names))
	for name := range set.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
