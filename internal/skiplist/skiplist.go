// Package skiplist computes the set of startup entry names excluded from a
// read and filters result maps against it. Matching is case-insensitive.
package skiplist

import (
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

// defaults are well-known benign startup entries.
var defaults = []string{"igfxtray", "hotkeyscmds", "persistence", "AvastUI.exe"}

// Default returns a copy of the built-in skip list.
func Default() []string {
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

// Set is a lower-cased exclusion set.
type Set map[string]struct{}

// Contains reports whether name is excluded.
func (s Set) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Resolve maps a skip source and the externally supplied names to the
// exclusion set. fileEntries is ignored unless the source reads the file.
func Resolve(source types.SkipSource, fileEntries []string) Set {
	set := make(Set)
	switch source {
	case types.SkipDefault:
		set.add(defaults)
	case types.SkipFile:
		set.add(fileEntries)
	case types.SkipDefaultWithFile:
		set.add(defaults)
		set.add(fileEntries)
	}
	return set
}

func (s Set) add(names []string) {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		s[strings.ToLower(n)] = struct{}{}
	}
}

// Filter returns a new map without the entries whose key is in set. The
// input map is not modified.
func Filter(entries map[string]string, set Set) map[string]string {
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		if set.Contains(k) {
			continue
		}
		out[k] = v
	}
	return out
}
