package regmerge

import (
	"strings"

	"github.com/joshuapare/startupkit/pkg/types"
)

// Optimize reduces a list of edits to the minimal list with the same effect.
//
// Edits are scanned right to left so the first occurrence of a name is the
// one that wins (last-write-wins). Names compare case-insensitively, the way
// the registry compares value names.
//
// Example:
//
//	edits := []types.Edit{
//	    {Name: "Agent", Value: "v1"},
//	    {Name: "agent", Value: "v2"},
//	}
//	optimized, stats := Optimize(edits, DefaultOptimizerOptions())
//	// optimized: [{Name: "agent", Value: "v2"}], stats.DedupedSet == 1
func Optimize(edits []types.Edit, opts OptimizerOptions) ([]types.Edit, Stats) {
	stats := Stats{InputOps: len(edits)}

	if len(edits) == 0 {
		return edits, stats
	}

	optimized := edits
	if opts.EnableDedup {
		optimized, stats = dedup(edits, stats)
	}
	if opts.EnableOrdering && opts.EnableDedup {
		optimized = orderEdits(optimized)
	}

	stats.OutputOps = len(optimized)
	return optimized, stats
}

func dedup(edits []types.Edit, stats Stats) ([]types.Edit, Stats) {
	kept := make(map[string]bool, len(edits))
	result := make([]types.Edit, 0, len(edits))

	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		key := strings.ToLower(e.Name)
		if kept[key] {
			if e.Delete {
				stats.DedupedDelete++
			} else {
				stats.DedupedSet++
			}
			continue
		}
		kept[key] = true
		result = append(result, e)
	}

	// built backwards
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, stats
}

// orderEdits puts removals first. The input must hold each name once.
func orderEdits(edits []types.Edit) []types.Edit {
	out := make([]types.Edit, 0, len(edits))
	for _, e := range edits {
		if e.Delete {
			out = append(out, e)
		}
	}
	for _, e := range edits {
		if !e.Delete {
			out = append(out, e)
		}
	}
	return out
}
