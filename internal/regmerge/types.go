package regmerge

// OptimizerOptions controls how parsed edits are reduced before they are
// applied.
type OptimizerOptions struct {
	// EnableDedup keeps only the last edit per entry name (case-insensitive).
	// Example: set Agent=a1, set AGENT=a2 → keep only the second.
	// Default: true
	EnableDedup bool

	// EnableOrdering moves removals ahead of writes. File order is kept
	// within each group. It has no effect without EnableDedup.
	// Default: true
	EnableOrdering bool
}

// DefaultOptimizerOptions returns the settings used by import.
func DefaultOptimizerOptions() OptimizerOptions {
	return OptimizerOptions{
		EnableDedup:    true,
		EnableOrdering: true,
	}
}

// Stats describes what parsing and optimization did.
type Stats struct {
	// Files is the number of .reg files parsed.
	Files int

	// InputOps is the number of edits before optimization.
	InputOps int

	// OutputOps is the number of edits after optimization.
	OutputOps int

	// DedupedSet counts writes overridden by a later edit of the same name.
	DedupedSet int

	// DedupedDelete counts removals overridden by a later edit of the same
	// name.
	DedupedDelete int

	// Skipped lists non-string values left out, across all files.
	Skipped []string

	// IgnoredSections counts sections for other keys, across all files.
	IgnoredSections int
}

// ReductionPercent returns the percentage of edits eliminated.
func (s Stats) ReductionPercent() float64 {
	if s.InputOps == 0 {
		return 0
	}
	return float64(s.InputOps-s.OutputOps) / float64(s.InputOps) * 100
}
