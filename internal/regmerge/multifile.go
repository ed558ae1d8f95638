package regmerge

import (
	"fmt"

	"github.com/joshuapare/startupkit/internal/regtext"
	"github.com/joshuapare/startupkit/pkg/types"
)

// ParseAndOptimize parses .reg files in order and returns the optimized
// edits for keyPath. Later files win over earlier ones.
//
// Example:
//
//	files := [][]byte{baseRegData, patchRegData}
//	edits, stats, err := ParseAndOptimize(files, startup.RunKeyPath, DefaultOptimizerOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Reduced from %d to %d edits (%.1f%% savings)\n",
//	    stats.InputOps, stats.OutputOps, stats.ReductionPercent())
func ParseAndOptimize(files [][]byte, keyPath string, opts OptimizerOptions) ([]types.Edit, Stats, error) {
	var (
		all     []types.Edit
		skipped []string
		ignored int
	)

	for i, data := range files {
		doc, err := regtext.Parse(data, keyPath)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("parse file %d: %w", i+1, err)
		}
		all = append(all, doc.Edits...)
		skipped = append(skipped, doc.Skipped...)
		ignored += doc.IgnoredSections
	}

	optimized, stats := Optimize(all, opts)
	stats.Files = len(files)
	stats.Skipped = skipped
	stats.IgnoredSections = ignored
	return optimized, stats, nil
}
