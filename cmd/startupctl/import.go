package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/startupkit/internal/regmerge"
	"github.com/joshuapare/startupkit/pkg/startup"
)

var importCmd = &cobra.Command{
	Use:   "import <reg-file>...",
	Short: "Apply startup entries from .reg files",
	Long: `Apply the Run-key values of one or more .reg files to the target.

String and hex(2) values in sections naming the Run key (under HKLM or HKCU,
with or without WOW6432Node) are written; "name"=- lines remove an entry.
Other sections and non-string values are reported and skipped. When several
files set or remove the same entry, the last file wins. Removals are applied
before writes and the command stops at the first failure.

Examples:
  # Restore a backup made with "startupctl export"
  startupctl import startup.reg

  # Apply a base file and a patch on a remote host
  startupctl import base.reg patch.reg --host WS042 --start-service

  # Show what would change without writing
  startupctl import --dry-run startup.reg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Print the edits without applying them")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	files := make([][]byte, 0, len(args))
	for _, regPath := range args {
		data, err := os.ReadFile(regPath)
		if err != nil {
			return fmt.Errorf("failed to read .reg file: %w", err)
		}
		files = append(files, data)
	}

	edits, stats, err := regmerge.ParseAndOptimize(files, startup.RunKeyPath, regmerge.DefaultOptimizerOptions())
	if err != nil {
		return err
	}
	for _, name := range stats.Skipped {
		printInfo("%s non-string value %q skipped\n", paint(warningStyle, "Warning:"), name)
	}
	printVerbose("%d edits from %d files (%.1f%% reduced), %d other sections ignored\n",
		stats.OutputOps, stats.Files, stats.ReductionPercent(), stats.IgnoredSections)

	if importDryRun {
		for _, e := range edits {
			if e.Delete {
				printInfo("remove %s\n", e.Name)
				continue
			}
			printInfo("set    %s = %s\n", e.Name, e.Value)
		}
		return nil
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	applied, err := s.repo.Apply(edits)
	logResult("import", err, "host", s.repo.Host(), "files", args, "applied", applied)
	if err != nil {
		return fmt.Errorf("applied %d of %d edits: %w", applied, len(edits), err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"host":    s.repo.Host(),
			"files":   args,
			"applied": applied,
			"skipped": len(stats.Skipped),
			"success": true,
		})
	}

	printInfo("%s %d edits on %s\n", paint(successStyle, "Applied"), applied, s.repo.Host())
	return nil
}
