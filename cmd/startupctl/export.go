package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/startupkit/internal/regtext"
	"github.com/joshuapare/startupkit/internal/writer"
	"github.com/joshuapare/startupkit/pkg/startup"
)

var (
	exportEncoding string
	exportBOM      bool
	exportStdout   bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportEncoding, "encoding", "utf16le", "Output encoding (utf8, utf16le)")
	cmd.Flags().BoolVar(&exportBOM, "with-bom", true, "Include byte-order mark")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [output.reg]",
		Short: "Export startup entries to .reg format",
		Long: `The export command writes the merged, filtered startup entries as a .reg
file that regedit or "startupctl import" can load. REG_EXPAND_SZ entries are
written as hex(2) data.

Example:
  startupctl export startup.reg
  startupctl export startup.reg --skip default --host WS042
  startupctl export --stdout --encoding utf8 --with-bom=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	var outputPath string
	if len(args) > 0 {
		outputPath = args[0]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	// Need either output file or stdout
	if outputPath == "" && !exportStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	encoding, err := exportEncodingName(exportEncoding)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	entries, err := s.repo.List(s.skip)
	if err != nil {
		return err
	}

	data, err := regtext.Export(entries, regtext.ExportOptions{
		Section:  s.store.String() + `\` + startup.RunKeyPath,
		Encoding: encoding,
		WithBOM:  exportBOM,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if exportStdout {
		return (&writer.StreamWriter{W: os.Stdout}).WriteReg(data)
	}

	if err := (&writer.FileWriter{Path: outputPath}).WriteReg(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logResult("export", nil, "host", s.repo.Host(), "output", outputPath, "count", len(entries))

	// Output as JSON if requested and not writing to stdout
	if jsonOut {
		return printJSON(map[string]interface{}{
			"host":    s.repo.Host(),
			"output":  outputPath,
			"entries": len(entries),
			"success": true,
		})
	}

	printInfo("%s %d entries to %s\n", paint(successStyle, "Exported"), len(entries), outputPath)
	return nil
}

func exportEncodingName(s string) (string, error) {
	switch s {
	case "utf8", "UTF-8", "utf-8":
		return regtext.EncodingUTF8, nil
	case "", "utf16le", "UTF-16LE", "utf-16le":
		return regtext.EncodingUTF16LE, nil
	}
	return "", fmt.Errorf("unsupported encoding %q (want utf8 or utf16le)", s)
}
