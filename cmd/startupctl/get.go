package main

import (
	"github.com/spf13/cobra"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show value type and view")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show one startup entry",
		Long: `The get command prints the command line of one startup entry. The 32-bit
view is searched first. Names are matched case-insensitively.

Example:
  startupctl get OneDrive
  startupctl get SecurityHealth --type
  startupctl get Agent --host WS042 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	e, err := s.repo.Get(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"name":    e.Name,
			"command": e.Command,
			"type":    e.Type.String(),
			"view":    e.View.String(),
		})
	}

	if getShowType {
		printInfo("%s (%s, %s)\n", e.Command, e.Type, paint(viewStyle, e.View.String()))
		return nil
	}
	printInfo("%s\n", e.Command)
	return nil
}
