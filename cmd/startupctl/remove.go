package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a startup entry",
		Long: `The remove command deletes a startup entry from the 32-bit view, or from
the 64-bit view when the 32-bit view does not hold it. Removing an entry
that does not exist succeeds.

Example:
  startupctl remove Agent
  startupctl remove Agent --host WS042 --start-service`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	name := args[0]

	s, err := openSession()
	if err != nil {
		return err
	}

	err = s.repo.RemoveByKey(name)
	logResult("remove", err, "host", s.repo.Host(), "name", name)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"host":    s.repo.Host(),
			"store":   s.store.String(),
			"name":    name,
			"success": true,
		})
	}

	printInfo("%s %s on %s\n", paint(successStyle, "Removed"), name, s.repo.Host())
	return nil
}
