package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name> <command>",
		Short: "Add or replace a startup entry",
		Long: `The set command writes a startup entry as REG_SZ in the 32-bit view,
creating the Run key if needed. An existing entry with the same name is
replaced.

Example:
  startupctl set Agent "\"C:\\Program Files\\Agent\\agent.exe\" --tray"
  startupctl set Agent "C:\\agent.exe" --store user
  startupctl set Agent "C:\\agent.exe" --host WS042 --start-service`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	name, command := args[0], args[1]

	s, err := openSession()
	if err != nil {
		return err
	}

	err = s.repo.Set(name, command)
	logResult("set", err, "host", s.repo.Host(), "name", name)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"host":    s.repo.Host(),
			"store":   s.store.String(),
			"name":    name,
			"command": command,
			"success": true,
		})
	}

	printInfo("%s %s on %s\n", paint(successStyle, "Set"), name, s.repo.Host())
	return nil
}
