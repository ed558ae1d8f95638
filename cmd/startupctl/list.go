package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/startupkit/pkg/types"
)

var (
	listView     string
	listShowView bool
)

func init() {
	cmd := newListCmd()
	cmd.Flags().StringVar(&listView, "view", "", "Read a single registry view (32 or 64) without merging or filtering")
	cmd.Flags().BoolVar(&listShowView, "show-view", false, "Show the view each entry was read from")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List startup entries",
		Long: `The list command prints the startup entries of the target, merged across the
32-bit and 64-bit views and filtered by the skip source.

Example:
  startupctl list
  startupctl list --skip default
  startupctl list --host WS042 --start-service --json
  startupctl list --view 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var entries []types.Entry
	if listView != "" {
		view, err := parseView(listView)
		if err != nil {
			return err
		}
		byName, err := s.repo.ReadView(view)
		if err != nil {
			return err
		}
		for name, command := range byName {
			entries = append(entries, types.Entry{Name: name, Command: command, View: view})
		}
	} else {
		entries, err = s.repo.List(s.skip)
		if err != nil {
			return err
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	logResult("list", nil, "host", s.repo.Host(), "count", len(entries))

	if jsonOut {
		if entries == nil {
			entries = []types.Entry{}
		}
		return printJSON(entries)
	}

	if len(entries) == 0 {
		printInfo("No startup entries on %s\n", s.repo.Host())
		return nil
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		line := paint(nameStyle, fmt.Sprintf("%-*s", width, e.Name)) + "  " + e.Command
		if listShowView {
			line += "  " + paint(viewStyle, "("+e.View.String()+")")
		}
		printInfo("%s\n", line)
	}
	printVerbose("%d entries\n", len(entries))
	return nil
}

func parseView(s string) (types.View, error) {
	switch strings.TrimSuffix(strings.ToLower(s), "-bit") {
	case "32":
		return types.View32, nil
	case "64":
		return types.View64, nil
	}
	return 0, &types.Error{Kind: types.ErrKindArgument, Msg: fmt.Sprintf("unknown view %q (want 32 or 64)", s)}
}
