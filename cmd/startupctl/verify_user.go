package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/startupkit/pkg/usercheck"
)

var errUserMismatch = errors.New("observed user does not match the current account")

var verifyObserved string

func init() {
	cmd := newVerifyUserCmd()
	cmd.Flags().StringVar(&verifyObserved, "observed", "", "Username reported by the external probe (empty means none)")
	rootCmd.AddCommand(cmd)
}

func newVerifyUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-user",
		Short: "Compare an observed username with the current account",
		Long: `The verify-user command compares a username read by an external probe,
such as a scraped status page, with the account startupctl runs as. Only
the part after the last backslash of the account is compared, case-sensitively.
A mismatch, or no observed name, exits with status 3.

Example:
  startupctl verify-user --observed alice
  startupctl verify-user --observed "$(scrape-user)" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerifyUser(args)
		},
	}
	return cmd
}

func runVerifyUser(args []string) error {
	id, err := identity()
	if err != nil {
		return err
	}

	matched := true
	var expected string
	observed := usercheck.Check(usercheck.Static(verifyObserved), id.Account, func(_, want string) {
		matched = false
		expected = want
	})
	if matched {
		expected = usercheck.AccountName(id.Account)
	}
	logResult("verify-user", nil, "account", id.Account, "observed", observed, "match", matched)

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"account":  id.Account,
			"expected": expected,
			"observed": observed,
			"match":    matched,
		}); err != nil {
			return err
		}
	} else if matched {
		printInfo("%s %s\n", paint(successStyle, "Match:"), observed)
	} else {
		printInfo("%s observed %q, expected %q\n", paint(errorStyle, "Mismatch:"), observed, expected)
	}

	if !matched {
		return errUserMismatch
	}
	return nil
}
