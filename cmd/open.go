package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
)

type openCmd struct {
	accountID string
	filter    string
	goalID    string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "navigate the session to a screen" }
func (*openCmd) Usage() string {
	return `pfs open <screen> [-a <account-id>] [-filter <category>] [-g <goal-id>]

  Sets the session's active screen and, optionally, its selections, in one
  step. Screens: dashboard, accounts, transactions, budgets, goals,
  notifications, assist. Selections are not checked against the data; a
  stale id simply selects nothing when the screen is rendered.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountID, "a", "", "Account to select.")
	f.StringVar(&c.filter, "filter", "", "Transaction category filter.")
	f.StringVar(&c.goalID, "g", "", "Goal to select.")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one screen name is required.")
		return subcommands.ExitUsageError
	}
	screen, err := finstate.ParseScreen(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var params finstate.NavParams
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "a":
			params.AccountID = &c.accountID
		case "filter":
			params.TransactionFilter = &c.filter
		case "g":
			params.GoalID = &c.goalID
		}
	})

	store, session, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session.Navigate(screen, params)

	if err := SaveState(store, session); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("On screen %s\n", screen)
	return subcommands.ExitSuccess
}
