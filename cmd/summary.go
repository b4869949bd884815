package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the active user's dashboard" }
func (*summaryCmd) Usage() string {
	return `pfs summary

  Displays the active user's dashboard: account balances, budget alerts,
  recent transactions and unread notifications.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := renderer.NewSummary(svc.Session().ActiveUser,
		svc.Accounts(), svc.Budgets(), svc.Transactions(), svc.Notifications())
	printMarkdown(renderer.SummaryMarkdown(s))

	return subcommands.ExitSuccess
}
