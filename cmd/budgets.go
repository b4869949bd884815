package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate/renderer"
)

type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list the active user's budgets" }
func (*budgetsCmd) Usage() string {
	return `pfs budgets

  Lists budgets with their month, limit, spent amount and utilization.
  Budgets past their alert threshold are flagged.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Budgets(svc.Budgets()))
	return subcommands.ExitSuccess
}
