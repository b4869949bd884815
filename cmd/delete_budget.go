package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteBudgetCmd struct {
	id string
}

func (*deleteBudgetCmd) Name() string     { return "delete-budget" }
func (*deleteBudgetCmd) Synopsis() string { return "delete a budget" }
func (*deleteBudgetCmd) Usage() string {
	return `pfs delete-budget -id <budget-id>

  Removes the budget. Deleting an unknown id changes nothing.
`
}

func (c *deleteBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Budget to delete.")
}

func (c *deleteBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id <budget-id> is required.")
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	svc.DeleteBudget(c.id)

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted budget %s\n", c.id)
	return subcommands.ExitSuccess
}
