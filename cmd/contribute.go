package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
)

type contributeCmd struct {
	goalID   string
	amount   string
	currency string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "add a contribution to a saving goal" }
func (*contributeCmd) Usage() string {
	return `pfs contribute -g <goal-id> -amount <amount>

  Adds a dated contribution to the goal and raises its current amount. A
  negative amount withdraws from the goal.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goalID, "g", "", "Goal to contribute to.")
	f.StringVar(&c.amount, "amount", "", "Amount to contribute. Negative withdraws.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the amount.")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goalID == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -g <goal-id> and -amount <amount> are required.")
		return subcommands.ExitUsageError
	}
	amount, err := finstate.ParseMoney(c.amount, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := svc.AddGoalContribution(c.goalID, amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Contributed %s to goal %s\n", amount, c.goalID)
	return subcommands.ExitSuccess
}
