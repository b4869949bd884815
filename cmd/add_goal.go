package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
)

type addGoalCmd struct {
	name      string
	emoji     string
	accountID string
	target    string
	current   string
	currency  string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a saving goal" }
func (*addGoalCmd) Usage() string {
	return `pfs add-goal -name <name> -target <amount> [-a <account-id>] [-emoji <emoji>]

  Creates a saving goal, optionally linked to the account that funds it.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal.")
	f.StringVar(&c.emoji, "emoji", "", "Emoji shown next to the goal.")
	f.StringVar(&c.accountID, "a", "", "Account funding the goal.")
	f.StringVar(&c.target, "target", "", "Target amount.")
	f.StringVar(&c.current, "current", "0", "Amount already saved.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the amounts.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.target == "" {
		fmt.Fprintln(os.Stderr, "Error: -name <name> and -target <amount> are required.")
		return subcommands.ExitUsageError
	}
	target, err := finstate.ParseMoney(c.target, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
		return subcommands.ExitUsageError
	}
	current, err := finstate.ParseMoney(c.current, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing current: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goal, err := svc.AddGoal(finstate.GoalInput{
		Name:          c.name,
		Emoji:         c.emoji,
		AccountID:     c.accountID,
		TargetAmount:  target,
		CurrentAmount: current,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created goal %s: %s, target %s\n", goal.ID, goal.Name, goal.TargetAmount)
	return subcommands.ExitSuccess
}
