package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
	"github.com/mvezin/finstate/date"
)

type editBudgetCmd struct {
	id       string
	category string
	limit    string
	spent    string
	currency string
	month    string
	alertAt  float64
	rollover bool
}

func (*editBudgetCmd) Name() string     { return "edit-budget" }
func (*editBudgetCmd) Synopsis() string { return "edit an existing budget" }
func (*editBudgetCmd) Usage() string {
	return `pfs edit-budget -id <budget-id> [-category <name>] [-limit <amount>] [-spent <amount>] [-month <YYYY-MM>] [-alert <percent>] [-rollover]

  Updates only the fields given on the command line. Editing an unknown id
  changes nothing.
`
}

func (c *editBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Budget to edit.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.limit, "limit", "", "New spending limit.")
	f.StringVar(&c.spent, "spent", "", "New spent amount.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the amounts.")
	f.StringVar(&c.month, "month", "", "New month (YYYY-MM).")
	f.Float64Var(&c.alertAt, "alert", 0, "New alert threshold as a percentage of the limit.")
	f.BoolVar(&c.rollover, "rollover", false, "New rollover setting.")
}

func (c *editBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id <budget-id> is required.")
		return subcommands.ExitUsageError
	}

	var update finstate.BudgetUpdate
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "category":
			update.Category = &c.category
		case "limit":
			m, err := finstate.ParseMoney(c.limit, c.currency)
			if err != nil {
				flagErr = fmt.Errorf("parsing limit: %w", err)
				return
			}
			update.Limit = &m
		case "spent":
			m, err := finstate.ParseMoney(c.spent, c.currency)
			if err != nil {
				flagErr = fmt.Errorf("parsing spent: %w", err)
				return
			}
			update.Spent = &m
		case "month":
			m, err := date.ParseMonth(c.month)
			if err != nil {
				flagErr = fmt.Errorf("parsing month: %w", err)
				return
			}
			update.Month = &m
		case "alert":
			p := finstate.Percent(c.alertAt)
			update.AlertAt = &p
		case "rollover":
			update.Rollover = &c.rollover
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", flagErr)
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	svc.EditBudget(c.id, update)

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited budget %s\n", c.id)
	return subcommands.ExitSuccess
}
