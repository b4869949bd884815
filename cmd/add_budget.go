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

type addBudgetCmd struct {
	category string
	limit    string
	spent    string
	currency string
	month    string
	alertAt  float64
	rollover bool
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a budget" }
func (*addBudgetCmd) Usage() string {
	return `pfs add-budget -category <name> -limit <amount> [-month <YYYY-MM>] [-alert <percent>] [-rollover]

  Creates a budget for one category and month. The month defaults to the
  current month, the alert threshold to 80%.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category of the budget.")
	f.StringVar(&c.limit, "limit", "", "Spending limit, a positive amount.")
	f.StringVar(&c.spent, "spent", "0", "Amount already spent.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the amounts.")
	f.StringVar(&c.month, "month", "", "Month the budget covers (YYYY-MM). Current month by default.")
	f.Float64Var(&c.alertAt, "alert", 80, "Alert threshold as a percentage of the limit.")
	f.BoolVar(&c.rollover, "rollover", false, "Carry the unspent amount over to the next month.")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.limit == "" {
		fmt.Fprintln(os.Stderr, "Error: -category <name> and -limit <amount> are required.")
		return subcommands.ExitUsageError
	}
	limit, err := finstate.ParseMoney(c.limit, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing limit: %v\n", err)
		return subcommands.ExitUsageError
	}
	spent, err := finstate.ParseMoney(c.spent, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing spent: %v\n", err)
		return subcommands.ExitUsageError
	}

	input := finstate.BudgetInput{
		Category: c.category,
		Limit:    limit,
		Spent:    spent,
		AlertAt:  finstate.Percent(c.alertAt),
		Rollover: c.rollover,
	}
	if c.month != "" {
		m, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		input.Month = m
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	budget, err := svc.AddBudget(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created budget %s: %s %s, limit %s\n", budget.ID, budget.Category, budget.Month, budget.Limit)
	return subcommands.ExitSuccess
}
