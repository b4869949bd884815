package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
	"github.com/mvezin/finstate/renderer"
)

type reconcileCmd struct {
	accountID string
	to        string
	currency  string
	commit    bool
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "reconcile an account balance against a statement" }
func (*reconcileCmd) Usage() string {
	return `pfs reconcile -a <account-id> -to <amount> [-commit]

  Sets the account balance to the given amount and proposes an adjustment
  transaction for the difference. The draft is only recorded with -commit.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountID, "a", "", "Account to reconcile.")
	f.StringVar(&c.to, "to", "", "Balance reported by the bank.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the balance.")
	f.BoolVar(&c.commit, "commit", false, "Record the adjustment transaction.")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountID == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account-id> and -to <amount> are required.")
		return subcommands.ExitUsageError
	}
	target, err := finstate.ParseMoney(c.to, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	draft, err := svc.RecordBalanceAdjustment(c.accountID, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if draft.Amount.IsZero() {
		fmt.Println("Balance already matches, nothing to reconcile.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Draft(draft))

	if c.commit {
		tx, err := svc.CommitDraft(draft)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded adjustment %s\n", tx.ID)
	} else {
		fmt.Println("Draft not recorded. Re-run with -commit to record it.")
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
