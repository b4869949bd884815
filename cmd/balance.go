package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
)

type balanceCmd struct {
	accountID string
	to        string
	currency  string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "set an account balance" }
func (*balanceCmd) Usage() string {
	return `pfs balance -a <account-id> -to <amount>

  Overwrites the account balance without recording any transaction. Use
  'reconcile' to also get an adjustment transaction for the difference.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountID, "a", "", "Account to update.")
	f.StringVar(&c.to, "to", "", "New balance.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the new balance.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if _, ok := svc.Account(c.accountID); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q for user %q\n", c.accountID, svc.Session().ActiveUser)
		return subcommands.ExitFailure
	}
	svc.UpdateAccountBalance(c.accountID, target)

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Balance of %s set to %s\n", c.accountID, target)
	return subcommands.ExitSuccess
}
