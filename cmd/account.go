package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate/renderer"
)

type accountCmd struct {
	accountID string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "show one account in detail" }
func (*accountCmd) Usage() string {
	return `pfs account -a <account-id>

  Shows one account in detail: balance, credit figures for credit cards, and
  the saving goals committed against it.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountID, "a", "", "Account to show.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountID == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account-id> is required.")
		return subcommands.ExitUsageError
	}

	svc, _, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	account, ok := svc.Account(c.accountID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q for user %q\n", c.accountID, svc.Session().ActiveUser)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AccountMarkdown(renderer.NewAccountView(account, svc.Goals())))
	return subcommands.ExitSuccess
}
