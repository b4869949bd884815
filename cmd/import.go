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

type importCmd struct {
	accountID string
	records   string
	date      string
	merchant  string
	amount    string
	category  string
	currency  string
	commit    bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSON bank export" }
func (*importCmd) Usage() string {
	return `pfs import -a <account-id> [-records <jsonpath>] [-date <jsonpath>] [-merchant <jsonpath>] [-amount <jsonpath>] [-category <jsonpath>] <file>

  Maps a JSON bank export into draft transactions. The JSONPath flags locate
  the record list and its fields; negative amounts become expenses, positive
  ones incomes. Drafts are only recorded with -commit.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	mapping := finstate.DefaultImportMapping("USD")
	f.StringVar(&c.accountID, "a", "", "Account the imported transactions belong to.")
	f.StringVar(&c.records, "records", mapping.Records, "JSONPath locating the record list in the export.")
	f.StringVar(&c.date, "date", mapping.Date, "JSONPath locating the date in one record.")
	f.StringVar(&c.merchant, "merchant", mapping.Merchant, "JSONPath locating the merchant in one record.")
	f.StringVar(&c.amount, "amount", mapping.Amount, "JSONPath locating the signed amount in one record.")
	f.StringVar(&c.category, "category", mapping.Category, "JSONPath locating the category in one record.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the imported amounts.")
	f.BoolVar(&c.commit, "commit", false, "Record the imported transactions.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountID == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -a <account-id> and exactly one export file are required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	mapping := finstate.ImportMapping{
		Records:  c.records,
		Date:     c.date,
		Merchant: c.merchant,
		Amount:   c.amount,
		Category: c.category,
		Currency: c.currency,
	}
	drafts, err := finstate.ImportDrafts(file, mapping, c.accountID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if len(drafts) == 0 {
		fmt.Println("No records found in the export.")
		return subcommands.ExitSuccess
	}

	for _, draft := range drafts {
		printMarkdown(renderer.Draft(draft))
	}

	if !c.commit {
		fmt.Printf("%d drafts not recorded. Re-run with -commit to record them.\n", len(drafts))
		return subcommands.ExitSuccess
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, draft := range drafts {
		if _, err := svc.CommitDraft(draft); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %d transactions on %s\n", len(drafts), c.accountID)
	return subcommands.ExitSuccess
}
