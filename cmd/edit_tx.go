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

type editTxCmd struct {
	id       string
	date     string
	merchant string
	amount   string
	currency string
	txType   string
	category string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "edit an existing transaction" }
func (*editTxCmd) Usage() string {
	return `pfs edit-tx -id <tx-id> [-date <date>] [-merchant <name>] [-amount <amount>] [-type <type>] [-category <name>]

  Updates only the fields given on the command line. The transaction id and
  its account never change. Editing an unknown id changes nothing.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to edit.")
	f.StringVar(&c.date, "date", "", "New date.")
	f.StringVar(&c.merchant, "merchant", "", "New merchant.")
	f.StringVar(&c.amount, "amount", "", "New amount, a non-negative magnitude.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the new amount.")
	f.StringVar(&c.txType, "type", "", "New type: expense, income or transfer.")
	f.StringVar(&c.category, "category", "", "New category.")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id <tx-id> is required.")
		return subcommands.ExitUsageError
	}

	// Only flags explicitly set on the command line become part of the update.
	var update finstate.TransactionUpdate
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "date":
			d, err := date.Parse(c.date)
			if err != nil {
				flagErr = fmt.Errorf("parsing date: %w", err)
				return
			}
			update.Date = &d
		case "merchant":
			update.Merchant = &c.merchant
		case "amount":
			m, err := finstate.ParseMoney(c.amount, c.currency)
			if err != nil {
				flagErr = fmt.Errorf("parsing amount: %w", err)
				return
			}
			if m.IsNegative() {
				flagErr = fmt.Errorf("invalid amount %s: must be a non-negative magnitude", m)
				return
			}
			update.Amount = &m
		case "type":
			kind, err := finstate.ParseTxType(c.txType)
			if err != nil {
				flagErr = err
				return
			}
			update.Type = &kind
		case "category":
			update.Category = &c.category
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

	svc.EditTransaction(c.id, update)

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
