package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate"
	"github.com/mvezin/finstate/date"
	"github.com/mvezin/finstate/renderer"
)

type addTxCmd struct {
	date      string
	merchant  string
	amount    string
	currency  string
	txType    string
	category  string
	accountID string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a new transaction" }
func (*addTxCmd) Usage() string {
	return `pfs add-tx -a <account-id> -merchant <name> -amount <amount> [-type <type>] [-category <name>] [-date <date>]

  Records a transaction for the active user. The amount is a non-negative
  magnitude; the type (expense by default) carries the direction. Account
  balances are not touched.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of the transaction. Today by default.")
	f.StringVar(&c.merchant, "merchant", "", "Merchant or counterparty.")
	f.StringVar(&c.amount, "amount", "", "Amount, a non-negative magnitude.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the amount.")
	f.StringVar(&c.txType, "type", "expense", "Type: expense, income or transfer.")
	f.StringVar(&c.category, "category", "", "Spending category.")
	f.StringVar(&c.accountID, "a", "", "Account the transaction belongs to.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountID == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account-id> and -amount <amount> are required.")
		return subcommands.ExitUsageError
	}
	amount, err := finstate.ParseMoney(c.amount, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	input := finstate.TransactionInput{
		Merchant:  c.merchant,
		Amount:    amount,
		Type:      finstate.TxType(c.txType),
		Category:  c.category,
		AccountID: c.accountID,
	}
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		input.Date = d
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := svc.AddTransaction(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
