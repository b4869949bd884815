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

type txCmd struct {
	category  string
	accountID string
	txType    string
	limit     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the active user's transactions" }
func (*txCmd) Usage() string {
	return `pfs tx [-category <name>] [-a <account-id>] [-type <type>] [-n <limit>]

  Lists transactions, most recent first, with optional filters.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "category", "", "Only transactions of this category.")
	f.StringVar(&p.accountID, "a", "", "Only transactions of this account.")
	f.StringVar(&p.txType, "type", "", "Only transactions of this type (expense, income, transfer).")
	f.IntVar(&p.limit, "n", 0, "Show only the N most recent transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions := svc.Transactions()

	var keep []func(finstate.Transaction) bool
	if p.category != "" {
		keep = append(keep, finstate.ByCategory(p.category))
	}
	if p.accountID != "" {
		keep = append(keep, finstate.ByAccount(p.accountID))
	}
	if p.txType != "" {
		kind, err := finstate.ParseTxType(p.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		keep = append(keep, finstate.ByTxType(kind))
	}
	if len(keep) > 0 {
		var filtered []finstate.Transaction
	next:
		for _, tx := range transactions {
			for _, accept := range keep {
				if !accept(tx) {
					continue next
				}
			}
			filtered = append(filtered, tx)
		}
		transactions = filtered
	}

	if p.limit > 0 {
		transactions = finstate.RecentTransactions(transactions, p.limit)
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
