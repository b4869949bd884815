package renderer

import (
	"fmt"
	"strings"

	"github.com/mvezin/finstate"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx finstate.Transaction) string {
	switch tx.Type {
	case finstate.Income:
		return fmt.Sprintf("Received %s from %s", tx.Amount, tx.Merchant)
	case finstate.Transfer:
		return fmt.Sprintf("Transferred %s (%s)", tx.Amount, tx.Merchant)
	default:
		return fmt.Sprintf("Spent %s at %s", tx.Amount, tx.Merchant)
	}
}

// Transactions renders a list of transactions to a markdown table, in the
// order given.
func Transactions(txs []finstate.Transaction) string {
	if len(txs) == 0 {
		return "No transactions.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Date | Merchant | Category | Type | Amount |")
	fmt.Fprintln(&b, "|---|---|---|---|---:|")
	for _, tx := range txs {
		amount := tx.Amount.String()
		if tx.Type == finstate.Expense {
			amount = "-" + amount
		}
		fmt.Fprintf(&b, "| %s | %s | %s %s | %s | %s |\n",
			tx.Date, tx.Merchant, finstate.CategoryEmoji(tx.Category), tx.Category, tx.Type, amount)
	}
	return b.String()
}

// Draft renders a draft transaction with an explicit reminder that it is not
// committed yet.
func Draft(draft finstate.DraftTransaction) string {
	return fmt.Sprintf("Draft %s of %s at %q in %s (not committed)",
		draft.Type, draft.Amount, draft.Merchant, draft.Category)
}
