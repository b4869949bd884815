package finstate

import (
	"fmt"
	"log"
	"sort"

	"github.com/mvezin/finstate/date"
)

// TxType is a typed string identifying the direction of a transaction.
type TxType string

// Transaction types.
const (
	Expense  TxType = "expense"
	Income   TxType = "income"
	Transfer TxType = "transfer"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Expense, Income, Transfer:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction represents a single dated movement on an account.
//
// Amount is a non-negative magnitude; the direction is carried by Type.
// Recording a transaction does not adjust any account balance: balances and
// transactions are deliberately independent fields of the profile.
type Transaction struct {
	ID        string
	Date      date.Date
	Merchant  string
	Amount    Money
	Type      TxType
	Category  string
	AccountID string
}

// TransactionUpdate enumerates the fields of a transaction that may legally
// change after the fact. The id and the account it belongs to are identity
// fields and cannot be updated.
type TransactionUpdate struct {
	Date     *date.Date
	Merchant *string
	Amount   *Money
	Type     *TxType
	Category *string
}

// apply merges the set fields into tx.
func (u TransactionUpdate) apply(tx *Transaction) {
	if u.Date != nil {
		tx.Date = *u.Date
	}
	if u.Merchant != nil {
		tx.Merchant = *u.Merchant
	}
	if u.Amount != nil {
		tx.Amount = *u.Amount
	}
	if u.Type != nil {
		tx.Type = *u.Type
	}
	if u.Category != nil {
		tx.Category = *u.Category
	}
}

// DraftTransaction is a proposed transaction produced by a composite
// operation (balance reconciliation, bank-export import). It is not part of
// any collection until the caller explicitly commits it with AddTransaction.
type DraftTransaction struct {
	Date      date.Date
	Merchant  string
	Amount    Money
	Type      TxType
	Category  string
	AccountID string
}

// RecentTransactions returns the limit most recent transactions, sorted by
// date descending. Ties keep the original sequence order (the sort is
// stable), and the input slice is never modified. A negative limit selects
// nothing, like zero.
func RecentTransactions(list []Transaction, limit int) []Transaction {
	sorted := make([]Transaction, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if limit < 0 {
		limit = 0
	}
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// ByAccount returns a predicate that filters transactions by account id.
func ByAccount(accountID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AccountID == accountID }
}

// ByTxType returns a predicate that filters transactions by type.
func ByTxType(t TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// CategoryTotals sums transaction amounts per category for the transactions
// accepted by the given predicates (all transactions when none is given).
// Each category totals in the currency of its first accepted transaction;
// amounts in another currency are left out of that total, with a notice.
func CategoryTotals(list []Transaction, filters ...func(Transaction) bool) map[string]Money {
	totals := make(map[string]Money)
	for _, tx := range list {
		accept := len(filters) == 0
		for _, filter := range filters {
			if filter(tx) {
				accept = true
				break
			}
		}
		if !accept {
			continue
		}
		total := totals[tx.Category]
		if !total.Compatible(tx.Amount) {
			log.Printf("%s: leaving %s out of the %s total", tx.Category, tx.Amount, total.Currency())
			continue
		}
		totals[tx.Category] = total.Add(tx.Amount)
	}
	return totals
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("merchant", t.Merchant)
	w.Append("amount", t.Amount)
	w.Append("type", t.Type)
	w.Optional("category", t.Category)
	w.Append("account", t.AccountID)
	return w.MarshalJSON()
}
