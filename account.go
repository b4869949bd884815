package finstate

import (
	"fmt"

	"github.com/mvezin/finstate/date"
)

// AccountType is a typed string identifying the kind of an account.
type AccountType string

// Account types.
const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Cash       AccountType = "cash"
	CreditCard AccountType = "credit_card"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, Cash, CreditCard:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account represents a single financial account owned by a user.
//
// Balance is signed: credit card accounts conventionally carry their debt as
// a negative balance. The credit fields (CreditLimit, StatementBalance,
// MinPaymentDue, PaymentDueDate) are only meaningful for credit_card
// accounts and stay zero for the others.
type Account struct {
	ID            string
	Name          string
	Type          AccountType
	Institution   string
	Balance       Money
	BrandColor    string
	LastSynced    string
	AccountNumber string

	CreditLimit      Money
	StatementBalance Money
	MinPaymentDue    Money
	PaymentDueDate   date.Date
}

// CreditUtilization returns the statement balance as a percentage of the
// credit limit, rounded to one decimal. It returns ok=false when the account
// has no credit limit: the absence of a limit is a normal state for
// non-credit accounts, not an error.
func (a Account) CreditUtilization() (Percent, bool) {
	return a.StatementBalance.PercentOf(a.CreditLimit)
}

// AvailableCredit returns the remaining credit on the account, with the same
// guard as CreditUtilization.
func (a Account) AvailableCredit() (Money, bool) {
	if a.CreditLimit.IsZero() {
		return Money{}, false
	}
	return a.CreditLimit.Sub(a.StatementBalance), true
}

func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Optional("institution", a.Institution)
	w.Append("balance", a.Balance)
	w.Optional("brandColor", a.BrandColor)
	w.Optional("lastSynced", a.LastSynced)
	w.Optional("accountNumber", a.AccountNumber)
	if !a.CreditLimit.IsZero() {
		w.Append("creditLimit", a.CreditLimit)
		w.Append("statementBalance", a.StatementBalance)
		w.Optional("minPaymentDue", a.MinPaymentDue)
		if !a.PaymentDueDate.IsZero() {
			w.Append("paymentDueDate", a.PaymentDueDate)
		}
	}
	return w.MarshalJSON()
}
