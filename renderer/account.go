package renderer

import (
	"fmt"
	"strings"

	"github.com/mvezin/finstate"
)

// AccountView gathers everything the account detail screen shows: the raw
// account, its credit derivations, and the goal commitments against it.
type AccountView struct {
	Account          finstate.Account
	Utilization      finstate.Percent
	AvailableCredit  finstate.Money
	HasCredit        bool
	Commitments      finstate.Commitments
	AvailableBalance finstate.Money
}

// NewAccountView computes the derived figures for one account.
func NewAccountView(account finstate.Account, goals []finstate.Goal) *AccountView {
	v := &AccountView{Account: account}
	v.Utilization, v.HasCredit = account.CreditUtilization()
	if v.HasCredit {
		v.AvailableCredit, _ = account.AvailableCredit()
	}
	v.Commitments = finstate.AccountCommitments(goals, account.ID)
	v.AvailableBalance = account.Balance.Sub(v.Commitments.TotalCommitted)
	return v
}

// AccountMarkdown renders the account detail view to markdown.
func AccountMarkdown(v *AccountView) string {
	partials := map[string]string{
		"account_credit":      "account_credit.md",
		"account_commitments": "account_commitments.md",
	}
	return renderTemplate("account", "account.md", partials, v)
}

// Accounts renders the account list to a markdown table.
func Accounts(accounts []finstate.Account) string {
	if len(accounts) == 0 {
		return "No accounts.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Account | Type | Institution | Balance |")
	fmt.Fprintln(&b, "|---|---|---|---:|")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.Name, a.Type, a.Institution, a.Balance)
	}
	return b.String()
}
