package renderer

import (
	"strings"
	"testing"

	"github.com/mvezin/finstate"
	"github.com/mvezin/finstate/date"
)

func eur(v float64) finstate.Money { return finstate.M(v, "EUR") }

func TestTransactions(t *testing.T) {
	got := Transactions([]finstate.Transaction{
		{Date: date.MustParse("2025-07-10"), Merchant: "Bakery", Amount: eur(4.5), Type: finstate.Expense, Category: "groceries"},
		{Date: date.MustParse("2025-07-11"), Merchant: "Acme", Amount: eur(2500), Type: finstate.Income, Category: "salary"},
	})
	for _, want := range []string{"Bakery", "Acme", "groceries", "2025-07-10"} {
		if !strings.Contains(got, want) {
			t.Errorf("table misses %q:\n%s", want, got)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	if got := Transactions(nil); !strings.Contains(got, "No transactions") {
		t.Errorf("empty table = %q", got)
	}
}

func TestAccountMarkdown_CreditCard(t *testing.T) {
	account := finstate.Account{
		ID: "acc-2", Name: "Platinum", Type: finstate.CreditCard, Institution: "Meridian",
		Balance: eur(-1234), CreditLimit: eur(5000), StatementBalance: eur(1234),
	}
	goals := []finstate.Goal{{ID: "g1", Name: "Trip", AccountID: "acc-2", CurrentAmount: eur(300)}}

	got := AccountMarkdown(NewAccountView(account, goals))
	for _, want := range []string{"Platinum", "24.7%", "Utilization", "Trip", "Total committed"} {
		if !strings.Contains(got, want) {
			t.Errorf("account view misses %q:\n%s", want, got)
		}
	}
}

func TestAccountMarkdown_NoCreditSection(t *testing.T) {
	account := finstate.Account{ID: "acc-1", Name: "Everyday", Type: finstate.Checking, Balance: eur(500)}
	got := AccountMarkdown(NewAccountView(account, nil))
	if strings.Contains(got, "Utilization") {
		t.Errorf("credit section rendered for a checking account:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	summary := NewSummary("lena",
		[]finstate.Account{{Name: "Everyday", Type: finstate.Checking, Balance: eur(500)}},
		[]finstate.Budget{{Category: "dining", Limit: eur(100), Spent: eur(90), AlertAt: 80}},
		[]finstate.Transaction{{Date: date.MustParse("2025-07-10"), Merchant: "Bakery", Amount: eur(4.5), Type: finstate.Expense}},
		[]finstate.Notification{{ID: "n1"}},
	)
	got := SummaryMarkdown(summary)
	for _, want := range []string{"Dashboard for lena", "Everyday", "Budget alerts", "dining", "Bakery", "1 unread"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
}

func TestBudgetsFlagsAlerts(t *testing.T) {
	got := Budgets([]finstate.Budget{
		{Category: "dining", Limit: eur(100), Spent: eur(90), AlertAt: 80, Month: date.MustParseMonth("2025-07")},
		{Category: "transport", Limit: eur(100), Spent: eur(10), AlertAt: 80, Month: date.MustParseMonth("2025-07")},
	})
	lines := strings.Split(got, "\n")
	var diningLine, transportLine string
	for _, line := range lines {
		if strings.Contains(line, "dining") {
			diningLine = line
		}
		if strings.Contains(line, "transport") {
			transportLine = line
		}
	}
	if !strings.Contains(diningLine, "⚠️") {
		t.Errorf("budget past threshold not flagged: %q", diningLine)
	}
	if strings.Contains(transportLine, "⚠️") {
		t.Errorf("healthy budget flagged: %q", transportLine)
	}
}
