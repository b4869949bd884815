package finstate

import (
	"reflect"
	"testing"
)

func TestRecentTransactions(t *testing.T) {
	list := []Transaction{
		{ID: "t1", Date: day("2025-07-10")},
		{ID: "t2", Date: day("2025-07-12")},
		{ID: "t3", Date: day("2025-07-12")}, // same day as t2, later in sequence
		{ID: "t4", Date: day("2025-07-01")},
	}

	tests := []struct {
		name    string
		limit   int
		wantIDs []string
	}{
		{name: "all sorted descending", limit: 10, wantIDs: []string{"t2", "t3", "t1", "t4"}},
		{name: "limited", limit: 2, wantIDs: []string{"t2", "t3"}},
		{name: "zero limit", limit: 0, wantIDs: []string{}},
		{name: "negative limit", limit: -3, wantIDs: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RecentTransactions(list, tc.limit)
			gotIDs := make([]string, 0, len(got))
			for _, tx := range got {
				gotIDs = append(gotIDs, tx.ID)
			}
			if !reflect.DeepEqual(gotIDs, tc.wantIDs) {
				t.Errorf("RecentTransactions(%d) = %v, want %v", tc.limit, gotIDs, tc.wantIDs)
			}
		})
	}
}

func TestRecentTransactions_Idempotent(t *testing.T) {
	list := []Transaction{
		{ID: "t1", Date: day("2025-07-10")},
		{ID: "t2", Date: day("2025-07-12")},
		{ID: "t3", Date: day("2025-07-05")},
	}
	once := RecentTransactions(list, 3)
	twice := RecentTransactions(once, 3)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sorting twice differs from once: %v vs %v", once, twice)
	}
}

func TestRecentTransactions_DoesNotMutateInput(t *testing.T) {
	list := []Transaction{
		{ID: "t1", Date: day("2025-07-01")},
		{ID: "t2", Date: day("2025-07-02")},
	}
	before := append([]Transaction(nil), list...)
	RecentTransactions(list, 1)
	if !reflect.DeepEqual(list, before) {
		t.Errorf("input was mutated: %v", list)
	}
}

func TestCategoryTotals(t *testing.T) {
	list := []Transaction{
		{ID: "t1", Category: "groceries", Amount: EUR(10), Type: Expense, AccountID: "a"},
		{ID: "t2", Category: "groceries", Amount: EUR(5), Type: Expense, AccountID: "b"},
		{ID: "t3", Category: "dining", Amount: EUR(20), Type: Expense, AccountID: "a"},
	}

	totals := CategoryTotals(list)
	if !totals["groceries"].Equal(EUR(15)) || !totals["dining"].Equal(EUR(20)) {
		t.Errorf("totals = %v", totals)
	}

	filtered := CategoryTotals(list, ByAccount("a"))
	if !filtered["groceries"].Equal(EUR(10)) || !filtered["dining"].Equal(EUR(20)) {
		t.Errorf("filtered totals = %v", filtered)
	}
}

func TestCategoryTotals_MixedCurrencies(t *testing.T) {
	list := []Transaction{
		{ID: "t1", Category: "travel", Amount: EUR(100), Type: Expense},
		{ID: "t2", Category: "travel", Amount: USD(40), Type: Expense},
		{ID: "t3", Category: "dining", Amount: USD(25), Type: Expense},
	}

	// each category totals in its first currency; foreign amounts stay out.
	totals := CategoryTotals(list)
	if !totals["travel"].Equal(EUR(100)) {
		t.Errorf("travel = %s, want the 100 EUR total only", totals["travel"])
	}
	if !totals["dining"].Equal(USD(25)) {
		t.Errorf("dining = %s, want 25 USD", totals["dining"])
	}
}

func TestCategoryFallbacks(t *testing.T) {
	if got := CategoryColor("groceries"); got == defaultCategoryColor {
		t.Errorf("mapped category returned the fallback color")
	}
	if got := CategoryColor("llama-rental"); got != defaultCategoryColor {
		t.Errorf("unknown category color = %q, want fallback", got)
	}
	if got := CategoryEmoji("llama-rental"); got != defaultCategoryEmoji {
		t.Errorf("unknown category emoji = %q, want fallback", got)
	}
}
