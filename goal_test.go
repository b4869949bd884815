package finstate

import "testing"

func TestAccountCommitments(t *testing.T) {
	goals := []Goal{
		{ID: "g1", Name: "Trip", AccountID: "acc-1", CurrentAmount: EUR(3000)},
		{ID: "g2", Name: "Laptop", AccountID: "acc-1", CurrentAmount: EUR(800)},
		{ID: "g3", Name: "Other", AccountID: "acc-2", CurrentAmount: EUR(999)},
		{ID: "g4", Name: "Unlinked", CurrentAmount: EUR(50)},
	}

	c := AccountCommitments(goals, "acc-1")
	if len(c.LinkedGoals) != 2 {
		t.Fatalf("linked goals = %d, want 2", len(c.LinkedGoals))
	}
	if !c.TotalCommitted.Equal(EUR(3800)) {
		t.Errorf("total committed = %s, want 3800", c.TotalCommitted)
	}

	// available balance is the caller's concern.
	account := Account{ID: "acc-1", Balance: EUR(5000)}
	if available := account.Balance.Sub(c.TotalCommitted); !available.Equal(EUR(1200)) {
		t.Errorf("available = %s, want 1200", available)
	}
}

func TestAccountCommitments_MixedCurrencies(t *testing.T) {
	goals := []Goal{
		{ID: "g1", Name: "Trip", AccountID: "acc-1", CurrentAmount: EUR(3000)},
		{ID: "g2", Name: "Laptop", AccountID: "acc-1", CurrentAmount: USD(800)},
	}

	// the foreign-currency goal stays listed but out of the total.
	c := AccountCommitments(goals, "acc-1")
	if len(c.LinkedGoals) != 2 {
		t.Fatalf("linked goals = %d, want 2", len(c.LinkedGoals))
	}
	if !c.TotalCommitted.Equal(EUR(3000)) {
		t.Errorf("total committed = %s, want the 3000 EUR amount only", c.TotalCommitted)
	}
}

func TestAccountCommitments_NoLinkedGoals(t *testing.T) {
	c := AccountCommitments([]Goal{{ID: "g1", AccountID: "other"}}, "acc-1")
	if len(c.LinkedGoals) != 0 || !c.TotalCommitted.IsZero() {
		t.Errorf("commitments for unlinked account = %+v, want empty", c)
	}
}

func TestGoalProgress(t *testing.T) {
	got, ok := Goal{TargetAmount: EUR(50000), CurrentAmount: EUR(25000)}.Progress()
	if !ok || !got.Equal(50.0) {
		t.Errorf("progress = %v ok=%v, want 50.0 true", got, ok)
	}
	if _, ok := (Goal{CurrentAmount: EUR(10)}).Progress(); ok {
		t.Error("progress reported for a goal without a target")
	}
}
