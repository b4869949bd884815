package finstate

import "testing"

func TestBudgetUtilization(t *testing.T) {
	budget := Budget{Limit: EUR(18000), Spent: EUR(12400)}
	got, ok := budget.Utilization()
	if !ok {
		t.Fatal("utilization unavailable for a positive limit")
	}
	if !got.Equal(68.9) {
		t.Errorf("utilization = %v, want 68.9", got)
	}
}

func TestBudgetOverAlert(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   bool
	}{
		{name: "below threshold", budget: Budget{Limit: EUR(100), Spent: EUR(50), AlertAt: 80}, want: false},
		{name: "at threshold", budget: Budget{Limit: EUR(100), Spent: EUR(80), AlertAt: 80}, want: true},
		{name: "blown", budget: Budget{Limit: EUR(100), Spent: EUR(120), AlertAt: 80}, want: true},
		{name: "zero limit never alerts", budget: Budget{Spent: EUR(10), AlertAt: 80}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.budget.OverAlert(); got != tc.want {
				t.Errorf("OverAlert() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBudgetRemaining(t *testing.T) {
	if got := (Budget{Limit: EUR(100), Spent: EUR(120)}).Remaining(); !got.Equal(EUR(-20)) {
		t.Errorf("remaining = %s, want -20", got)
	}
}
