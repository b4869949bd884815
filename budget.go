package finstate

import "github.com/mvezin/finstate/date"

// Budget tracks spending against a limit for one category in one month.
//
// Limit must be strictly positive and Spent non-negative. Several budgets for
// the same (category, month) pair are tolerated and treated as independent
// envelopes; AddBudget logs a notice when it sees one.
type Budget struct {
	ID       string
	Category string
	Limit    Money
	Spent    Money
	Month    date.Month
	AlertAt  Percent // threshold in percent of the limit, 0-100
	Rollover bool
}

// BudgetUpdate enumerates the mutable fields of a budget. The id is an
// identity field and cannot be updated.
type BudgetUpdate struct {
	Category *string
	Limit    *Money
	Spent    *Money
	Month    *date.Month
	AlertAt  *Percent
	Rollover *bool
}

func (u BudgetUpdate) apply(b *Budget) {
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.Limit != nil {
		b.Limit = *u.Limit
	}
	if u.Spent != nil {
		b.Spent = *u.Spent
	}
	if u.Month != nil {
		b.Month = *u.Month
	}
	if u.AlertAt != nil {
		b.AlertAt = *u.AlertAt
	}
	if u.Rollover != nil {
		b.Rollover = *u.Rollover
	}
}

// Utilization returns spent as a percentage of the limit. Rounding beyond one
// decimal is a display concern. ok is false for a zero limit.
func (b Budget) Utilization() (Percent, bool) {
	return b.Spent.PercentOf(b.Limit)
}

// OverAlert reports whether spending has reached the alert threshold.
func (b Budget) OverAlert() bool {
	utilization, ok := b.Utilization()
	return ok && utilization >= b.AlertAt
}

// Remaining returns the unspent part of the budget. It may be negative when
// the budget is blown.
func (b Budget) Remaining() Money {
	return b.Limit.Sub(b.Spent)
}

func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("category", b.Category)
	w.Append("limit", b.Limit)
	w.Append("spent", b.Spent)
	w.Append("month", b.Month)
	w.Optional("alertAt", float64(b.AlertAt))
	w.Optional("rollover", b.Rollover)
	return w.MarshalJSON()
}
