package finstate

import (
	"log"

	"github.com/mvezin/finstate/date"
)

// Contribution is one dated payment toward a goal. A negative amount is a
// withdrawal against the goal.
type Contribution struct {
	Date   date.Date `json:"date"`
	Amount Money     `json:"amount"`
}

// Goal represents a saving goal, optionally earmarked against an account.
//
// CurrentAmount always equals the seed amount the goal was created with plus
// the sum of all contributions; AddGoalContribution maintains that invariant.
type Goal struct {
	ID            string
	Name          string
	Emoji         string
	AccountID     string // optional link to the funding account
	TargetAmount  Money
	CurrentAmount Money
	Contributions []Contribution
}

// Progress returns the funded part of the goal as a percentage of the
// target. ok is false for a zero target.
func (g Goal) Progress() (Percent, bool) {
	return g.CurrentAmount.PercentOf(g.TargetAmount)
}

// Commitments describes the part of an account balance earmarked by goals.
type Commitments struct {
	LinkedGoals    []Goal
	TotalCommitted Money
}

// AccountCommitments collects the goals linked to the given account and the
// total amount they have earmarked. Subtracting TotalCommitted from the
// account balance is left to the caller, so the function stays usable for
// display-only accounts with no balance concept.
//
// A linked goal kept in another currency stays listed but is left out of
// TotalCommitted, with a notice.
func AccountCommitments(goals []Goal, accountID string) Commitments {
	var c Commitments
	for _, g := range goals {
		if g.AccountID != accountID {
			continue
		}
		c.LinkedGoals = append(c.LinkedGoals, g)
		if !c.TotalCommitted.Compatible(g.CurrentAmount) {
			log.Printf("%s: leaving goal %q (%s) out of the %s committed total", accountID, g.Name, g.CurrentAmount, c.TotalCommitted.Currency())
			continue
		}
		c.TotalCommitted = c.TotalCommitted.Add(g.CurrentAmount)
	}
	return c
}

func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Optional("emoji", g.Emoji)
	w.Optional("accountId", g.AccountID)
	w.Append("targetAmount", g.TargetAmount)
	w.Append("currentAmount", g.CurrentAmount)
	if len(g.Contributions) > 0 {
		w.Append("contributions", g.Contributions)
	}
	return w.MarshalJSON()
}
