package renderer

import "github.com/mvezin/finstate"

// Summary gathers the dashboard figures for one user.
type Summary struct {
	User     string
	Accounts []finstate.Account
	Alerts   []finstate.Budget
	Recent   []finstate.Transaction
	Unread   int
}

// NewSummary derives the dashboard view from the active user's collections.
func NewSummary(user string, accounts []finstate.Account, budgets []finstate.Budget,
	transactions []finstate.Transaction, notifications []finstate.Notification) *Summary {

	s := &Summary{
		User:     user,
		Accounts: accounts,
		Recent:   finstate.RecentTransactions(transactions, 5),
		Unread:   finstate.UnreadCount(notifications),
	}
	for _, b := range budgets {
		if b.OverAlert() {
			s.Alerts = append(s.Alerts, b)
		}
	}
	return s
}

// SummaryMarkdown renders the dashboard to markdown.
func SummaryMarkdown(s *Summary) string {
	partials := map[string]string{
		"summary_accounts": "summary_accounts.md",
		"summary_alerts":   "summary_alerts.md",
		"summary_recent":   "summary_recent.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
