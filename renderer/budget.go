package renderer

import (
	"fmt"
	"strings"

	"github.com/mvezin/finstate"
)

// Budgets renders the budget list to a markdown table. Budgets past their
// alert threshold are flagged.
func Budgets(budgets []finstate.Budget) string {
	if len(budgets) == 0 {
		return "No budgets.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Month | Category | Spent | Limit | Used | |")
	fmt.Fprintln(&b, "|---|---|---:|---:|---:|---|")
	for _, budget := range budgets {
		used := "-"
		if utilization, ok := budget.Utilization(); ok {
			used = utilization.String()
		}
		flag := ""
		if budget.OverAlert() {
			flag = "⚠️"
		}
		fmt.Fprintf(&b, "| %s | %s %s | %s | %s | %s | %s |\n",
			budget.Month, finstate.CategoryEmoji(budget.Category), budget.Category,
			budget.Spent, budget.Limit, used, flag)
	}
	return b.String()
}
