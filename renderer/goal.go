package renderer

import (
	"fmt"
	"strings"

	"github.com/mvezin/finstate"
)

// Goals renders the goal list to a markdown table.
func Goals(goals []finstate.Goal) string {
	if len(goals) == 0 {
		return "No goals.\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Goal | Saved | Target | Progress |")
	fmt.Fprintln(&b, "|---|---:|---:|---:|")
	for _, g := range goals {
		progress := "-"
		if p, ok := g.Progress(); ok {
			progress = p.String()
		}
		fmt.Fprintf(&b, "| %s %s | %s | %s | %s |\n",
			g.Emoji, g.Name, g.CurrentAmount, g.TargetAmount, progress)
	}
	return b.String()
}
