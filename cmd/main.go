package cmd

import "github.com/google/subcommands"

// Commands lists every subcommand of the application. A main package
// registers them all on its commander.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&accountsCmd{},
	&accountCmd{},
	&balanceCmd{},
	&reconcileCmd{},
	&txCmd{},
	&addTxCmd{},
	&editTxCmd{},
	&budgetsCmd{},
	&addBudgetCmd{},
	&editBudgetCmd{},
	&deleteBudgetCmd{},
	&goalsCmd{},
	&addGoalCmd{},
	&contributeCmd{},
	&notificationsCmd{},
	&readCmd{},
	&usersCmd{},
	&switchCmd{},
	&openCmd{},
	&importCmd{},
	&fmtCmd{},
	&assistCmd{},
	&topicCmd{},
}
