package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type readCmd struct {
	id  string
	all bool
}

func (*readCmd) Name() string     { return "read" }
func (*readCmd) Synopsis() string { return "mark notifications as read" }
func (*readCmd) Usage() string {
	return `pfs read -id <notification-id> | -all

  Marks one notification, or all of them, as read. Marking an unknown id
  changes nothing.
`
}

func (c *readCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Notification to mark as read.")
	f.BoolVar(&c.all, "all", false, "Mark every notification as read.")
}

func (c *readCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" && !c.all {
		fmt.Fprintln(os.Stderr, "Error: one of -id <notification-id> or -all is required.")
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.all {
		svc.MarkAllRead()
	} else {
		svc.MarkNotificationRead(c.id)
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
