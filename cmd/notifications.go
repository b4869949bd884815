package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate/renderer"
)

type notificationsCmd struct{}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "list the active user's notifications" }
func (*notificationsCmd) Usage() string {
	return `pfs notifications

  Lists notifications, unread ones first flagged with a dot.
`
}

func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *notificationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Notifications(svc.Notifications()))
	return subcommands.ExitSuccess
}
