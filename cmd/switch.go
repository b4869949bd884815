package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type switchCmd struct{}

func (*switchCmd) Name() string     { return "switch" }
func (*switchCmd) Synopsis() string { return "switch the active user" }
func (*switchCmd) Usage() string {
	return `pfs switch <user>

  Makes the given user active. Selections, the current screen, the assistant
  quota and the transcript all reset; the user's data is untouched.
`
}

func (c *switchCmd) SetFlags(f *flag.FlagSet) {}

func (c *switchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one user name is required.")
		return subcommands.ExitUsageError
	}

	svc, store, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := svc.SwitchUser(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveState(store, svc.Session()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Active user is now %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
