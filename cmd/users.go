package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the known users" }
func (*usersCmd) Usage() string {
	return `pfs users

  Lists every user with a profile, marking the active one.
`
}

func (c *usersCmd) SetFlags(f *flag.FlagSet) {}

func (c *usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, session, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, user := range store.Users() {
		marker := " "
		if user == session.ActiveUser {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, user)
	}
	return subcommands.ExitSuccess
}
