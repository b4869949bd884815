package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvezin/finstate/renderer"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list the active user's saving goals" }
func (*goalsCmd) Usage() string {
	return `pfs goals

  Lists saving goals with their target, current amount and progress.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := LoadService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Goals(svc.Goals()))
	return subcommands.ExitSuccess
}
