package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite every profile in canonical form"
}
func (*fmtCmd) Usage() string {
	return `pfs fmt

  Reads every user profile and writes it back in canonical JSONL form:
  one record per line, fields in a fixed order, amounts unquoted.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, session, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveState(store, session); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d profiles.\n", len(store.Users()))
	return subcommands.ExitSuccess
}
