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
	return "validates and rewrites the ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `teller fmt

  Validates and formats the three ledger files. Records are sorted by
  id and rewritten one per line; comments and lines that fail
  validation are dropped.

Usage Examples:
$ teller fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	if err := l.Format(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted %d customers, %d accounts, %d transactions.\n",
		len(l.Customers()), len(l.Accounts()), len(l.Transactions()))
	return subcommands.ExitSuccess
}
