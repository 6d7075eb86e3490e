package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/rvallee/teller/renderer"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list all customers" }
func (*customersCmd) Usage() string {
	return `teller customers

  Lists every customer with the accounts they own.
`
}

func (*customersCmd) SetFlags(f *flag.FlagSet) {}

func (*customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	printMarkdown(renderer.Customers(l.Customers()))
	return subcommands.ExitSuccess
}
