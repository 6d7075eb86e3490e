package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/rvallee/teller/renderer"
)

type accountsCmd struct {
	customer int
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and balances" }
func (*accountsCmd) Usage() string {
	return `teller accounts [-customer <id>]

  Lists accounts with balances, credit limits and transfer locks. With
  -customer, shows that customer's statement only.

Usage Examples:
$ teller accounts
$ teller accounts -customer 1

`
}

func (p *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.customer, "customer", 0, "Restrict to one customer's accounts.")
}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	if p.customer != 0 {
		c, err := l.Customer(p.customer)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.Statement(c, l.AccountsOf(c), l.Now()))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Accounts(l.Accounts(), l.Now()))
	return subcommands.ExitSuccess
}
