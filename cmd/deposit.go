package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rvallee/teller"
	"github.com/rvallee/teller/renderer"
)

type depositCmd struct {
	account int
	amount  string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `teller deposit -account <id> -amount <amount>

  Deposits a positive amount into the account and records the
  transaction. Deposits are always accepted, even on a savings account
  whose transfer limit is active.

Usage Examples:
$ teller deposit -account 3 -amount 50

`
}

func (p *depositCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.account, "account", 0, "Target account id.")
	f.StringVar(&p.amount, "amount", "", "Amount to deposit.")
}

func (p *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := teller.ParseAmount(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not an amount.\n", p.amount)
		return subcommands.ExitUsageError
	}

	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	tx, err := l.Deposit(p.account, amount)
	if err != nil {
		return fail(refusal(l, p.account, err))
	}
	fmt.Println(renderer.Receipt(tx))
	return subcommands.ExitSuccess
}
