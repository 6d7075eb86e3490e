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

type withdrawCmd struct {
	account int
	amount  string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `teller withdraw -account <id> -amount <amount>

  Withdraws a positive amount from the account and records the
  transaction. A savings account refuses while its 30-day transfer
  window is active, and never goes below zero; a checking account may
  go negative down to its credit limit.

Usage Examples:
$ teller withdraw -account 3 -amount 20

`
}

func (p *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.account, "account", 0, "Source account id.")
	f.StringVar(&p.amount, "amount", "", "Amount to withdraw.")
}

func (p *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tx, err := l.Withdraw(p.account, amount)
	if err != nil {
		return fail(refusal(l, p.account, err))
	}
	fmt.Println(renderer.Receipt(tx))
	return subcommands.ExitSuccess
}
