package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/rvallee/teller"
)

type closeAccountCmd struct {
	account int
}

func (*closeAccountCmd) Name() string     { return "close-account" }
func (*closeAccountCmd) Synopsis() string { return "close an empty account" }
func (*closeAccountCmd) Usage() string {
	return `teller close-account -account <id>

  Closes an account and detaches it from its owner. The balance must be
  exactly zero: transfer any remainder away, or settle any debt, first.
  The account's transaction history is kept.

Usage Examples:
$ teller close-account -account 3

`
}

func (p *closeAccountCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.account, "account", 0, "Account id to close.")
}

func (p *closeAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	if err := l.CloseAccount(p.account); err != nil {
		if errors.Is(err, teller.ErrAccountNotEmpty) {
			if a, aerr := l.Account(p.account); aerr == nil {
				return fail(fmt.Errorf("account %d still holds %s; empty it before closing", p.account, a.Balance.Display()))
			}
		}
		return fail(err)
	}
	fmt.Printf("Closed account %d.\n", p.account)
	return subcommands.ExitSuccess
}
