package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rvallee/teller"
	"github.com/rvallee/teller/prompt"
)

type closeCustomerCmd struct {
	customer int
	yes      bool
}

func (*closeCustomerCmd) Name() string     { return "close-customer" }
func (*closeCustomerCmd) Synopsis() string { return "delete a customer and close all accounts" }
func (*closeCustomerCmd) Usage() string {
	return `teller close-customer -customer <id> [-yes]

  Deletes a customer record. Every owned account must hold exactly zero
  and is closed along the way; the transaction history is kept. Asks
  for confirmation unless -yes is given.

Usage Examples:
$ teller close-customer -customer 1

`
}

func (p *closeCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.customer, "customer", 0, "Customer id to delete.")
	f.BoolVar(&p.yes, "yes", false, "Skip the confirmation challenge.")
}

func (p *closeCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	c, err := l.Customer(p.customer)
	if err != nil {
		return fail(err)
	}

	if !p.yes {
		confirm := prompt.New(os.Stdout, os.Stdin).
			Challenge(fmt.Sprintf("About to delete %s (customer %d) and close %d accounts.", c.Name, c.ID, len(c.AccountIDs)))
		if !confirm.Ok() || !confirm.Value {
			fmt.Fprintln(os.Stderr, "Deletion aborted.")
			return subcommands.ExitFailure
		}
	}

	if err := l.CloseCustomer(p.customer); err != nil {
		if errors.Is(err, teller.ErrCustomerHasFunds) {
			if !l.MayMoveFunds(c) {
				return fail(fmt.Errorf("customer %d still has accounts with a non-zero balance, and a savings account is locked for transfers; retry once the window expires (see 'teller topic transfer-limit')", p.customer))
			}
			return fail(fmt.Errorf("customer %d still has accounts with a non-zero balance; empty them first", p.customer))
		}
		return fail(err)
	}
	fmt.Printf("Deleted customer %d.\n", p.customer)
	return subcommands.ExitSuccess
}
