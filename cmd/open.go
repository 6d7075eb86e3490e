package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rvallee/teller"
)

type openCmd struct {
	customer int
	kind     string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new account for a customer" }
func (*openCmd) Usage() string {
	return `teller open -customer <id> -type <savings|checking>

  Opens a new account and prints the allocated account id. Savings
  accounts start at zero with no pending transfer limit; checking
  accounts start at zero with the default credit limit.

Usage Examples:
$ teller open -customer 1 -type checking

`
}

func (p *openCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.customer, "customer", 0, "Owning customer id.")
	f.StringVar(&p.kind, "type", "", "Account type: savings or checking.")
}

func (p *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	var a *teller.Account
	switch p.kind {
	case "savings":
		a, err = l.OpenSavings(p.customer)
	case "checking":
		a, err = l.OpenChecking(p.customer)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown account type %q, want savings or checking.\n", p.kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Opened %s account %d for customer %d.\n", a.Kind, a.ID, p.customer)
	return subcommands.ExitSuccess
}
