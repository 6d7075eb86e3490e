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

type transferCmd struct {
	from   int
	to     int
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between two accounts" }
func (*transferCmd) Usage() string {
	return `teller transfer -from <id> -to <id> -amount <amount>

  Moves a positive amount between two accounts, all-or-nothing: when
  the source refuses the withdrawal, the destination is not credited.
  One transfer transaction is recorded.

Usage Examples:
$ teller transfer -from 3 -to 7 -amount 25

`
}

func (p *transferCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.from, "from", 0, "Source account id.")
	f.IntVar(&p.to, "to", 0, "Destination account id.")
	f.StringVar(&p.amount, "amount", "", "Amount to transfer.")
}

func (p *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tx, err := l.Transfer(p.from, p.to, amount)
	if err != nil {
		return fail(refusal(l, p.from, err))
	}
	fmt.Println(renderer.Receipt(tx))
	return subcommands.ExitSuccess
}
