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

type txCmd struct {
	account int
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions from the audit trail" }
func (*txCmd) Usage() string {
	return `teller tx [-account <id>] [-head <n>] [-tail <n>]

  Lists transactions, oldest first, with options for filtering and
  limiting the output. With -account, keeps only the rows touching that
  account, as source or destination.

Usage Examples:
$ teller tx -account 3 -tail 10

`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.account, "account", 0, "Only transactions touching this account.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	var transactions []teller.Transaction
	if p.account != 0 {
		transactions = l.TransactionsFor(p.account)
	} else {
		transactions = l.Transactions()
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
