// Package cmd implements the CLI application to run the bank teller.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rvallee/teller"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "session")

	c.Register(&registerCmd{}, "operations")
	c.Register(&openCmd{}, "operations")
	c.Register(&depositCmd{}, "operations")
	c.Register(&withdrawCmd{}, "operations")
	c.Register(&transferCmd{}, "operations")
	c.Register(&closeAccountCmd{}, "operations")
	c.Register(&closeCustomerCmd{}, "operations")

	c.Register(&customersCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var customersFile = flag.String("customers-file", teller.DefaultCustomersFile, "Path to the customers file")
var accountsFile = flag.String("accounts-file", teller.DefaultAccountsFile, "Path to the accounts file")
var transactionsFile = flag.String("transactions-file", teller.DefaultTransactionsFile, "Path to the transactions file")
var debug = flag.Bool("debug", false, "Work on shadow copies of the ledger files, removed on exit")

// appConfig assembles the ledger configuration from the global flags.
func appConfig() teller.Config {
	return teller.Config{
		CustomersPath:    *customersFile,
		AccountsPath:     *accountsFile,
		TransactionsPath: *transactionsFile,
		NonDestructive:   *debug,
	}
}

// openLedger opens the ledger over the configured files, creating
// missing ones empty.
func openLedger() (*teller.Ledger, error) {
	l, err := teller.Open(appConfig())
	if err != nil {
		return nil, fmt.Errorf("could not open the ledger: %w", err)
	}
	return l, nil
}

// fail prints the message and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// refusal rewords a domain error into what a teller would tell the
// customer, naming the days left on a locked savings account.
func refusal(l *teller.Ledger, accountID int, err error) error {
	switch {
	case errors.Is(err, teller.ErrTransferLimitReached):
		if a, aerr := l.Account(accountID); aerr == nil {
			return fmt.Errorf("account %d is a savings account locked for %d more days", accountID, a.DaysUntilTransfer(l.Now()))
		}
	case errors.Is(err, teller.ErrInsufficientFunds):
		if a, aerr := l.Account(accountID); aerr == nil {
			if a.Kind == teller.CheckingAccount {
				return fmt.Errorf("account %d would exceed its credit limit of %s (balance %s)", accountID, a.CreditLimit.Display(), a.Balance.Display())
			}
			return fmt.Errorf("account %d holds only %s", accountID, a.Balance.Display())
		}
	}
	return err
}
