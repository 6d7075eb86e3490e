package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/rvallee/teller"
	"github.com/rvallee/teller/prompt"
	"github.com/rvallee/teller/renderer"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive teller session" }
func (*menuCmd) Usage() string {
	return `teller menu

  Starts an interactive session: log in with your customer id and
  password, then operate on your accounts through numbered menus. Type
  "c" at any prompt to back out of the current operation.

Usage Examples:
$ teller menu

`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	s := &session{
		l: l,
		p: prompt.New(os.Stdout, os.Stdin),
		w: os.Stdout,
	}
	return s.run()
}

// session is one logged-in interactive conversation with a customer.
type session struct {
	l *teller.Ledger
	p *prompt.Prompter
	w io.Writer

	customer *teller.Customer
}

// loginAttempts is how many id/password pairs a visitor may try.
const loginAttempts = 3

func (s *session) run() subcommands.ExitStatus {
	fmt.Fprintln(s.w, "Welcome to the teller. Type 'c' at any prompt to cancel.")
	if !s.login() {
		return subcommands.ExitFailure
	}
	fmt.Fprintf(s.w, "Hello %s.\n", s.customer.Name)

	for {
		choice := s.p.Menu("What would you like to do?",
			"show my accounts",
			"deposit",
			"withdraw",
			"transfer",
			"open an account",
			"close an account",
			"show transactions",
			"delete my customer record",
			"log out",
		)
		if !choice.Ok() {
			// Cancel or EOF at the main menu ends the session.
			return subcommands.ExitSuccess
		}
		switch choice.Value {
		case 0:
			printMarkdown(renderer.Statement(s.customer, s.l.AccountsOf(s.customer), s.l.Now()))
		case 1:
			s.deposit()
		case 2:
			s.withdraw()
		case 3:
			s.transfer()
		case 4:
			s.openAccount()
		case 5:
			s.closeAccount()
		case 6:
			s.transactions()
		case 7:
			if s.deleteCustomer() {
				return subcommands.ExitSuccess
			}
		case 8:
			fmt.Fprintln(s.w, "Goodbye.")
			return subcommands.ExitSuccess
		}
	}
}

func (s *session) login() bool {
	for range loginAttempts {
		id := s.p.Int("customer id")
		if !id.Ok() {
			return false
		}
		password, state := s.p.ReadSecret("password")
		if state != prompt.Succeeded {
			return false
		}
		c, err := s.l.Authenticate(id.Value, password)
		if err != nil {
			fmt.Fprintln(s.w, "Unknown customer id or wrong password.")
			continue
		}
		s.customer = c
		return true
	}
	fmt.Fprintln(s.w, "Too many failed attempts.")
	return false
}

// pickAccount asks for one of the customer's own accounts.
func (s *session) pickAccount(label string) (int, bool) {
	if len(s.customer.AccountIDs) == 0 {
		fmt.Fprintln(s.w, "You have no accounts yet; open one first.")
		return 0, false
	}
	printMarkdown(renderer.Accounts(s.l.AccountsOf(s.customer), s.l.Now()))
	r := s.p.Select(label, s.customer.AccountIDs)
	return r.Value, r.Ok()
}

func (s *session) deposit() {
	id, ok := s.pickAccount("deposit into account")
	if !ok {
		return
	}
	amount := s.p.Amount("amount")
	if !amount.Ok() {
		return
	}
	tx, err := s.l.Deposit(id, amount.Value)
	if err != nil {
		fmt.Fprintln(s.w, refusal(s.l, id, err))
		return
	}
	fmt.Fprintln(s.w, renderer.Receipt(tx))
}

func (s *session) withdraw() {
	id, ok := s.pickAccount("withdraw from account")
	if !ok {
		return
	}
	amount := s.p.Amount("amount")
	if !amount.Ok() {
		return
	}
	tx, err := s.l.Withdraw(id, amount.Value)
	if err != nil {
		fmt.Fprintln(s.w, refusal(s.l, id, err))
		return
	}
	fmt.Fprintln(s.w, renderer.Receipt(tx))
}

func (s *session) transfer() {
	from, ok := s.pickAccount("transfer from account")
	if !ok {
		return
	}
	to := s.p.Int("transfer to account")
	if !to.Ok() {
		return
	}
	amount := s.p.Amount("amount")
	if !amount.Ok() {
		return
	}
	tx, err := s.l.Transfer(from, to.Value, amount.Value)
	if err != nil {
		fmt.Fprintln(s.w, refusal(s.l, from, err))
		return
	}
	fmt.Fprintln(s.w, renderer.Receipt(tx))
}

func (s *session) openAccount() {
	choice := s.p.Menu("Which kind of account?", "savings", "checking")
	if !choice.Ok() {
		return
	}
	var a *teller.Account
	var err error
	if choice.Value == 0 {
		a, err = s.l.OpenSavings(s.customer.ID)
	} else {
		a, err = s.l.OpenChecking(s.customer.ID)
	}
	if err != nil {
		fmt.Fprintln(s.w, err)
		return
	}
	fmt.Fprintf(s.w, "Opened %s account %d.\n", a.Kind, a.ID)
}

func (s *session) closeAccount() {
	id, ok := s.pickAccount("close account")
	if !ok {
		return
	}
	if err := s.l.CloseAccount(id); err != nil {
		fmt.Fprintln(s.w, refusal(s.l, id, err))
		return
	}
	fmt.Fprintf(s.w, "Closed account %d.\n", id)
}

func (s *session) transactions() {
	id, ok := s.pickAccount("show transactions of account")
	if !ok {
		return
	}
	printMarkdown(renderer.Transactions(s.l.TransactionsFor(id)))
}

// deleteCustomer removes the logged-in customer and reports whether the
// session must end.
func (s *session) deleteCustomer() bool {
	confirm := s.p.Challenge(fmt.Sprintf("About to delete your record and close %d accounts.", len(s.customer.AccountIDs)))
	if !confirm.Ok() || !confirm.Value {
		fmt.Fprintln(s.w, "Deletion aborted.")
		return false
	}
	if err := s.l.CloseCustomer(s.customer.ID); err != nil {
		if !s.l.MayMoveFunds(s.customer) {
			fmt.Fprintln(s.w, "Your accounts must all be at zero before deleting your record, and a savings account is currently locked for transfers.")
		} else {
			fmt.Fprintln(s.w, "Your accounts must all be at zero before deleting your record.")
		}
		return false
	}
	fmt.Fprintln(s.w, "Your record has been deleted. Goodbye.")
	return true
}
