// Package renderer turns ledger objects into markdown reports for the
// console.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/rvallee/teller"
)

// Accounts renders a table of accounts. The note column carries what a
// teller would say out loud: the credit still available on a checking
// account, or how long a savings account stays locked.
func Accounts(accounts []*teller.Account, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Accounts")
	table := md.TableSet{
		Header: []string{"ID", "Type", "Balance", "Note"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", a.ID),
			a.Kind.String(),
			a.Balance.Display(),
			accountNote(a, now),
		})
	}
	doc.Table(table)

	return doc.String()
}

func accountNote(a *teller.Account, now time.Time) string {
	switch a.Kind {
	case teller.CheckingAccount:
		return fmt.Sprintf("credit limit %s", a.CreditLimit.Display())
	case teller.SavingsAccount:
		if days := a.DaysUntilTransfer(now); days > 0 {
			return fmt.Sprintf("locked for %d more days", days)
		}
		return "may withdraw"
	}
	return ""
}

// Customers renders a table of customers and the accounts they own.
func Customers(customers []*teller.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Customers")
	table := md.TableSet{
		Header: []string{"ID", "Name", "Age", "Accounts"},
	}
	for _, c := range customers {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			fmt.Sprintf("%d", c.Age),
			fmt.Sprintf("%v", c.AccountIDs),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Transactions renders the audit trail as a table, oldest first.
func Transactions(transactions []teller.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Transactions")
	table := md.TableSet{
		Header: []string{"ID", "When", "Operation", "Amount", "Account", "To"},
	}
	for _, t := range transactions {
		to := ""
		if t.Kind == teller.TxTransfer {
			to = fmt.Sprintf("%d", t.DestID)
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Stamp.String(),
			t.Kind.String(),
			t.Amount.Display(),
			fmt.Sprintf("%d", t.AccountID),
			to,
		})
	}
	doc.Table(table)

	return doc.String()
}

// Receipt renders a one-line confirmation of a completed operation.
func Receipt(t teller.Transaction) string {
	switch t.Kind {
	case teller.TxDeposit:
		return fmt.Sprintf("Deposited %s into account %d", t.Amount.Display(), t.AccountID)
	case teller.TxWithdraw:
		return fmt.Sprintf("Withdrew %s from account %d", t.Amount.Display(), t.AccountID)
	case teller.TxTransfer:
		return fmt.Sprintf("Transferred %s from account %d to account %d", t.Amount.Display(), t.AccountID, t.DestID)
	default:
		return t.Line()
	}
}

// Statement renders one customer's full position: a title line and the
// accounts table.
func Statement(c *teller.Customer, accounts []*teller.Account, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (customer %d)", c.Name, c.ID))

	total := teller.A(0)
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	doc.PlainText(fmt.Sprintf("Total balance: %s over %d accounts", total.Display(), len(accounts)))

	return doc.String() + "\n" + Accounts(accounts, now)
}
