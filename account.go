package teller

import (
	"fmt"
	"time"
)

// AccountKind is the numeric account type persisted in the accounts file.
type AccountKind int

const (
	SavingsAccount  AccountKind = 0
	CheckingAccount AccountKind = 1
)

// String returns the human-readable name of the kind.
func (k AccountKind) String() string {
	switch k {
	case SavingsAccount:
		return "Savings"
	case CheckingAccount:
		return "Checking"
	default:
		return fmt.Sprintf("AccountKind(%d)", int(k))
	}
}

// validAccountKind reports whether n is one of the persisted kind
// values. Anything else invalidates the whole line.
func validAccountKind(n int) bool {
	return n == int(SavingsAccount) || n == int(CheckingAccount)
}

// DefaultCreditLimit is the credit granted to a checking account when
// none is specified.
var DefaultCreditLimit = A(100)

// Account is one bank account. The two kinds share the balance state
// machine and differ only in their floor and, for savings, the transfer
// window:
//
//   - Checking accounts may go negative down to -CreditLimit.
//   - Savings accounts never go negative, and allow at most one
//     balance-decreasing operation per 30 calendar days; LastTransfer
//     records when the window opened.
//
// All methods are pure state transitions on the in-memory value; the
// Ledger persists an account explicitly after a successful mutation.
type Account struct {
	ID           int
	Kind         AccountKind
	Balance      Amount
	CreditLimit  Amount    // checking only, non-negative
	LastTransfer Timestamp // savings only
}

// NewSavings returns a savings account with a zero balance and no
// transfer limit pending (the sentinel last-transfer is far in the past).
func NewSavings(id int) *Account {
	return &Account{ID: id, Kind: SavingsAccount, LastTransfer: NeverTransferred()}
}

// NewChecking returns a checking account with a zero balance and the
// default credit limit.
func NewChecking(id int) *Account {
	return &Account{ID: id, Kind: CheckingAccount, CreditLimit: DefaultCreditLimit}
}

// floor returns the lowest balance the account kind permits.
func (a *Account) floor() Amount {
	if a.Kind == CheckingAccount {
		return a.CreditLimit.Neg()
	}
	return A(0)
}

// setBalance validates the kind's floor and fails closed: on
// ErrBalanceTooLow the account is left untouched. A balance decrease on
// a savings account opens a new transfer window.
func (a *Account) setBalance(value Amount, now time.Time) error {
	if value.LessThan(a.floor()) {
		return ErrBalanceTooLow
	}
	if a.Kind == SavingsAccount && value.LessThan(a.Balance) {
		a.LastTransfer = At(now)
	}
	a.Balance = value
	return nil
}

// LimitReached reports whether the account currently refuses
// balance-decreasing operations. Only savings accounts ever do.
func (a *Account) LimitReached(now time.Time) bool {
	return a.Kind == SavingsAccount && TransferLimitReached(a.LastTransfer, now)
}

// DaysUntilTransfer returns the calendar days left on the transfer
// window, zero when the account may transfer (always zero for checking).
func (a *Account) DaysUntilTransfer(now time.Time) int {
	if a.Kind != SavingsAccount {
		return 0
	}
	return DaysUntilNextTransfer(a.LastTransfer, now)
}

// Deposit adds amount to the balance. Deposits are always allowed, in
// particular on a limit-blocked savings account.
func (a *Account) Deposit(amount Amount, now time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return a.setBalance(a.Balance.Add(amount), now)
}

// Withdraw removes amount from the balance. It fails with
// ErrTransferLimitReached on a limit-blocked savings account and with
// ErrInsufficientFunds when the result would cross the kind's floor; in
// both cases the balance is unchanged. These are normal outcomes, not
// faults.
func (a *Account) Withdraw(amount Amount, now time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.LimitReached(now) {
		return ErrTransferLimitReached
	}
	if a.Balance.Sub(amount).LessThan(a.floor()) {
		return ErrInsufficientFunds
	}
	return a.setBalance(a.Balance.Sub(amount), now)
}

// Transfer withdraws amount from a and deposits it into dest. It is
// all-or-nothing: when the withdrawal is refused, dest is untouched.
func (a *Account) Transfer(amount Amount, dest *Account, now time.Time) error {
	if err := a.Withdraw(amount, now); err != nil {
		return err
	}
	return dest.Deposit(amount, now)
}

// Equal reports semantic equality of two accounts.
func (a *Account) Equal(o *Account) bool {
	return a.ID == o.ID &&
		a.Kind == o.Kind &&
		a.Balance.Equal(o.Balance) &&
		a.CreditLimit.Equal(o.CreditLimit) &&
		a.LastTransfer.Equal(o.LastTransfer)
}

// String renders the account for console listings.
func (a *Account) String() string {
	return fmt.Sprintf("%d\t%s\t%s", a.ID, a.Kind, a.Balance.Display())
}
