package teller

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2005, time.June, 1, 13, 33, 0, 0, time.Local)

func TestCheckingWithdrawIntoCredit(t *testing.T) {
	acc := &Account{ID: 5, Kind: CheckingAccount, Balance: A(50), CreditLimit: A(100)}

	if err := acc.Withdraw(A(120), testNow); err != nil {
		t.Fatalf("withdraw within credit refused: %v", err)
	}
	if !acc.Balance.Equal(A(-70)) {
		t.Fatalf("balance = %s, want -70", acc.Balance)
	}

	// -70 - 40 = -110 < -100: refused, no partial effect.
	if err := acc.Withdraw(A(40), testNow); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if !acc.Balance.Equal(A(-70)) {
		t.Fatalf("failed withdraw changed balance to %s", acc.Balance)
	}
}

func TestSavingsWithdrawOpensTransferWindow(t *testing.T) {
	acc := &Account{
		ID:           9,
		Kind:         SavingsAccount,
		Balance:      A(200),
		LastTransfer: At(testNow.AddDate(0, 0, -40)),
	}
	if acc.LimitReached(testNow) {
		t.Fatal("limit reached after 40 days")
	}

	if err := acc.Withdraw(A(50), testNow); err != nil {
		t.Fatalf("withdraw refused: %v", err)
	}
	if !acc.Balance.Equal(A(150)) {
		t.Fatalf("balance = %s, want 150", acc.Balance)
	}
	if !acc.LastTransfer.Equal(At(testNow)) {
		t.Fatalf("last transfer not reset: %s", acc.LastTransfer)
	}

	// The window is open now: an immediate second withdrawal is refused.
	if err := acc.Withdraw(A(10), testNow); !errors.Is(err, ErrTransferLimitReached) {
		t.Fatalf("want ErrTransferLimitReached, got %v", err)
	}
	if !acc.Balance.Equal(A(150)) {
		t.Fatalf("refused withdraw changed balance to %s", acc.Balance)
	}
}

func TestSavingsNeverNegative(t *testing.T) {
	acc := NewSavings(1)
	acc.Balance = A(30)

	if err := acc.Withdraw(A(31), testNow); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if err := acc.Withdraw(A(30), testNow); err != nil {
		t.Fatalf("withdraw to exactly zero refused: %v", err)
	}
	if !acc.Balance.IsZero() {
		t.Fatalf("balance = %s, want 0", acc.Balance)
	}
}

func TestDepositAlwaysAllowed(t *testing.T) {
	acc := NewSavings(1)
	acc.Balance = A(100)
	acc.LastTransfer = At(testNow) // window open

	if err := acc.Deposit(A(25), testNow); err != nil {
		t.Fatalf("deposit on limited account refused: %v", err)
	}
	if !acc.Balance.Equal(A(125)) {
		t.Fatalf("balance = %s, want 125", acc.Balance)
	}
	// Deposits never touch the window either way.
	if !acc.LastTransfer.Equal(At(testNow)) {
		t.Fatalf("deposit moved last transfer to %s", acc.LastTransfer)
	}
}

func TestDepositPositiveOnly(t *testing.T) {
	acc := NewChecking(1)
	for _, amount := range []Amount{A(0), A(-5)} {
		if err := acc.Deposit(amount, testNow); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Deposit(%s): want ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestSetBalanceFailsClosed(t *testing.T) {
	acc := &Account{ID: 5, Kind: CheckingAccount, Balance: A(50), CreditLimit: A(100)}
	if err := acc.setBalance(A(-101), testNow); !errors.Is(err, ErrBalanceTooLow) {
		t.Fatalf("want ErrBalanceTooLow, got %v", err)
	}
	if !acc.Balance.Equal(A(50)) {
		t.Fatalf("failed setBalance changed balance to %s", acc.Balance)
	}
}

func TestTransferAllOrNothing(t *testing.T) {
	src := NewChecking(1)
	src.Balance = A(10)
	dst := NewChecking(2)
	dst.Balance = A(5)

	// 10 - 200 = -190 < -100: the destination must stay untouched.
	if err := src.Transfer(A(200), dst, testNow); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if !dst.Balance.Equal(A(5)) {
		t.Fatalf("failed transfer reached destination: %s", dst.Balance)
	}

	if err := src.Transfer(A(60), dst, testNow); err != nil {
		t.Fatalf("transfer refused: %v", err)
	}
	if !src.Balance.Equal(A(-50)) || !dst.Balance.Equal(A(65)) {
		t.Fatalf("balances after transfer: %s and %s", src.Balance, dst.Balance)
	}
}

func TestDaysUntilTransfer(t *testing.T) {
	acc := NewSavings(1)
	acc.LastTransfer = At(testNow.AddDate(0, 0, -12))
	if got := acc.DaysUntilTransfer(testNow); got != 18 {
		t.Errorf("DaysUntilTransfer = %d, want 18", got)
	}
	if got := NewChecking(2).DaysUntilTransfer(testNow); got != 0 {
		t.Errorf("checking DaysUntilTransfer = %d, want 0", got)
	}
}
