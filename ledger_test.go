package teller

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testLedger opens a ledger over a throwaway directory, with a clock
// pinned to testNow so transfer-window tests are deterministic.
func testLedger(t *testing.T) *Ledger {
	t.Helper()
	dir := t.TempDir()
	l, err := Open(Config{
		CustomersPath:    filepath.Join(dir, DefaultCustomersFile),
		AccountsPath:     filepath.Join(dir, DefaultAccountsFile),
		TransactionsPath: filepath.Join(dir, DefaultTransactionsFile),
	})
	if err != nil {
		t.Fatal(err)
	}
	l.now = func() time.Time { return testNow }
	t.Cleanup(func() { l.Close() })
	return l
}

// reopen closes the ledger and opens a fresh one over the same files,
// proving that the state survives a round trip through the disk format.
func reopen(t *testing.T, l *Ledger) *Ledger {
	t.Helper()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	fresh, err := Open(l.cfg)
	if err != nil {
		t.Fatal(err)
	}
	fresh.now = func() time.Time { return testNow }
	return fresh
}

func TestRegisterAllocatesIncreasingIDs(t *testing.T) {
	l := testLedger(t)

	a, err := l.Register("John Smith", 30, "hunter")
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Register("Ada Lovelace", 41, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}

	l = reopen(t, l)
	c, err := l.Register("Grace", 35, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != 3 {
		t.Fatalf("id after reload = %d, want 3", c.ID)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	l := testLedger(t)
	if _, err := l.Register("1234", 30, "pw"); err == nil {
		t.Error("name without letters accepted")
	}
	if _, err := l.Register("John", 30, "a,b"); err == nil {
		t.Error("password with comma accepted")
	}
}

func TestAuthenticate(t *testing.T) {
	l := testLedger(t)
	c, err := l.Register("John", 30, "hunter")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Authenticate(c.ID, "hunter"); err != nil {
		t.Errorf("good password refused: %v", err)
	}
	if _, err := l.Authenticate(c.ID, "wrong"); !errors.Is(err, ErrBadPassword) {
		t.Errorf("want ErrBadPassword, got %v", err)
	}
	if _, err := l.Authenticate(99, "hunter"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestOpenAccountAttachesToOwner(t *testing.T) {
	l := testLedger(t)
	c, err := l.Register("John", 30, "pw")
	if err != nil {
		t.Fatal(err)
	}
	sav, err := l.OpenSavings(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	chk, err := l.OpenChecking(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if sav.ID != 1 || chk.ID != 2 {
		t.Fatalf("account ids = %d, %d, want 1, 2", sav.ID, chk.ID)
	}

	l = reopen(t, l)
	c, err = l.Customer(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Owns(sav.ID) || !c.Owns(chk.ID) {
		t.Fatalf("ownership lost across reload: %v", c.AccountIDs)
	}
	if owner, ok := l.OwnerOf(chk.ID); !ok || owner.ID != c.ID {
		t.Fatal("OwnerOf does not find the customer")
	}
}

func TestDepositWithdrawLogsTransactions(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	acc, _ := l.OpenChecking(c.ID)

	if _, err := l.Deposit(acc.ID, A(50)); err != nil {
		t.Fatal(err)
	}
	tx, err := l.Withdraw(acc.ID, A(20))
	if err != nil {
		t.Fatal(err)
	}
	if tx.Kind != TxWithdraw || !tx.Amount.Equal(A(20)) || tx.AccountID != acc.ID {
		t.Fatalf("withdraw row = %+v", tx)
	}

	l = reopen(t, l)
	acc, err = l.Account(acc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !acc.Balance.Equal(A(30)) {
		t.Fatalf("balance after reload = %s, want 30", acc.Balance)
	}
	if got := l.TransactionsFor(acc.ID); len(got) != 2 {
		t.Fatalf("audit trail has %d rows, want 2", len(got))
	}
}

func TestTransferPersistsBothSides(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	src, _ := l.OpenChecking(c.ID)
	dst, _ := l.OpenChecking(c.ID)
	if _, err := l.Deposit(src.ID, A(80)); err != nil {
		t.Fatal(err)
	}

	tx, err := l.Transfer(src.ID, dst.ID, A(30))
	if err != nil {
		t.Fatal(err)
	}
	if tx.Kind != TxTransfer || tx.AccountID != src.ID || tx.DestID != dst.ID {
		t.Fatalf("transfer row = %+v", tx)
	}

	l = reopen(t, l)
	s, _ := l.Account(src.ID)
	d, _ := l.Account(dst.ID)
	if !s.Balance.Equal(A(50)) || !d.Balance.Equal(A(30)) {
		t.Fatalf("balances after reload: %s and %s", s.Balance, d.Balance)
	}
}

func TestTransferToSameAccountRefused(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	acc, _ := l.OpenChecking(c.ID)
	l.Deposit(acc.ID, A(50))

	if _, err := l.Transfer(acc.ID, acc.ID, A(10)); !errors.Is(err, ErrSameAccount) {
		t.Fatalf("want ErrSameAccount, got %v", err)
	}
}

func TestFailedTransferLeavesNoTrace(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	src, _ := l.OpenSavings(c.ID)
	dst, _ := l.OpenChecking(c.ID)
	l.Deposit(src.ID, A(10))

	if _, err := l.Transfer(src.ID, dst.ID, A(20)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	// Only the deposit row exists; the refused transfer logged nothing.
	if got := l.Transactions(); len(got) != 1 {
		t.Fatalf("audit trail has %d rows, want 1", len(got))
	}
	d, _ := l.Account(dst.ID)
	if !d.Balance.IsZero() {
		t.Fatalf("destination credited on a refused transfer: %s", d.Balance)
	}
}

func TestCloseAccountRequiresZeroBalance(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	acc, _ := l.OpenChecking(c.ID)
	l.Deposit(acc.ID, A(10))

	if err := l.CloseAccount(acc.ID); !errors.Is(err, ErrAccountNotEmpty) {
		t.Fatalf("want ErrAccountNotEmpty, got %v", err)
	}
	if _, err := l.Withdraw(acc.ID, A(10)); err != nil {
		t.Fatal(err)
	}
	if err := l.CloseAccount(acc.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Account(acc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("closed account still resolvable")
	}

	l = reopen(t, l)
	c, _ = l.Customer(c.ID)
	if c.Owns(acc.ID) {
		t.Fatal("closed account still attached to owner after reload")
	}
	// The audit trail keeps the dead account's history.
	if got := l.TransactionsFor(acc.ID); len(got) != 2 {
		t.Fatalf("audit trail has %d rows, want 2", len(got))
	}
}

func TestCloseCustomerCascades(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	sav, _ := l.OpenSavings(c.ID)
	chk, _ := l.OpenChecking(c.ID)

	l.Deposit(chk.ID, A(5))
	if err := l.CloseCustomer(c.ID); !errors.Is(err, ErrCustomerHasFunds) {
		t.Fatalf("want ErrCustomerHasFunds, got %v", err)
	}
	if _, err := l.Withdraw(chk.ID, A(5)); err != nil {
		t.Fatal(err)
	}
	if err := l.CloseCustomer(c.ID); err != nil {
		t.Fatal(err)
	}

	l = reopen(t, l)
	if _, err := l.Customer(c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("closed customer survived reload")
	}
	for _, id := range []int{sav.ID, chk.ID} {
		if _, err := l.Account(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("account %d survived customer closure", id)
		}
	}
}

func TestMayMoveFunds(t *testing.T) {
	l := testLedger(t)
	c, _ := l.Register("John", 30, "pw")
	sav, _ := l.OpenSavings(c.ID)
	if _, err := l.Deposit(sav.ID, A(50)); err != nil {
		t.Fatal(err)
	}
	if !l.MayMoveFunds(c) {
		t.Fatal("fresh savings account reported locked")
	}
	if _, err := l.Withdraw(sav.ID, A(10)); err != nil {
		t.Fatal(err)
	}
	// The withdrawal opened the window: the balance cannot be emptied,
	// so a deletion attempt should be worded accordingly.
	if l.MayMoveFunds(c) {
		t.Fatal("funds reported movable inside the transfer window")
	}
}

func TestLoadSkipsInvalidLines(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CustomersPath:    filepath.Join(dir, DefaultCustomersFile),
		AccountsPath:     filepath.Join(dir, DefaultAccountsFile),
		TransactionsPath: filepath.Join(dir, DefaultTransactionsFile),
	}
	content := strings.Join([]string{
		"# accounts, hand maintained",
		"5, 1, 50.0, 100",
		"mangled beyond repair",
		"9, 0, 10.0, ,Jun 1 2005 01:33PM",
	}, "\n") + "\n"
	if err := os.WriteFile(cfg.AccountsPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if got := len(l.Accounts()); got != 2 {
		t.Fatalf("loaded %d accounts, want 2", got)
	}
	// New ids continue above the highest survivor.
	c, _ := l.Register("John", 30, "pw")
	acc, err := l.OpenChecking(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if acc.ID != 10 {
		t.Fatalf("new account id = %d, want 10", acc.ID)
	}
}

func TestFormatCanonicalizesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CustomersPath:    filepath.Join(dir, DefaultCustomersFile),
		AccountsPath:     filepath.Join(dir, DefaultAccountsFile),
		TransactionsPath: filepath.Join(dir, DefaultTransactionsFile),
	}
	content := "# comment\n9, 0, 10.0, ,Jun 1 2005 01:33PM\nbroken\n5, 1, 50.0, 100\n"
	if err := os.WriteFile(cfg.AccountsPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if err := l.Format(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.AccountsPath)
	if err != nil {
		t.Fatal(err)
	}
	// Amounts re-serialize in canonical decimal form: trailing zeros go.
	want := "5, 1, 50, 100\n9, 0, 10, ,Jun 1 2005 01:33PM\n"
	if string(data) != want {
		t.Errorf("formatted file:\n%q\nwant:\n%q", data, want)
	}
}
