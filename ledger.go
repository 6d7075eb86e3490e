package teller

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Ledger is the combined customer/account/transaction data and the
// operations that keep the three record stores mutually consistent. It
// loads everything once at startup, serves lookups from memory, and
// writes through to the files on every successful mutation.
//
// The ledger is single-session: exactly one operation runs at a time,
// and each completes its full read-modify-write cycle before the next
// starts. There is no locking because there is no parallelism; anyone
// adding concurrency must make every balance mutation a critical
// section keyed by account id, with transfers locking source and
// destination in ascending-id order.
type Ledger struct {
	cfg   Config
	store *Store

	customers    map[int]*Customer
	accounts     map[int]*Account
	transactions map[int]Transaction

	// highest id seen per collection; allocation is max+1
	lastCustomerID    int
	lastAccountID     int
	lastTransactionID int

	now func() time.Time
}

// Open loads the three record collections from cfg's files and returns
// a ready ledger. Missing files start empty; unreadable ones are fatal.
// Invalid lines (comments, hand-edit damage) are skipped silently.
func Open(cfg Config) (*Ledger, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		cfg:          cfg,
		store:        store,
		customers:    make(map[int]*Customer),
		accounts:     make(map[int]*Account),
		transactions: make(map[int]Transaction),
		now:          time.Now,
	}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load() error {
	lines, err := l.store.LoadAll(l.cfg.CustomersPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		c, err := ParseCustomer(line)
		if err != nil {
			continue
		}
		l.customers[c.ID] = c
		l.lastCustomerID = max(l.lastCustomerID, c.ID)
	}

	lines, err = l.store.LoadAll(l.cfg.AccountsPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		a, err := ParseAccount(line)
		if err != nil {
			continue
		}
		l.accounts[a.ID] = a
		l.lastAccountID = max(l.lastAccountID, a.ID)
	}

	lines, err = l.store.LoadAll(l.cfg.TransactionsPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		t, err := ParseTransaction(line)
		if err != nil {
			continue
		}
		l.transactions[t.ID] = t
		l.lastTransactionID = max(l.lastTransactionID, t.ID)
	}
	return nil
}

// Now returns the ledger's current time. All balance rules evaluate
// against this clock.
func (l *Ledger) Now() time.Time { return l.now() }

// Close releases the ledger, removing shadow files when running in
// non-destructive mode.
func (l *Ledger) Close() error {
	return l.store.RemoveShadows()
}

// --- lookups ---

// Customer returns the customer with the given id.
func (l *Ledger) Customer(id int) (*Customer, error) {
	c, ok := l.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// Account returns the account with the given id.
func (l *Ledger) Account(id int) (*Account, error) {
	a, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	return a, nil
}

// Authenticate checks a customer's password and returns the customer.
func (l *Ledger) Authenticate(id int, password string) (*Customer, error) {
	c, err := l.Customer(id)
	if err != nil {
		return nil, err
	}
	if c.Password != password {
		return nil, ErrBadPassword
	}
	return c, nil
}

// OwnerOf returns the customer owning the account, if any. Every
// account belongs to at most one customer.
func (l *Ledger) OwnerOf(accountID int) (*Customer, bool) {
	for _, c := range l.sortedCustomers() {
		if c.Owns(accountID) {
			return c, true
		}
	}
	return nil, false
}

// AccountsOf returns the customer's accounts in ownership order.
// Dangling ids (account rows lost to hand editing) are skipped.
func (l *Ledger) AccountsOf(c *Customer) []*Account {
	var out []*Account
	for _, id := range c.AccountIDs {
		if a, ok := l.accounts[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Customers lists all customers by ascending id.
func (l *Ledger) Customers() []*Customer { return l.sortedCustomers() }

// Accounts lists all accounts by ascending id.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *Account) int { return a.ID - b.ID })
	return out
}

// Transactions lists the whole audit trail by ascending id.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Transaction) int { return a.ID - b.ID })
	return out
}

// TransactionsFor lists the transactions touching the account, by
// ascending id.
func (l *Ledger) TransactionsFor(accountID int) []Transaction {
	var out []Transaction
	for _, t := range l.Transactions() {
		if t.AccountID == accountID || t.DestID == accountID {
			out = append(out, t)
		}
	}
	return out
}

func (l *Ledger) sortedCustomers() []*Customer {
	out := make([]*Customer, 0, len(l.customers))
	for _, c := range l.customers {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Customer) int { return a.ID - b.ID })
	return out
}

// MayMoveFunds reports whether the customer can move money out of
// every owned account right now: false while a savings account is
// inside its transfer window. Closing flows consult it to word their
// refusal, since emptying the accounts is impossible until the window
// expires.
func (l *Ledger) MayMoveFunds(c *Customer) bool {
	return c.TransactionBlock(l.accounts, l.now())
}

// --- registration and account opening ---

// Register creates a new customer, persists the row, and returns it.
func (l *Ledger) Register(name string, age int, password string) (*Customer, error) {
	name = SanitizeName(name)
	if name == "" {
		return nil, errors.New("name must contain letters")
	}
	if !ValidPassword(password) {
		return nil, errors.New("password must not be empty or contain commas or quotes")
	}
	c := &Customer{ID: l.lastCustomerID + 1, Name: name, Age: age, Password: password}
	if err := l.appendCustomer(c); err != nil {
		return nil, err
	}
	l.customers[c.ID] = c
	l.lastCustomerID = c.ID
	return c, nil
}

// OpenSavings opens a savings account for the customer. It starts at
// balance zero with the sentinel past last-transfer, so no transfer
// limit applies before the first withdrawal.
func (l *Ledger) OpenSavings(customerID int) (*Account, error) {
	return l.openAccount(customerID, NewSavings(l.lastAccountID+1))
}

// OpenChecking opens a checking account for the customer, starting at
// balance zero with the default credit limit.
func (l *Ledger) OpenChecking(customerID int) (*Account, error) {
	return l.openAccount(customerID, NewChecking(l.lastAccountID+1))
}

func (l *Ledger) openAccount(customerID int, a *Account) (*Account, error) {
	c, err := l.Customer(customerID)
	if err != nil {
		return nil, err
	}
	if err := l.appendAccount(a); err != nil {
		return nil, err
	}
	l.accounts[a.ID] = a
	l.lastAccountID = a.ID

	c.AddAccount(a.ID)
	if err := l.persistCustomer(c); err != nil {
		return nil, err
	}
	return a, nil
}

// --- balance operations ---

// Deposit adds amount to the account and logs a Deposit row.
func (l *Ledger) Deposit(accountID int, amount Amount) (Transaction, error) {
	a, err := l.Account(accountID)
	if err != nil {
		return Transaction{}, err
	}
	if err := a.Deposit(amount, l.now()); err != nil {
		return Transaction{}, err
	}
	if err := l.persistAccount(a); err != nil {
		return Transaction{}, err
	}
	return l.logTransaction(TxDeposit, a.ID, amount, a.ID)
}

// Withdraw removes amount from the account and logs a Withdraw row. The
// account's own rules decide: insufficient funds and an active savings
// transfer window both refuse without side effects.
func (l *Ledger) Withdraw(accountID int, amount Amount) (Transaction, error) {
	a, err := l.Account(accountID)
	if err != nil {
		return Transaction{}, err
	}
	if err := a.Withdraw(amount, l.now()); err != nil {
		return Transaction{}, err
	}
	if err := l.persistAccount(a); err != nil {
		return Transaction{}, err
	}
	return l.logTransaction(TxWithdraw, a.ID, amount, a.ID)
}

// Transfer moves amount between two accounts, all-or-nothing, and logs
// a single Transfer row on success.
func (l *Ledger) Transfer(sourceID, destID int, amount Amount) (Transaction, error) {
	if sourceID == destID {
		return Transaction{}, ErrSameAccount
	}
	src, err := l.Account(sourceID)
	if err != nil {
		return Transaction{}, err
	}
	dst, err := l.Account(destID)
	if err != nil {
		return Transaction{}, err
	}
	if err := src.Transfer(amount, dst, l.now()); err != nil {
		return Transaction{}, err
	}
	if err := l.persistAccount(src); err != nil {
		return Transaction{}, err
	}
	if err := l.persistAccount(dst); err != nil {
		return Transaction{}, err
	}
	return l.logTransaction(TxTransfer, src.ID, amount, dst.ID)
}

// --- closing ---

// CloseAccount deletes a zero-balance account and detaches it from its
// owner. A nonzero balance (positive or negative) refuses with
// ErrAccountNotEmpty; the caller may transfer the balance away first.
func (l *Ledger) CloseAccount(accountID int) error {
	a, err := l.Account(accountID)
	if err != nil {
		return err
	}
	if !a.Balance.IsZero() {
		return fmt.Errorf("account %d: %w", accountID, ErrAccountNotEmpty)
	}
	if err := l.store.DeleteByID(l.cfg.AccountsPath, KindAccount, accountID); err != nil {
		return err
	}
	delete(l.accounts, accountID)

	if owner, ok := l.OwnerOf(accountID); ok {
		owner.RemoveAccount(accountID)
		if err := l.persistCustomer(owner); err != nil {
			return err
		}
	}
	return nil
}

// CloseCustomer deletes a customer once every owned account is
// closable, cascading through the account closures first.
func (l *Ledger) CloseCustomer(customerID int) error {
	c, err := l.Customer(customerID)
	if err != nil {
		return err
	}
	if !c.CanDelete(l.accounts) {
		return fmt.Errorf("customer %d: %w", customerID, ErrCustomerHasFunds)
	}
	for _, id := range slices.Clone(c.AccountIDs) {
		if err := l.CloseAccount(id); err != nil {
			return err
		}
	}
	if err := l.store.DeleteByID(l.cfg.CustomersPath, KindCustomer, customerID); err != nil {
		return err
	}
	delete(l.customers, customerID)
	return nil
}

// --- maintenance ---

// Format rewrites the three files in canonical form: records sorted by
// id, one per line, comments and invalid lines dropped. This is the one
// maintenance operation allowed to rewrite the transaction log.
func (l *Ledger) Format() error {
	var customers []string
	for _, c := range l.sortedCustomers() {
		customers = append(customers, c.Line())
	}
	if err := l.store.RewriteAll(l.cfg.CustomersPath, customers); err != nil {
		return err
	}
	var accounts []string
	for _, a := range l.Accounts() {
		accounts = append(accounts, a.Line())
	}
	if err := l.store.RewriteAll(l.cfg.AccountsPath, accounts); err != nil {
		return err
	}
	var transactions []string
	for _, t := range l.Transactions() {
		transactions = append(transactions, t.Line())
	}
	return l.store.RewriteAll(l.cfg.TransactionsPath, transactions)
}

// --- persistence plumbing ---

// appendCustomer adds a fresh customer row at the end of the file.
func (l *Ledger) appendCustomer(c *Customer) error {
	lines, err := l.store.LoadAll(l.cfg.CustomersPath)
	if err != nil {
		return err
	}
	return l.store.RewriteAll(l.cfg.CustomersPath, append(lines, c.Line()))
}

// appendAccount adds a fresh account row at the end of the file.
func (l *Ledger) appendAccount(a *Account) error {
	lines, err := l.store.LoadAll(l.cfg.AccountsPath)
	if err != nil {
		return err
	}
	return l.store.RewriteAll(l.cfg.AccountsPath, append(lines, a.Line()))
}

// persistCustomer rewrites the customer's line in place, leaving every
// other line untouched.
func (l *Ledger) persistCustomer(c *Customer) error {
	return l.rewriteLine(l.cfg.CustomersPath, KindCustomer, c.ID, c.Line())
}

// persistAccount rewrites the account's line in place, leaving every
// other line untouched.
func (l *Ledger) persistAccount(a *Account) error {
	return l.rewriteLine(l.cfg.AccountsPath, KindAccount, a.ID, a.Line())
}

func (l *Ledger) rewriteLine(path string, kind Kind, id int, line string) error {
	lines, err := l.store.LoadAll(path)
	if err != nil {
		return err
	}
	for i, old := range lines {
		if !ValidLine(kind, old) {
			continue
		}
		if oldID, ok := LeadingID(old); ok && oldID == id {
			lines[i] = line
			return l.store.RewriteAll(path, lines)
		}
	}
	// The row vanished from disk (hand edit mid-session); re-append it
	// rather than losing the mutation.
	return l.store.RewriteAll(path, append(lines, line))
}

// logTransaction appends one immutable row to the audit trail.
func (l *Ledger) logTransaction(kind TxKind, accountID int, amount Amount, destID int) (Transaction, error) {
	t := Transaction{
		ID:        l.lastTransactionID + 1,
		Kind:      kind,
		AccountID: accountID,
		Amount:    amount,
		DestID:    destID,
		Stamp:     At(l.now()),
	}
	if err := l.store.Append(l.cfg.TransactionsPath, t.Line()); err != nil {
		return Transaction{}, err
	}
	l.transactions[t.ID] = t
	l.lastTransactionID = t.ID
	return t, nil
}
