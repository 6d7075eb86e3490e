package teller

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which record collection a flat-file line belongs to.
type Kind int

const (
	KindCustomer Kind = iota
	KindAccount
	KindTransaction
)

// The ledger files are plain comma-delimited text, one record per line,
// hand-editable. Lines starting with '#' and blank lines are comments.
// Validation is defensive: malformed input degrades to "invalid line",
// it never propagates a parse fault to the caller.
//
// Grammars:
//
//	customer:    id, name, age, password, [id-id-id]
//	account:     id, 0, balance, ,timestamp     (savings)
//	             id, 1, balance, credit         (checking)
//	transaction: id, type, account, amount, dest, timestamp

// ValidLine reports whether a raw line is a well-formed record of the
// given kind. It never returns an error and never panics.
func ValidLine(kind Kind, line string) bool {
	var err error
	switch kind {
	case KindCustomer:
		_, err = ParseCustomer(line)
	case KindAccount:
		_, err = ParseAccount(line)
	case KindTransaction:
		_, err = ParseTransaction(line)
	default:
		return false
	}
	return err == nil
}

// LeadingID extracts the id field that starts every record line. It
// reports false for comments, blanks, and non-numeric leading fields.
func LeadingID(line string) (int, bool) {
	line = strings.Trim(line, "\n")
	if line == "" || strings.HasPrefix(line, "#") {
		return 0, false
	}
	head, _, _ := strings.Cut(line, ",")
	id, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// splitRecord rejects comments and blanks, then splits on commas and
// checks the exact comma count against want (a list of accepted counts).
func splitRecord(line string, want ...int) ([]string, error) {
	line = strings.Trim(line, "\n")
	if line == "" {
		return nil, fmt.Errorf("empty line")
	}
	if strings.HasPrefix(line, "#") {
		return nil, fmt.Errorf("comment line")
	}
	commas := strings.Count(line, ",")
	ok := false
	for _, w := range want {
		if commas == w {
			ok = true
		}
	}
	if !ok {
		return nil, fmt.Errorf("wrong field count: %d commas", commas)
	}
	return strings.Split(line, ","), nil
}

func parseID(field string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("bad id %q", field)
	}
	if id < 0 {
		return 0, fmt.Errorf("negative id %d", id)
	}
	return id, nil
}

// ParseAccount decodes one accounts-file line.
func ParseAccount(line string) (*Account, error) {
	row, err := splitRecord(line, 3, 4)
	if err != nil {
		return nil, err
	}
	id, err := parseID(row[0])
	if err != nil {
		return nil, err
	}
	kindNum, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil || !validAccountKind(kindNum) {
		// The account type is a strict enum: 0 savings, 1 checking.
		return nil, fmt.Errorf("bad account type %q", row[1])
	}
	balance, err := ParseAmount(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("bad balance %q", row[2])
	}

	acc := &Account{ID: id, Kind: AccountKind(kindNum), Balance: balance}
	switch acc.Kind {
	case SavingsAccount:
		// Savings lines carry a blank credit field and a timestamp.
		if len(row) != 5 {
			return nil, fmt.Errorf("savings line needs a timestamp field")
		}
		ts, err := ParseTimestamp(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("bad timestamp %q", row[4])
		}
		acc.LastTransfer = ts
	case CheckingAccount:
		if len(row) != 4 {
			return nil, fmt.Errorf("checking line has no timestamp field")
		}
		credit, err := ParseAmount(strings.TrimSpace(row[3]))
		if err != nil || credit.IsNegative() {
			return nil, fmt.Errorf("bad credit limit %q", row[3])
		}
		acc.CreditLimit = credit
	}
	return acc, nil
}

// Line encodes the account in the accounts-file grammar.
func (a *Account) Line() string {
	if a.Kind == SavingsAccount {
		// The credit field of a savings line is a single blank.
		return fmt.Sprintf("%d, %d, %s, ,%s", a.ID, a.Kind, a.Balance, a.LastTransfer)
	}
	return fmt.Sprintf("%d, %d, %s, %s", a.ID, a.Kind, a.Balance, a.CreditLimit)
}

// ParseCustomer decodes one customers-file line.
func ParseCustomer(line string) (*Customer, error) {
	row, err := splitRecord(line, 4)
	if err != nil {
		return nil, err
	}
	if strings.Count(line, "[") != 1 || strings.Count(line, "]") != 1 {
		return nil, fmt.Errorf("malformed account id list")
	}
	id, err := parseID(row[0])
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil || age < 0 {
		return nil, fmt.Errorf("bad age %q", row[2])
	}
	ids, err := parseAccountIDs(strings.TrimSpace(row[4]))
	if err != nil {
		return nil, err
	}
	return &Customer{
		ID:         id,
		Name:       strings.TrimSpace(row[1]),
		Age:        age,
		Password:   strings.TrimSpace(row[3]),
		AccountIDs: ids,
	}, nil
}

// parseAccountIDs decodes the bracketed hyphen-joined id list, e.g.
// "[3-7-12]". An empty list "[]" is valid.
func parseAccountIDs(field string) ([]int, error) {
	if !strings.HasPrefix(field, "[") || !strings.HasSuffix(field, "]") {
		return nil, fmt.Errorf("malformed account id list %q", field)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(field, "["), "]")
	if inner == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(inner, "-") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad account id %q in list", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Line encodes the customer in the customers-file grammar.
func (c *Customer) Line() string {
	parts := make([]string, 0, len(c.AccountIDs))
	for _, id := range c.AccountIDs {
		parts = append(parts, strconv.Itoa(id))
	}
	return fmt.Sprintf("%d, %s, %d, %s, [%s]", c.ID, c.Name, c.Age, c.Password, strings.Join(parts, "-"))
}

// ParseTransaction decodes one transactions-file line.
func ParseTransaction(line string) (Transaction, error) {
	row, err := splitRecord(line, 5)
	if err != nil {
		return Transaction{}, err
	}
	id, err := parseID(row[0])
	if err != nil {
		return Transaction{}, err
	}
	kindNum, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil || !validTxKind(kindNum) {
		return Transaction{}, fmt.Errorf("bad transaction type %q", row[1])
	}
	accID, err := parseID(row[2])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(strings.TrimSpace(row[3]))
	if err != nil {
		return Transaction{}, fmt.Errorf("bad amount %q", row[3])
	}
	destID, err := parseID(row[4])
	if err != nil {
		return Transaction{}, err
	}
	ts, err := ParseTimestamp(strings.TrimSpace(row[5]))
	if err != nil {
		return Transaction{}, fmt.Errorf("bad timestamp %q", row[5])
	}
	return Transaction{
		ID:        id,
		Kind:      TxKind(kindNum),
		AccountID: accID,
		Amount:    amount,
		DestID:    destID,
		Stamp:     ts,
	}, nil
}

// Line encodes the transaction in the transactions-file grammar.
func (t Transaction) Line() string {
	return fmt.Sprintf("%d, %d, %d, %s, %d, %s", t.ID, t.Kind, t.AccountID, t.Amount, t.DestID, t.Stamp)
}
