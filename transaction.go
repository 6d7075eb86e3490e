package teller

import "fmt"

// TxKind is the numeric transaction type persisted in the transactions
// file.
type TxKind int

const (
	TxDeposit  TxKind = 0
	TxWithdraw TxKind = 1
	TxTransfer TxKind = 2
)

// String returns the human-readable name of the kind.
func (k TxKind) String() string {
	switch k {
	case TxDeposit:
		return "Deposit"
	case TxWithdraw:
		return "Withdraw"
	case TxTransfer:
		return "Transfer"
	default:
		return fmt.Sprintf("TxKind(%d)", int(k))
	}
}

// validTxKind reports whether n is one of the persisted kind values.
func validTxKind(n int) bool {
	return n == int(TxDeposit) || n == int(TxWithdraw) || n == int(TxTransfer)
}

// Transaction is one immutable row of the audit trail. It is written
// exactly once, when a balance-affecting operation succeeds, and is never
// rewritten or deleted afterwards. Account references are valid at the
// time of writing but are deliberately not re-checked on load: accounts
// may be closed later while their history remains.
type Transaction struct {
	ID        int
	Kind      TxKind
	AccountID int    // account the money was taken from (or deposited to)
	Amount    Amount // always positive
	DestID    int    // receiving account; equals AccountID unless Kind is TxTransfer
	Stamp     Timestamp
}

// Equal reports semantic equality of two transactions.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Kind == o.Kind &&
		t.AccountID == o.AccountID &&
		t.Amount.Equal(o.Amount) &&
		t.DestID == o.DestID &&
		t.Stamp.Equal(o.Stamp)
}
