package teller

import "errors"

// Domain errors. All of them except ErrStorageUnavailable are expected
// business outcomes: callers branch on them with errors.Is and turn them
// into a specific message, they never crash a session.
var (
	// ErrStorageUnavailable reports that a ledger file could not be
	// created or opened. It is fatal for the affected store and is the
	// only error that propagates to the top level.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrBalanceTooLow reports an attempt to set a balance below the
	// account kind's floor. The account is left unchanged.
	ErrBalanceTooLow = errors.New("balance below account floor")

	// ErrInsufficientFunds reports a withdrawal or transfer that the
	// balance (plus credit, for checking accounts) cannot cover.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransferLimitReached reports a withdrawal from a savings
	// account inside its 30-day transfer window.
	ErrTransferLimitReached = errors.New("savings transfer limit reached")

	// ErrInvalidAmount reports a zero or negative operation amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAccountNotEmpty reports an attempt to close an account whose
	// balance is not exactly zero.
	ErrAccountNotEmpty = errors.New("account balance is not zero")

	// ErrCustomerHasFunds reports an attempt to delete a customer that
	// still owns an account with a nonzero balance.
	ErrCustomerHasFunds = errors.New("customer owns accounts with a nonzero balance")

	// ErrSameAccount reports a transfer whose source and destination are
	// the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrNotFound reports a lookup of an unknown customer or account id.
	ErrNotFound = errors.New("not found")

	// ErrBadPassword reports a failed authentication.
	ErrBadPassword = errors.New("wrong password")
)
