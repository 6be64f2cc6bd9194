package ledger

import "errors"

var (
	// ErrInsufficientFunds is returned when a withdrawal would drive the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrRateUnavailable is returned when the conversion strategy has no usable rate for a currency.
	ErrRateUnavailable = errors.New("conversion rate unavailable")

	// ErrInvalidAmount is returned when a deposit or initial balance is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrAlreadyExecuted is returned when executing a transaction that already left the pending state.
	ErrAlreadyExecuted = errors.New("transaction already executed")

	// ErrNotYetExecuted is returned when rolling back a transaction that was never executed.
	ErrNotYetExecuted = errors.New("transaction not yet executed")

	// ErrAlreadyRolledBack is returned when rolling back a transaction a second time.
	ErrAlreadyRolledBack = errors.New("transaction already rolled back")

	// ErrAccountNotFound is returned by the registry when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
)
