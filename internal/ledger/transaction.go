package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

// Transaction lifecycle states.
const (
	StatusPending    = "PENDING"
	StatusExecuted   = "EXECUTED"
	StatusRolledBack = "ROLLED_BACK"
)

// Transaction is a single withdrawal bound to one account. It can be executed
// at most once and rolled back at most once, and only after execution.
type Transaction struct {
	id            uuid.UUID
	account       *Account
	amount        decimal.Decimal
	currency      string
	status        string
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal
}

// NewTransaction creates a pending withdrawal of amount (expressed in
// currency) against account.
func NewTransaction(account *Account, amount decimal.Decimal, currency string) *Transaction {
	return &Transaction{
		id:       uuid.New(),
		account:  account,
		amount:   amount,
		currency: currency,
		status:   StatusPending,
	}
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() uuid.UUID { return t.id }

// Status returns the current lifecycle state.
func (t *Transaction) Status() string { return t.status }

// Amount returns the requested amount in the transaction's currency.
func (t *Transaction) Amount() decimal.Decimal { return t.amount }

// Currency returns the currency the requested amount is expressed in.
func (t *Transaction) Currency() string { return t.currency }

// Execute withdraws the transaction's amount from its account, recording the
// balance immediately before and after. It fails with ErrAlreadyExecuted if
// the transaction is no longer pending. A withdrawal error propagates
// unchanged and leaves the transaction pending.
func (t *Transaction) Execute(ctx context.Context) error {
	if t.status != StatusPending {
		return ErrAlreadyExecuted
	}

	t.balanceBefore = t.account.Balance()
	if err := t.account.Withdraw(ctx, t.amount, t.currency); err != nil {
		return err
	}
	t.balanceAfter = t.account.Balance()
	t.status = StatusExecuted

	logger.Log.Infow("transaction executed",
		"transaction_id", t.id,
		"account_id", t.account.ID(),
		"amount", t.amount,
		"currency", t.currency,
	)

	return nil
}

// Rollback credits back the observed balance delta from Execute and marks the
// transaction rolled back. The delta, not the requested amount, is restored:
// the requested amount may be in a foreign currency, and replaying it through
// the strategy could apply a rate that has since changed. It fails with
// ErrNotYetExecuted before execution and ErrAlreadyRolledBack after a
// previous rollback.
func (t *Transaction) Rollback(ctx context.Context) error {
	switch t.status {
	case StatusPending:
		return ErrNotYetExecuted
	case StatusRolledBack:
		return ErrAlreadyRolledBack
	}

	delta := t.balanceBefore.Sub(t.balanceAfter)
	if err := t.account.credit(ctx, delta, OpRollback); err != nil {
		return err
	}
	t.status = StatusRolledBack

	logger.Log.Infow("transaction rolled back",
		"transaction_id", t.id,
		"account_id", t.account.ID(),
		"restored", delta,
	)

	return nil
}
