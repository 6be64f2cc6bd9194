package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=account.go -destination=mocks.go -package=ledger

// Account operation names, as reported by LastOperation.
const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpRollback = "rollback"
)

// Subscriber receives balance-change events from an account.
// Implementations must be comparable (in practice, pointer types):
// Attach and Detach compare subscribers by interface equality.
type Subscriber interface {
	OnBalanceChanged(ctx context.Context, account *Account) error // Called synchronously after every committed balance change
}

// Owner identifies who an account belongs to. The ledger never inspects it
// beyond identity and display name.
type Owner struct {
	ID   uuid.UUID
	Name string
}

// NewOwner creates an owner with a fresh identifier.
func NewOwner(name string) Owner {
	return Owner{ID: uuid.New(), Name: name}
}

// Account holds a balance in a single currency, a swappable conversion
// strategy, a queue of pending transactions, and a set of subscribers.
//
// Accounts are not safe for concurrent use; callers running from multiple
// goroutines must serialize access themselves.
type Account struct {
	id            uuid.UUID
	owner         Owner
	currency      string
	balance       decimal.Decimal
	strategy      ConversionStrategy
	pending       []*Transaction
	subscribers   []Subscriber
	lastOperation string
}

// NewAccount creates an account for owner in the given currency.
// A nil strategy defaults to a 1:1 fixed rate. A negative initial balance
// fails with ErrInvalidAmount.
func NewAccount(owner Owner, currency string, strategy ConversionStrategy, initial decimal.Decimal) (*Account, error) {
	if initial.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if strategy == nil {
		strategy = NewFixedRateStrategy(decimal.NewFromInt(1))
	}
	return &Account{
		id:       uuid.New(),
		owner:    owner,
		currency: currency,
		balance:  initial,
		strategy: strategy,
	}, nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() uuid.UUID { return a.id }

// Owner returns the account's owner reference.
func (a *Account) Owner() Owner { return a.owner }

// Currency returns the account's currency code.
func (a *Account) Currency() string { return a.currency }

// Balance returns the current balance in the account's currency.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// LastOperation returns the name of the last committed balance change
// (OpDeposit, OpWithdraw, or OpRollback), or the empty string before the
// first one. Subscribers read it to label the change they are told about.
func (a *Account) LastOperation() string { return a.lastOperation }

// SetStrategy swaps the active conversion strategy. The new strategy takes
// effect on the next withdrawal only.
func (a *Account) SetStrategy(strategy ConversionStrategy) {
	a.strategy = strategy
}

// Deposit increases the balance by amount and notifies subscribers.
// A non-positive amount fails with ErrInvalidAmount.
func (a *Account) Deposit(ctx context.Context, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return a.credit(ctx, amount, OpDeposit)
}

// credit applies amount to the balance without validating it. Rollback uses
// this path directly because a legitimate rollback delta can be zero.
func (a *Account) credit(ctx context.Context, amount decimal.Decimal, operation string) error {
	a.balance = a.balance.Add(amount)
	a.lastOperation = operation

	logger.Log.Infow("credit applied",
		"account_id", a.id,
		"operation", operation,
		"amount", amount,
		"balance", a.balance,
	)

	return a.Notify(ctx)
}

// Withdraw converts amount from the given currency via the active strategy
// and subtracts the result from the balance. If the converted amount exceeds
// the balance it fails with ErrInsufficientFunds and nothing is mutated or
// notified.
func (a *Account) Withdraw(ctx context.Context, amount decimal.Decimal, currency string) error {
	converted, err := a.strategy.Convert(amount, currency)
	if err != nil {
		logger.Log.Errorw("failed to convert withdrawal amount",
			"account_id", a.id,
			"amount", amount,
			"currency", currency,
			"error", err,
		)
		return err
	}

	if converted.GreaterThan(a.balance) {
		logger.Log.Errorw("withdrawal rejected",
			"account_id", a.id,
			"requested", converted,
			"balance", a.balance,
			"error", ErrInsufficientFunds,
		)
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(converted)
	a.lastOperation = OpWithdraw

	logger.Log.Infow("withdrawal applied",
		"account_id", a.id,
		"amount", amount,
		"currency", currency,
		"converted", converted,
		"balance", a.balance,
	)

	return a.Notify(ctx)
}

// Attach adds a subscriber. Attaching a subscriber that is already present is a no-op.
func (a *Account) Attach(sub Subscriber) {
	for _, existing := range a.subscribers {
		if existing == sub {
			return
		}
	}
	a.subscribers = append(a.subscribers, sub)
}

// Detach removes a subscriber. Detaching a subscriber that is not present is a no-op.
func (a *Account) Detach(sub Subscriber) {
	for i, existing := range a.subscribers {
		if existing == sub {
			a.subscribers = append(a.subscribers[:i], a.subscribers[i+1:]...)
			return
		}
	}
}

// Notify delivers the current account state to every subscriber in attachment
// order. The first subscriber error aborts the round and propagates.
func (a *Account) Notify(ctx context.Context) error {
	for _, sub := range a.subscribers {
		if err := sub.OnBalanceChanged(ctx, a); err != nil {
			logger.Log.Errorw("subscriber failed",
				"account_id", a.id,
				"error", err,
			)
			return err
		}
	}
	return nil
}

// Enqueue appends tx to the pending queue without executing it.
func (a *Account) Enqueue(tx *Transaction) {
	a.pending = append(a.pending, tx)
}

// Pending returns the number of queued transactions.
func (a *Account) Pending() int { return len(a.pending) }

// ExecuteQueued executes every queued transaction in insertion order and then
// clears the queue. If a transaction fails, the failure propagates
// immediately: earlier transactions stay executed, no compensation runs, and
// the queue is left untouched so that RollbackQueued can still reach the
// executed entries.
func (a *Account) ExecuteQueued(ctx context.Context) error {
	for _, tx := range a.pending {
		if err := tx.Execute(ctx); err != nil {
			logger.Log.Errorw("queued transaction failed",
				"account_id", a.id,
				"transaction_id", tx.ID(),
				"error", err,
			)
			return err
		}
	}
	a.pending = nil
	return nil
}

// RollbackQueued pops transactions from the tail of the queue and rolls each
// back. The first rollback failure propagates and stops the loop; the failed
// transaction stays popped and the remaining queued transactions are left
// untouched.
func (a *Account) RollbackQueued(ctx context.Context) error {
	for len(a.pending) > 0 {
		last := len(a.pending) - 1
		tx := a.pending[last]
		a.pending = a.pending[:last]

		if err := tx.Rollback(ctx); err != nil {
			logger.Log.Errorw("rollback failed",
				"account_id", a.id,
				"transaction_id", tx.ID(),
				"error", err,
			)
			return err
		}
	}
	return nil
}
