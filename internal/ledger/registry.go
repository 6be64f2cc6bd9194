package ledger

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

// Registry is an explicitly constructed directory of accounts. Whoever
// composes the application owns its lifecycle; there is no package-level
// instance.
type Registry struct {
	accounts map[uuid.UUID]*Account
	order    []uuid.UUID
}

// NewRegistry creates an empty account directory.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[uuid.UUID]*Account)}
}

// CreateAccount builds an account via NewAccount and registers it.
func (r *Registry) CreateAccount(owner Owner, currency string, strategy ConversionStrategy, initial decimal.Decimal) (*Account, error) {
	account, err := NewAccount(owner, currency, strategy, initial)
	if err != nil {
		return nil, err
	}
	r.Register(account)

	logger.Log.Infow("account created",
		"account_id", account.ID(),
		"owner", owner.Name,
		"currency", currency,
		"balance", initial,
	)

	return account, nil
}

// Register adds an existing account to the directory. Registering the same
// account twice is a no-op.
func (r *Registry) Register(account *Account) {
	if _, ok := r.accounts[account.ID()]; ok {
		return
	}
	r.accounts[account.ID()] = account
	r.order = append(r.order, account.ID())
}

// Get returns the account with the given ID, or ErrAccountNotFound.
func (r *Registry) Get(id uuid.UUID) (*Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ByOwner returns every registered account whose owner has the given display
// name, in registration order.
func (r *Registry) ByOwner(name string) []*Account {
	var found []*Account
	for _, id := range r.order {
		if account := r.accounts[id]; account.Owner().Name == name {
			found = append(found, account)
		}
	}
	return found
}

// Close removes the account from the directory. The account itself is left
// untouched: its balance, queue, and subscribers survive closure.
func (r *Registry) Close(id uuid.UUID) error {
	if _, ok := r.accounts[id]; !ok {
		return ErrAccountNotFound
	}
	delete(r.accounts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.accounts) }
