// Package snapshot holds the point-in-time view of all domain collections and
// the reducers that produce updated views. Reducers never edit a snapshot in
// place: each one returns a new Snapshot with fresh slices, so a caller can
// keep handing the previous value to the engine while applying updates.
package snapshot

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

var (
	// ErrWalletNotFound is returned when a reducer references an unknown wallet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrBudgetNotFound is returned when a reducer references an unknown budget.
	ErrBudgetNotFound = errors.New("budget not found")
)

// Snapshot is an immutable view of the application's domain collections.
type Snapshot struct {
	Transactions []model.Transaction
	Wallets      []model.Wallet
	Budgets      []model.Budget
	User         model.User
}

// AddTransaction appends a transaction and applies its signed amount to the
// owning wallet's balance. The wallet must exist.
func (s Snapshot) AddTransaction(t model.Transaction) (Snapshot, error) {
	idx := s.walletIndex(t.WalletID)
	if idx < 0 {
		return s, ErrWalletNotFound
	}

	next := s.clone()
	t.WalletName = next.Wallets[idx].Name
	next.Wallets[idx].Balance = next.Wallets[idx].Balance.Add(t.Signed())
	next.Transactions = append(next.Transactions, t)
	return next, nil
}

// RemoveTransaction deletes a transaction by ID and reverses its balance
// effect on the owning wallet. Removing an unknown ID is a no-op.
func (s Snapshot) RemoveTransaction(id string) Snapshot {
	next := s.clone()
	for i, t := range next.Transactions {
		if t.ID != id {
			continue
		}
		if idx := next.walletIndex(t.WalletID); idx >= 0 {
			next.Wallets[idx].Balance = next.Wallets[idx].Balance.Sub(t.Signed())
		}
		next.Transactions = append(next.Transactions[:i], next.Transactions[i+1:]...)
		break
	}
	return next
}

// AddWallet appends a wallet.
func (s Snapshot) AddWallet(w model.Wallet) Snapshot {
	next := s.clone()
	next.Wallets = append(next.Wallets, w)
	return next
}

// RemoveWallet deletes a wallet by ID. Transactions referencing it are kept;
// their denormalized wallet name remains as recorded.
func (s Snapshot) RemoveWallet(id string) Snapshot {
	next := s.clone()
	for i, w := range next.Wallets {
		if w.ID == id {
			next.Wallets = append(next.Wallets[:i], next.Wallets[i+1:]...)
			break
		}
	}
	return next
}

// AddBudget appends a budget.
func (s Snapshot) AddBudget(b model.Budget) Snapshot {
	next := s.clone()
	next.Budgets = append(next.Budgets, b)
	return next
}

// RemoveBudget deletes a budget by ID.
func (s Snapshot) RemoveBudget(id string) Snapshot {
	next := s.clone()
	for i, b := range next.Budgets {
		if b.ID == id {
			next.Budgets = append(next.Budgets[:i], next.Budgets[i+1:]...)
			break
		}
	}
	return next
}

// AddSpend increments a budget's accumulated spend. This is the only way
// spend moves; it is never derived from the transaction set.
func (s Snapshot) AddSpend(budgetID string, amount decimal.Decimal) (Snapshot, error) {
	next := s.clone()
	for i, b := range next.Budgets {
		if b.ID == budgetID {
			next.Budgets[i].Spent = b.Spent.Add(amount)
			return next, nil
		}
	}
	return s, ErrBudgetNotFound
}

// PreferencesPatch is a partial preferences update; nil fields are left alone.
type PreferencesPatch struct {
	Currency      *string
	Theme         *model.Theme
	Notifications *bool
}

// SetPreferences merges a patch into the user's preferences field by field.
func (s Snapshot) SetPreferences(patch PreferencesPatch) Snapshot {
	next := s.clone()
	if patch.Currency != nil {
		next.User.Preferences.Currency = *patch.Currency
	}
	if patch.Theme != nil {
		next.User.Preferences.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		next.User.Preferences.Notifications = *patch.Notifications
	}
	return next
}

// Wallet returns the wallet with the given ID.
func (s Snapshot) Wallet(id string) (model.Wallet, bool) {
	if idx := s.walletIndex(id); idx >= 0 {
		return s.Wallets[idx], true
	}
	return model.Wallet{}, false
}

// Budget returns the budget with the given ID.
func (s Snapshot) Budget(id string) (model.Budget, bool) {
	for _, b := range s.Budgets {
		if b.ID == id {
			return b, true
		}
	}
	return model.Budget{}, false
}

func (s Snapshot) walletIndex(id string) int {
	for i, w := range s.Wallets {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) clone() Snapshot {
	next := Snapshot{
		Transactions: make([]model.Transaction, len(s.Transactions)),
		Wallets:      make([]model.Wallet, len(s.Wallets)),
		Budgets:      make([]model.Budget, len(s.Budgets)),
		User:         s.User,
	}
	copy(next.Transactions, s.Transactions)
	copy(next.Wallets, s.Wallets)
	copy(next.Budgets, s.Budgets)
	return next
}
