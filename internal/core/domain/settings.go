package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitialBalances are the opening balances the ledger builds on.
type InitialBalances struct {
	Cash decimal.Decimal `json:"cash" yaml:"cash"`
	Bank decimal.Decimal `json:"bank" yaml:"bank"`
}

// For returns the initial balance of the given method. Anything other than cash counts as bank.
func (b InitialBalances) For(method PaymentMethod) decimal.Decimal {
	if method == Cash {
		return b.Cash
	}
	return b.Bank
}

// With returns a copy with the initial balance of method replaced.
func (b InitialBalances) With(method PaymentMethod, amount decimal.Decimal) InitialBalances {
	if method == Cash {
		b.Cash = amount
	} else {
		b.Bank = amount
	}
	return b
}

// Settings holds the per-user configuration persisted next to the ledger.
type Settings struct {
	InitialBalances  InitialBalances  `json:"initialBalances" yaml:"initialBalances"`
	CustomCategories CustomCategories `json:"customCategories" yaml:"customCategories"`
	UpdatedAt        time.Time        `json:"updatedAt" yaml:"updatedAt"`
}

// DefaultSettings is what a first-time user starts with.
func DefaultSettings() Settings {
	return Settings{
		InitialBalances: InitialBalances{Cash: decimal.Zero, Bank: decimal.Zero},
		CustomCategories: CustomCategories{
			Income:  []Category{},
			Expense: []Category{},
		},
	}
}
