package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotals is the income and expense of one calendar month.
type MonthlyTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryShare is one row of a category breakdown.
type CategoryShare struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"` // 0..100, zero when the type total is zero
}

// MonthHistory is the aggregate of one month in the transaction history.
type MonthHistory struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Balances are the current cash and bank balances.
type Balances struct {
	Cash  decimal.Decimal `json:"cash"`
	Bank  decimal.Decimal `json:"bank"`
	Total decimal.Decimal `json:"total"`
}

// Summary is the dashboard view computed at session start.
type Summary struct {
	Today                  Date            `json:"today"`
	MonthIncome            decimal.Decimal `json:"monthIncome"`
	MonthExpense           decimal.Decimal `json:"monthExpense"`
	Balances               Balances        `json:"balances"`
	ActiveInstallmentTotal decimal.Decimal `json:"activeInstallmentTotal"`
}

// CatchUpFailure records why one installment or template was abandoned during a catch-up run.
type CatchUpFailure struct {
	SourceID string `json:"sourceId"`
	Message  string `json:"error"`
	err      error
}

// CatchUpReport summarises one projector run.
type CatchUpReport struct {
	Processed  int              `json:"processed"`  // Items examined
	Created    int              `json:"created"`    // Transactions materialized
	Reconciled int              `json:"reconciled"` // Periods found already covered
	Failures   []CatchUpFailure `json:"failures"`
}

// AddFailure records an aborted item.
func (r *CatchUpReport) AddFailure(sourceID string, err error) {
	r.Failures = append(r.Failures, CatchUpFailure{SourceID: sourceID, Message: err.Error(), err: err})
}

// Merge folds other into r.
func (r *CatchUpReport) Merge(other CatchUpReport) {
	r.Processed += other.Processed
	r.Created += other.Created
	r.Reconciled += other.Reconciled
	r.Failures = append(r.Failures, other.Failures...)
}

// Err joins every recorded failure, or returns nil when the run was clean.
func (r CatchUpReport) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		cause := f.err
		if cause == nil {
			cause = errors.New(f.Message)
		}
		errs = append(errs, fmt.Errorf("%s: %w", f.SourceID, cause))
	}
	return errors.Join(errs...)
}

// SessionReport is the outcome of starting a session.
type SessionReport struct {
	Installments CatchUpReport `json:"installments"`
	Recurring    CatchUpReport `json:"recurring"`
	Summary      Summary       `json:"summary"`
}

// Snapshot is a complete export of one user's data.
type Snapshot struct {
	UserID             string              `json:"userId" yaml:"userId"`
	ExportedAt         time.Time           `json:"exportedAt" yaml:"exportedAt"`
	Settings           Settings            `json:"settings" yaml:"settings"`
	Transactions       []Transaction       `json:"transactions" yaml:"transactions"`
	Installments       []Installment       `json:"installments" yaml:"installments"`
	RecurringTemplates []RecurringTemplate `json:"recurringTemplates" yaml:"recurringTemplates"`
	Debts              []Debt              `json:"debts" yaml:"debts"`
}
