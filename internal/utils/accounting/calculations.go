package accounting

import (
	"sort"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateSignedAmount applies the ledger sign to a transaction amount:
// income adds to its balance, expense subtracts from it.
func CalculateSignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.Expense {
		return txn.Amount.Neg()
	}
	return txn.Amount
}

// balanceBucket maps a payment method to the balance it affects. Anything other than cash is bank.
func balanceBucket(method domain.PaymentMethod) domain.PaymentMethod {
	if method == domain.Cash {
		return domain.Cash
	}
	return domain.Bank
}

// TransactionsTotal is the signed sum of every transaction paid with method.
func TransactionsTotal(txns []domain.Transaction, method domain.PaymentMethod) decimal.Decimal {
	bucket := balanceBucket(method)
	sum := decimal.Zero
	for _, txn := range txns {
		if balanceBucket(txn.PaymentMethod) == bucket {
			sum = sum.Add(CalculateSignedAmount(txn))
		}
	}
	return sum
}

// CurrentBalance is the initial balance of method plus its transactions total.
// It is recomputed from the full set on every call and does not depend on order.
func CurrentBalance(initial domain.InitialBalances, txns []domain.Transaction, method domain.PaymentMethod) decimal.Decimal {
	return initial.For(method).Add(TransactionsTotal(txns, method))
}

// Balances computes every current balance at once.
func Balances(initial domain.InitialBalances, txns []domain.Transaction) domain.Balances {
	cash := CurrentBalance(initial, txns, domain.Cash)
	bank := CurrentBalance(initial, txns, domain.Bank)
	return domain.Balances{Cash: cash, Bank: bank, Total: cash.Add(bank)}
}

// InitialBalanceForTarget returns the initial balance that makes the current balance of method equal target.
func InitialBalanceForTarget(txns []domain.Transaction, method domain.PaymentMethod, target decimal.Decimal) decimal.Decimal {
	return target.Sub(TransactionsTotal(txns, method))
}

// MonthlyAggregate sums income and expense of the transactions dated in month.
func MonthlyAggregate(txns []domain.Transaction, month domain.MonthKey) domain.MonthlyTotals {
	totals := domain.MonthlyTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, txn := range txns {
		if !txn.InMonth(month) {
			continue
		}
		switch txn.Type {
		case domain.Income:
			totals.Income = totals.Income.Add(txn.Amount)
		case domain.Expense:
			totals.Expense = totals.Expense.Add(txn.Amount)
		}
	}
	return totals
}

// CategoryBreakdown groups the transactions of txnType by category, sorted by amount descending.
// Equal amounts keep the order in which their category was first seen.
// Percentages are of the type total, rounded to one decimal, and zero when the total is zero.
func CategoryBreakdown(txns []domain.Transaction, txnType domain.TransactionType, resolver domain.CategoryResolver) []domain.CategoryShare {
	index := map[string]int{}
	shares := []domain.CategoryShare{}
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type != txnType {
			continue
		}
		total = total.Add(txn.Amount)
		i, ok := index[txn.Category]
		if !ok {
			i = len(shares)
			index[txn.Category] = i
			shares = append(shares, domain.CategoryShare{
				CategoryID: txn.Category,
				Name:       resolver.Resolve(txn.Category),
				Amount:     decimal.Zero,
			})
		}
		shares[i].Amount = shares[i].Amount.Add(txn.Amount)
	}

	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].Amount.GreaterThan(shares[b].Amount)
	})

	for i := range shares {
		if total.IsZero() {
			shares[i].Percentage = decimal.Zero
			continue
		}
		shares[i].Percentage = shares[i].Amount.Div(total).Mul(hundred).Round(1)
	}
	return shares
}

// HistoryByMonth aggregates every transaction per calendar month, most recent month first.
func HistoryByMonth(txns []domain.Transaction) []domain.MonthHistory {
	byMonth := map[domain.MonthKey]*domain.MonthHistory{}
	keys := []domain.MonthKey{}
	for _, txn := range txns {
		key := txn.Date.MonthKey()
		entry, ok := byMonth[key]
		if !ok {
			entry = &domain.MonthHistory{Year: key.Year, Month: int(key.Month), Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = entry
			keys = append(keys, key)
		}
		switch txn.Type {
		case domain.Income:
			entry.Income = entry.Income.Add(txn.Amount)
		case domain.Expense:
			entry.Expense = entry.Expense.Add(txn.Amount)
		}
	}

	sort.Slice(keys, func(a, b int) bool { return keys[a].After(keys[b]) })

	history := make([]domain.MonthHistory, len(keys))
	for i, key := range keys {
		history[i] = *byMonth[key]
	}
	return history
}

// ActiveInstallmentTotal sums the outstanding amount of every installment.
func ActiveInstallmentTotal(installments []domain.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range installments {
		total = total.Add(inst.RemainingAmount())
	}
	return total
}

// WaitingDebtTotals sums unpaid debts per direction.
func WaitingDebtTotals(debts []domain.Debt) domain.DebtTotals {
	totals := domain.DebtTotals{Receivable: decimal.Zero, Payable: decimal.Zero}
	for _, d := range debts {
		if d.Status != domain.DebtWaiting {
			continue
		}
		if d.Type == domain.Receivable {
			totals.Receivable = totals.Receivable.Add(d.Amount)
		} else {
			totals.Payable = totals.Payable.Add(d.Amount)
		}
	}
	return totals
}

// SortByDateDesc orders transactions newest date first, then newest creation first.
func SortByDateDesc(txns []domain.Transaction) {
	sort.SliceStable(txns, func(a, b int) bool {
		if c := txns[a].Date.Compare(txns[b].Date); c != 0 {
			return c > 0
		}
		return txns[a].CreatedAt.After(txns[b].CreatedAt)
	})
}
