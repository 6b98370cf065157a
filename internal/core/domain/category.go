package domain

import (
	"fmt"
	"time"
)

// Category is a named bucket transactions are tagged with.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CustomCategories are the user-defined categories per transaction type.
type CustomCategories struct {
	Income  []Category `json:"income" yaml:"income"`
	Expense []Category `json:"expense" yaml:"expense"`
}

// For returns the custom categories of the given type.
func (c CustomCategories) For(t TransactionType) []Category {
	if t == Income {
		return c.Income
	}
	return c.Expense
}

// CategoryBills is the category installment payments are booked under.
const CategoryBills = "bills"

// BuiltinIncomeCategories are always available for income.
var BuiltinIncomeCategories = []Category{
	{ID: "salary", Name: "Maaş"},
	{ID: "freelance", Name: "Serbest Çalışma"},
	{ID: "investment", Name: "Yatırım"},
	{ID: "other-income", Name: "Diğer Gelir"},
}

// BuiltinExpenseCategories are always available for expenses.
var BuiltinExpenseCategories = []Category{
	{ID: "food", Name: "Yiyecek & İçecek"},
	{ID: "transport", Name: "Ulaşım"},
	{ID: CategoryBills, Name: "Faturalar"},
	{ID: "shopping", Name: "Alışveriş"},
	{ID: "health", Name: "Sağlık"},
	{ID: "entertainment", Name: "Eğlence"},
	{ID: "other-expense", Name: "Diğer Gider"},
}

// NewCustomCategoryID returns the id assigned to a custom category created at t.
func NewCustomCategoryID(t TransactionType, at time.Time) string {
	return fmt.Sprintf("custom_%s_%d", t, at.UnixMilli())
}

// CategoryResolver maps category ids to display names.
type CategoryResolver struct {
	builtin map[string]string
	custom  CustomCategories
}

// NewCategoryResolver builds a resolver over the built-in table and the given custom categories.
func NewCategoryResolver(custom CustomCategories) CategoryResolver {
	builtin := make(map[string]string, len(BuiltinIncomeCategories)+len(BuiltinExpenseCategories))
	for _, c := range BuiltinIncomeCategories {
		builtin[c.ID] = c.Name
	}
	for _, c := range BuiltinExpenseCategories {
		builtin[c.ID] = c.Name
	}
	return CategoryResolver{builtin: builtin, custom: custom}
}

// Resolve returns the display name for id: built-in first, then custom income,
// then custom expense. Unknown ids are returned unchanged.
func (r CategoryResolver) Resolve(id string) string {
	if name, ok := r.builtin[id]; ok {
		return name
	}
	for _, c := range r.custom.Income {
		if c.ID == id {
			return c.Name
		}
	}
	for _, c := range r.custom.Expense {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// Available lists the built-in and custom categories of a transaction type.
func (r CategoryResolver) Available(t TransactionType) []Category {
	builtin := BuiltinExpenseCategories
	if t == Income {
		builtin = BuiltinIncomeCategories
	}
	out := make([]Category, 0, len(builtin)+len(r.custom.For(t)))
	out = append(out, builtin...)
	return append(out, r.custom.For(t)...)
}
