package domain_test

import (
	"testing"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategoryResolver_Resolve(t *testing.T) {
	resolver := domain.NewCategoryResolver(domain.CustomCategories{
		Income:  []domain.Category{{ID: "custom_income_1", Name: "Kira Geliri"}, {ID: "dup", Name: "from income"}},
		Expense: []domain.Category{{ID: "custom_expense_2", Name: "Aidat"}, {ID: "dup", Name: "from expense"}},
	})

	tests := []struct {
		id   string
		want string
	}{
		{id: "salary", want: "Maaş"},
		{id: "bills", want: "Faturalar"},
		{id: "custom_income_1", want: "Kira Geliri"},
		{id: "custom_expense_2", want: "Aidat"},
		{id: "dup", want: "from income"},
		{id: "no-such-category", want: "no-such-category"},
		{id: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.id))
		})
	}
}

func TestCategoryResolver_Available(t *testing.T) {
	resolver := domain.NewCategoryResolver(domain.CustomCategories{
		Expense: []domain.Category{{ID: "custom_expense_2", Name: "Aidat"}},
	})

	assert.Len(t, resolver.Available(domain.Income), 4)
	expense := resolver.Available(domain.Expense)
	assert.Len(t, expense, 8)
	assert.Equal(t, "custom_expense_2", expense[7].ID)
}

func TestNewCustomCategoryID(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "custom_expense_1700000000123", domain.NewCustomCategoryID(domain.Expense, at))
}
