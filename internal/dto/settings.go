package dto

import (
	"github.com/shopspring/decimal"
)

// SetBalanceRequest sets a balance of one payment method.
// Used both for the initial balance and for the target current balance.
type SetBalanceRequest struct {
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash bank"`
	Amount        decimal.Decimal `json:"amount"`
}

// SetBalanceResponse returns the initial balance in effect after the change.
type SetBalanceResponse struct {
	PaymentMethod  string          `json:"paymentMethod"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// AddCategoryRequest defines a new custom category.
type AddCategoryRequest struct {
	Type string `json:"type" binding:"required,oneof=income expense"`
	Name string `json:"name" binding:"required,max=60"`
}

// ListCategoriesParams selects the category list of one transaction type.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"required,oneof=income expense"`
}
