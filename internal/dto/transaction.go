package dto

import (
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRequest defines the data needed to create or edit a transaction.
type TransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash bank"`
	Amount        decimal.Decimal `json:"amount" binding:"gte=0"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description" binding:"max=255"`
}

// ToDomain converts the request into an unsaved transaction.
func (r TransactionRequest) ToDomain() (domain.Transaction, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		Type:          domain.TransactionType(r.Type),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Amount:        r.Amount,
		Date:          date,
		Category:      r.Category,
		Description:   r.Description,
	}, nil
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=all income expense"`
	Month     string `form:"month" binding:"omitempty,datetime=2006-01"` // YYYY-MM
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// TransactionResponse is a transaction together with its resolved category name.
type TransactionResponse struct {
	domain.Transaction
	CategoryName string `json:"categoryName"`
}

// ToTransactionResponses converts transactions, resolving category names with resolver.
func ToTransactionResponses(txns []domain.Transaction, resolver domain.CategoryResolver) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = TransactionResponse{Transaction: txn, CategoryName: resolver.Resolve(txn.Category)}
	}
	return responses
}
