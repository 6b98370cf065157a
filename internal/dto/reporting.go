package dto

import (
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// MonthlyAggregateResponse is the income and expense of a requested month.
type MonthlyAggregateResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	domain.MonthlyTotals
}

// CategoryBreakdownParams defines the query parameters of a category breakdown.
type CategoryBreakdownParams struct {
	Type  string `form:"type" binding:"required,oneof=income expense"`
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// MonthQuery selects a calendar month.
type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"` // Defaults to the current month
}
