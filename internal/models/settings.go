package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the stored form of a custom category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomCategories is serialized as a single JSON document.
type CustomCategories struct {
	Income  []Category `json:"income"`
	Expense []Category `json:"expense"`
}

// Settings is the stored form of a user's settings.
type Settings struct {
	UserID           string           `json:"userID"`
	InitialCash      decimal.Decimal  `json:"initialCash"`
	InitialBank      decimal.Decimal  `json:"initialBank"`
	CustomCategories CustomCategories `json:"customCategories"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}
