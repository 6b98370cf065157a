// Package main is the entry point for the finance tracker server and CLI.
package main

import (
	"os"

	"github.com/Basri-akbas/Finance-Tracker/cmd/financetracker/cmd"
)

//go:generate swag init -g main.go -d ./,../../internal/handlers,../../internal/dto,../../internal/core/domain -o ../docs

// @title Finance Tracker API
// @version 1.0
// @description Personal finance tracker: ledger, installments, recurring payments and debts.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
