package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	categoryService portssvc.CategorySvcFacade
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, categoryService portssvc.CategorySvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService, categoryService: categoryService}

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the user's transactions, newest first, optionally filtered by type and month
// @Tags transactions
// @Produce json
// @Param type query string false "all, income or expense"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	txns, next, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	resolver, err := h.categoryService.Resolver(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns, resolver),
		NextToken:    next,
	})
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a manual income or expense
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, txn)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the editable fields; the id, creation time and installment/recurring links are kept
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))
	var req dto.TransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated")
	c.JSON(http.StatusOK, txn)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction. Installment progress is not rolled back. Unknown ids succeed.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}
