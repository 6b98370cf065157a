package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to receivables and payables.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// RegisterDebtRoutes registers routes related to debts.
func RegisterDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := &debtHandler{debtService: debtService}

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.POST("", h.createDebt)
		debts.GET("/totals", h.waitingTotals)
		debts.PUT("/:id", h.updateDebt)
		debts.POST("/:id/paid", h.markPaid)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

// listDebts godoc
// @Summary List debts
// @Tags debts
// @Produce json
// @Success 200 {array} domain.Debt
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListDebts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list debts")
		return
	}
	c.JSON(http.StatusOK, debts)
}

// createDebt godoc
// @Summary Record a debt
// @Description Records money owed to or by someone. Debts never affect balances.
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.DebtRequest true "Debt details"
// @Success 201 {object} domain.Debt
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DebtRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create debt")
		return
	}

	logger.Info("Debt created", slog.String("debt_id", debt.ID))
	c.JSON(http.StatusCreated, debt)
}

// updateDebt godoc
// @Summary Update a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param debt body dto.DebtRequest true "Debt details"
// @Success 200 {object} domain.Debt
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to update debt"
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("debt_id", c.Param("id")))
	var req dto.DebtRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update debt")
		return
	}

	logger.Info("Debt updated")
	c.JSON(http.StatusOK, debt)
}

// markPaid godoc
// @Summary Mark a debt as paid
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} domain.Debt
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to mark debt as paid"
// @Security BearerAuth
// @Router /debts/{id}/paid [post]
func (h *debtHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("debt_id", c.Param("id")))

	debt, err := h.debtService.MarkDebtPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark debt as paid")
		return
	}

	logger.Info("Debt marked as paid")
	c.JSON(http.StatusOK, debt)
}

// deleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Param id path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete debt"
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("debt_id", c.Param("id")))

	if err := h.debtService.DeleteDebt(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete debt")
		return
	}

	logger.Info("Debt deleted")
	c.Status(http.StatusNoContent)
}

// waitingTotals godoc
// @Summary Totals of unpaid debts
// @Tags debts
// @Produce json
// @Success 200 {object} domain.DebtTotals
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute debt totals"
// @Security BearerAuth
// @Router /debts/totals [get]
func (h *debtHandler) waitingTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.debtService.WaitingTotals(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute debt totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}
