package handlers

import (
	"net/http"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the figures derived from the ledger.
type reportingHandler struct {
	ledgerService portssvc.LedgerReaderSvc
	clock         portssvc.Clock
}

// RegisterReportingRoutes registers the reporting routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc, clock portssvc.Clock) {
	h := &reportingHandler{ledgerService: ledgerService, clock: clock}

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.balances)
		reports.GET("/monthly", h.monthlyAggregate)
		reports.GET("/categories", h.categoryBreakdown)
		reports.GET("/history", h.history)
	}
}

// balances godoc
// @Summary Current balances
// @Description Initial balance plus the signed sum of transactions, per payment method
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Balances
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) balances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.ledgerService.Balances(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}

// monthlyAggregate godoc
// @Summary Monthly income and expense
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.MonthlyAggregateResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute monthly totals"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyAggregate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.MonthQuery
	if !bindQuery(c, logger, &query) {
		return
	}
	month, err := h.monthOrCurrent(query.Month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly totals")
		return
	}

	totals, err := h.ledgerService.MonthlyAggregate(c.Request.Context(), month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly totals")
		return
	}
	c.JSON(http.StatusOK, dto.MonthlyAggregateResponse{
		Year:          month.Year,
		Month:         int(month.Month),
		MonthlyTotals: *totals,
	})
}

// categoryBreakdown godoc
// @Summary Category breakdown
// @Description Amount and share per category, largest first. Without a month all transactions are used.
// @Tags reports
// @Produce json
// @Param type query string true "income or expense"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {array} domain.CategoryShare
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute category breakdown"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CategoryBreakdownParams
	if !bindQuery(c, logger, &params) {
		return
	}

	var month *domain.MonthKey
	if params.Month != "" {
		m, err := domain.ParseMonthKey(params.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		month = &m
	}

	shares, err := h.ledgerService.CategoryBreakdown(c.Request.Context(), domain.TransactionType(params.Type), month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute category breakdown")
		return
	}
	c.JSON(http.StatusOK, shares)
}

// history godoc
// @Summary Monthly history
// @Description Income and expense per month, most recent first
// @Tags reports
// @Produce json
// @Success 200 {array} domain.MonthHistory
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute history"
// @Security BearerAuth
// @Router /reports/history [get]
func (h *reportingHandler) history(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	history, err := h.ledgerService.HistoryByMonth(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute history")
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *reportingHandler) monthOrCurrent(raw string) (domain.MonthKey, error) {
	if raw == "" {
		return h.clock.Today().MonthKey(), nil
	}
	month, err := domain.ParseMonthKey(raw)
	if err != nil {
		return domain.MonthKey{}, apperrors.NewValidationError("%v", err)
	}
	return month, nil
}
