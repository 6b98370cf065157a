package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// settingsHandler handles initial balances and custom categories.
type settingsHandler struct {
	balanceService  portssvc.BalanceSvcFacade
	categoryService portssvc.CategorySvcFacade
	ledgerService   portssvc.LedgerReaderSvc
}

// RegisterSettingsRoutes registers the settings and category routes.
func RegisterSettingsRoutes(
	rg *gin.RouterGroup,
	balanceService portssvc.BalanceSvcFacade,
	categoryService portssvc.CategorySvcFacade,
	ledgerService portssvc.LedgerReaderSvc,
) {
	h := &settingsHandler{balanceService: balanceService, categoryService: categoryService, ledgerService: ledgerService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("/initial-balance", h.setInitialBalance)
		settings.PUT("/target-balance", h.setTargetBalance)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.addCategory)
		categories.DELETE("/:type/:id", h.deleteCategory)
	}
}

// getSettings godoc
// @Summary Get settings
// @Description Returns initial balances and custom categories; a first-time user gets zero balances and empty lists
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.balanceService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// setInitialBalance godoc
// @Summary Set an initial balance
// @Tags settings
// @Accept json
// @Produce json
// @Param balance body dto.SetBalanceRequest true "Payment method and initial balance"
// @Success 200 {object} dto.SetBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set initial balance"
// @Security BearerAuth
// @Router /settings/initial-balance [put]
func (h *settingsHandler) setInitialBalance(c *gin.Context) {
	h.setBalance(c, h.balanceService.SetInitialBalance, "Failed to set initial balance")
}

// setTargetBalance godoc
// @Summary Set the current balance
// @Description Back-solves the initial balance so the current balance of the method equals the amount
// @Tags settings
// @Accept json
// @Produce json
// @Param balance body dto.SetBalanceRequest true "Payment method and target current balance"
// @Success 200 {object} dto.SetBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set balance"
// @Security BearerAuth
// @Router /settings/target-balance [put]
func (h *settingsHandler) setTargetBalance(c *gin.Context) {
	h.setBalance(c, h.balanceService.SetTargetBalance, "Failed to set balance")
}

func (h *settingsHandler) setBalance(
	c *gin.Context,
	set func(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, error),
	failMsg string,
) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBalanceRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	method := domain.PaymentMethod(req.PaymentMethod)

	initial, err := set(c.Request.Context(), method, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, failMsg)
		return
	}
	current, err := h.ledgerService.CurrentBalance(c.Request.Context(), method)
	if err != nil {
		respondServiceError(c, logger, err, failMsg)
		return
	}

	logger.Info("Initial balance stored", slog.String("payment_method", string(method)), slog.String("initial", initial.String()))
	c.JSON(http.StatusOK, dto.SetBalanceResponse{
		PaymentMethod:  string(method),
		InitialBalance: initial,
		CurrentBalance: current,
	})
}

// listCategories godoc
// @Summary List categories
// @Description Built-in categories followed by the user's custom ones
// @Tags categories
// @Produce json
// @Param type query string true "income or expense"
// @Success 200 {array} domain.Category
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *settingsHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCategoriesParams
	if !bindQuery(c, logger, &params) {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), domain.TransactionType(params.Type))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// addCategory godoc
// @Summary Add a custom category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.AddCategoryRequest true "Category type and name"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to add category"
// @Security BearerAuth
// @Router /categories [post]
func (h *settingsHandler) addCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	category, err := h.categoryService.AddCustomCategory(c.Request.Context(), domain.TransactionType(req.Type), req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add category")
		return
	}

	logger.Info("Custom category added", slog.String("category_id", category.ID))
	c.JSON(http.StatusCreated, category)
}

// deleteCategory godoc
// @Summary Delete a custom category
// @Description Transactions keep the removed id and display it raw
// @Tags categories
// @Param type path string true "income or expense"
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid category type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Security BearerAuth
// @Router /categories/{type}/{id} [delete]
func (h *settingsHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", c.Param("id")))

	err := h.categoryService.DeleteCustomCategory(c.Request.Context(), domain.TransactionType(c.Param("type")), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete category")
		return
	}

	logger.Info("Custom category deleted")
	c.Status(http.StatusNoContent)
}
