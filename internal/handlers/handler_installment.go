package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// installmentHandler handles HTTP requests related to installment purchases.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
	clock              portssvc.Clock
}

// RegisterInstallmentRoutes registers routes related to installments.
func RegisterInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade, clock portssvc.Clock) {
	h := &installmentHandler{installmentService: installmentService, clock: clock}

	installments := rg.Group("/installments")
	{
		installments.GET("", h.listInstallments)
		installments.POST("", h.createInstallment)
		installments.GET("/active-total", h.activeTotal)
		installments.POST("/catchup", h.catchUp)
		installments.GET("/:id", h.getInstallment)
		installments.DELETE("/:id", h.deleteInstallment)
		installments.POST("/:id/pay", h.payInstallment)
	}
}

// listInstallments godoc
// @Summary List installments
// @Tags installments
// @Produce json
// @Success 200 {array} dto.InstallmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list installments"
// @Security BearerAuth
// @Router /installments [get]
func (h *installmentHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.installmentService.ListInstallments(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list installments")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentResponses(items))
}

// createInstallment godoc
// @Summary Create an installment
// @Description Records an installment purchase; the monthly amount is total / count
// @Tags installments
// @Accept json
// @Produce json
// @Param installment body dto.CreateInstallmentRequest true "Installment details"
// @Success 201 {object} dto.InstallmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create installment"
// @Security BearerAuth
// @Router /installments [post]
func (h *installmentHandler) createInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInstallmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	inst, err := h.installmentService.CreateInstallment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create installment")
		return
	}

	logger.Info("Installment created", slog.String("installment_id", inst.ID))
	c.JSON(http.StatusCreated, dto.ToInstallmentResponse(*inst))
}

// getInstallment godoc
// @Summary Get an installment
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Installment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve installment"
// @Security BearerAuth
// @Router /installments/{id} [get]
func (h *installmentHandler) getInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("installment_id", c.Param("id")))

	inst, err := h.installmentService.GetInstallment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve installment")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(*inst))
}

// payInstallment godoc
// @Summary Mark one installment period as paid
// @Description Increments the paid count without creating a transaction. A settled installment is returned unchanged.
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Installment not found"
// @Failure 500 {object} map[string]string "Failed to pay installment"
// @Security BearerAuth
// @Router /installments/{id}/pay [post]
func (h *installmentHandler) payInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("installment_id", c.Param("id")))

	inst, err := h.installmentService.PayInstallment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay installment")
		return
	}

	logger.Info("Installment paid", slog.Int("paid_count", inst.PaidCount))
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(*inst))
}

// deleteInstallment godoc
// @Summary Delete an installment
// @Description Removes the installment. Transactions it generated stay in the ledger.
// @Tags installments
// @Param id path string true "Installment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete installment"
// @Security BearerAuth
// @Router /installments/{id} [delete]
func (h *installmentHandler) deleteInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("installment_id", c.Param("id")))

	if err := h.installmentService.DeleteInstallment(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete installment")
		return
	}

	logger.Info("Installment deleted")
	c.Status(http.StatusNoContent)
}

// activeTotal godoc
// @Summary Outstanding installment amount
// @Description Sums (count - paid) * monthly amount over every installment
// @Tags installments
// @Produce json
// @Success 200 {object} dto.ActiveInstallmentTotalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute installment total"
// @Security BearerAuth
// @Router /installments/active-total [get]
func (h *installmentHandler) activeTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.installmentService.ActiveInstallmentTotal(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute installment total")
		return
	}
	c.JSON(http.StatusOK, dto.ActiveInstallmentTotalResponse{Total: total})
}

// catchUp godoc
// @Summary Catch up due installments
// @Description Creates one expense per due, uncovered installment period up to today. Per-installment failures are listed in the report.
// @Tags installments
// @Produce json
// @Success 200 {object} domain.CatchUpReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to catch up installments"
// @Security BearerAuth
// @Router /installments/catchup [post]
func (h *installmentHandler) catchUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.installmentService.CatchUp(c.Request.Context(), h.clock.Today())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to catch up installments")
		return
	}

	logger.Info("Installment catch-up finished",
		slog.Int("created", report.Created),
		slog.Int("failures", len(report.Failures)),
	)
	c.JSON(http.StatusOK, report)
}
