package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler exposes session start, the dashboard summary and the data export.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// RegisterSessionRoutes registers the session routes.
func RegisterSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := &sessionHandler{sessionService: sessionService}

	session := rg.Group("/session")
	{
		session.POST("/start", h.startSession)
		session.GET("/summary", h.summary)
		session.GET("/export", h.export)
	}
}

// startSession godoc
// @Summary Start a session
// @Description Runs installment catch-up, then recurring catch-up, then returns the dashboard summary
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to start session"
// @Security BearerAuth
// @Router /session/start [post]
func (h *sessionHandler) startSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.sessionService.StartSession(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to start session")
		return
	}

	logger.Info("Session started",
		slog.Int("installment_created", report.Installments.Created),
		slog.Int("recurring_created", report.Recurring.Created),
	)
	c.JSON(http.StatusOK, report)
}

// summary godoc
// @Summary Dashboard summary
// @Description Current-month totals, balances and outstanding installments, without running catch-up
// @Tags session
// @Produce json
// @Success 200 {object} domain.Summary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /session/summary [get]
func (h *sessionHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.sessionService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// export godoc
// @Summary Export all data
// @Tags session
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export data"
// @Security BearerAuth
// @Router /session/export [get]
func (h *sessionHandler) export(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.sessionService.Export(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export data")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
