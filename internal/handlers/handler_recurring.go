package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles HTTP requests related to recurring templates.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
	clock            portssvc.Clock
}

// RegisterRecurringRoutes registers routes related to recurring templates.
func RegisterRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade, clock portssvc.Clock) {
	h := &recurringHandler{recurringService: recurringService, clock: clock}

	recurring := rg.Group("/recurring")
	{
		recurring.GET("", h.listTemplates)
		recurring.POST("", h.createTemplate)
		recurring.POST("/catchup", h.catchUp)
		recurring.GET("/:id", h.getTemplate)
		recurring.PUT("/:id", h.updateTemplate)
		recurring.DELETE("/:id", h.deleteTemplate)
	}
}

// listTemplates godoc
// @Summary List recurring templates
// @Tags recurring
// @Produce json
// @Success 200 {array} domain.RecurringTemplate
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list recurring templates"
// @Security BearerAuth
// @Router /recurring [get]
func (h *recurringHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.recurringService.ListRecurringTemplates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list recurring templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// createTemplate godoc
// @Summary Create a recurring template
// @Tags recurring
// @Accept json
// @Produce json
// @Param template body dto.RecurringTemplateRequest true "Template details"
// @Success 201 {object} domain.RecurringTemplate
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create recurring template"
// @Security BearerAuth
// @Router /recurring [post]
func (h *recurringHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecurringTemplateRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	tmpl, err := h.recurringService.CreateRecurringTemplate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create recurring template")
		return
	}

	logger.Info("Recurring template created", slog.String("template_id", tmpl.ID))
	c.JSON(http.StatusCreated, tmpl)
}

// getTemplate godoc
// @Summary Get a recurring template
// @Tags recurring
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} domain.RecurringTemplate
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to retrieve recurring template"
// @Security BearerAuth
// @Router /recurring/{id} [get]
func (h *recurringHandler) getTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("template_id", c.Param("id")))

	tmpl, err := h.recurringService.GetRecurringTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve recurring template")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// updateTemplate godoc
// @Summary Update a recurring template
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body dto.RecurringTemplateRequest true "Template details"
// @Success 200 {object} domain.RecurringTemplate
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to update recurring template"
// @Security BearerAuth
// @Router /recurring/{id} [put]
func (h *recurringHandler) updateTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("template_id", c.Param("id")))
	var req dto.RecurringTemplateRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	tmpl, err := h.recurringService.UpdateRecurringTemplate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update recurring template")
		return
	}

	logger.Info("Recurring template updated")
	c.JSON(http.StatusOK, tmpl)
}

// deleteTemplate godoc
// @Summary Delete a recurring template
// @Description Stops future occurrences. Transactions already created stay.
// @Tags recurring
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete recurring template"
// @Security BearerAuth
// @Router /recurring/{id} [delete]
func (h *recurringHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("template_id", c.Param("id")))

	if err := h.recurringService.DeleteRecurringTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete recurring template")
		return
	}

	logger.Info("Recurring template deleted")
	c.Status(http.StatusNoContent)
}

// catchUp godoc
// @Summary Catch up due recurring occurrences
// @Description Creates one transaction per due occurrence up to and including today and advances each template's next date
// @Tags recurring
// @Produce json
// @Success 200 {object} domain.CatchUpReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to catch up recurring templates"
// @Security BearerAuth
// @Router /recurring/catchup [post]
func (h *recurringHandler) catchUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.recurringService.CatchUp(c.Request.Context(), h.clock.Today())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to catch up recurring templates")
		return
	}

	logger.Info("Recurring catch-up finished",
		slog.Int("created", report.Created),
		slog.Int("failures", len(report.Failures)),
	)
	c.JSON(http.StatusOK, report)
}
