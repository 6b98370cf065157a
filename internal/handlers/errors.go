package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to an HTTP status.
// Validation and not-found messages are passed through; anything else is reported as failMsg.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized service call")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// bindJSON binds the request body, answering 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds the query string, answering 400 on failure.
func bindQuery(c *gin.Context, logger *slog.Logger, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		logger.Warn("Failed to bind query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}
