package handlers

import (
	"net/http"

	"github.com/Basri-akbas/Finance-Tracker/cmd/docs"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/Basri-akbas/Finance-Tracker/internal/platform/config"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	clock portssvc.Clock,
	posthogClient *utils.PosthogClientWrapper,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, clock, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	clock portssvc.Clock,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.PosthogMiddleware(posthogClient),
	)

	RegisterTransactionRoutes(v1, services.Ledger, services.Category)
	RegisterInstallmentRoutes(v1, services.Installment, clock)
	RegisterRecurringRoutes(v1, services.Recurring, clock)
	RegisterSettingsRoutes(v1, services.Balance, services.Category, services.Ledger)
	RegisterDebtRoutes(v1, services.Debt)
	RegisterReportingRoutes(v1, services.Ledger, clock)
	RegisterSessionRoutes(v1, services.Session)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
