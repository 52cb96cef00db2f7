package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/api/handlers"
	"github.com/nstc-app/management/internal/api/middleware"
	"github.com/nstc-app/management/internal/config"
	"github.com/nstc-app/management/internal/database"
	"github.com/nstc-app/management/internal/logger"
	"github.com/nstc-app/management/internal/services"
	"github.com/nstc-app/management/internal/sitemeta"
)

// Register wires up API routes and performs automatic migrations. /metrics
// exposes gatherer.
func Register(router *gin.Engine, db *gorm.DB, cfg config.Config, gatherer prometheus.Gatherer) error {
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	origin := sitemeta.ResolveOrigin(cfg.SiteOriginCandidates()...)
	logger.Log().WithField("origin", origin).Info("resolved public site origin")
	handlers.NewSiteMetadataHandler(origin).RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/api/v1/health", handlers.HealthHandler)

	auditService := services.NewAuditService(db)
	seedService := services.NewSeedService(db)

	api := router.Group("/api/v1")
	handlers.NewDiagnosticsHandler(services.NewDiagnosticsService(db), cfg.IsProduction()).RegisterRoutes(api)

	if cfg.SessionSecret == "" {
		logger.Log().Warn("APP_SESSION_SECRET is not set; session routes will reject every request")
	}
	protected := api.Group("")
	protected.Use(middleware.SessionActor(cfg.SessionSecret))
	handlers.NewAuditHandler(auditService).RegisterRoutes(protected)
	handlers.NewWarehouseHandler(seedService, auditService).RegisterRoutes(protected)

	return nil
}
