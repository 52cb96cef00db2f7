package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nstc-app/management/internal/api/middleware"
	"github.com/nstc-app/management/internal/services"
)

// DiagnosticsHandler exposes read-only store checks over HTTP.
type DiagnosticsHandler struct {
	service    *services.DiagnosticsService
	production bool
	now        func() time.Time
}

// NewDiagnosticsHandler creates a diagnostics handler. In production the
// sample-row endpoint answers 404.
func NewDiagnosticsHandler(service *services.DiagnosticsService, production bool) *DiagnosticsHandler {
	return &DiagnosticsHandler{service: service, production: production, now: time.Now}
}

// RegisterRoutes registers diagnostics routes.
func (h *DiagnosticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/test-db", h.TestDB)
	router.GET("/debug-db-status", h.Status)
}

// TestDB returns table counts with a few sample rows.
func (h *DiagnosticsHandler) TestDB(c *gin.Context) {
	if h.production {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	snap, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		middleware.GetRequestLogger(c).WithError(err).Error("database connection test failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connection successful",
		"counts":  snap.Counts,
		"samples": snap.Samples,
	})
}

// Status runs the independent store probes. It always answers 200; partial
// failures are reported in the body.
func (h *DiagnosticsHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context(), h.now()))
}
