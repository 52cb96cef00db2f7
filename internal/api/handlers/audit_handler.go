package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nstc-app/management/internal/api/middleware"
	"github.com/nstc-app/management/internal/services"
)

// AuditHandler exposes the audit trail.
type AuditHandler struct {
	service *services.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// RegisterRoutes registers audit routes. The group must carry SessionActor.
func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", h.List)
	router.POST("/audit-logs", h.Create)
}

// AuditEntryRequest is the body of POST /audit-logs. The actor always comes from the session.
type AuditEntryRequest struct {
	Action  string `json:"action" binding:"required"`
	Details string `json:"details"`
	Module  string `json:"module" binding:"required"`
}

// List returns audit entries newest first, optionally filtered.
func (h *AuditHandler) List(c *gin.Context) {
	filter := services.AuditFilter{
		Actor:  c.Query("actor"),
		Module: c.Query("module"),
		Action: c.Query("action"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		filter.Limit = limit
	}

	logs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Create records an entry for the session actor. The response is 202 even
// when the trail could not be written; "recorded" tells which happened.
func (h *AuditHandler) Create(c *gin.Context) {
	var req AuditEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	outcome := h.service.Record(c.Request.Context(), actor, req.Action, req.Details, req.Module)
	resp := gin.H{"recorded": outcome.OK()}
	if outcome.OK() {
		resp["uuid"] = outcome.Record.UUID
		resp["timestamp"] = outcome.Record.Timestamp
	}
	c.JSON(http.StatusAccepted, resp)
}
