package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nstc-app/management/internal/api/middleware"
	"github.com/nstc-app/management/internal/services"
	"github.com/nstc-app/management/internal/util"
)

const warehouseModule = "warehouse"

// WarehouseHandler manages warehouses and audits every upsert.
type WarehouseHandler struct {
	seed  *services.SeedService
	audit *services.AuditService
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(seed *services.SeedService, audit *services.AuditService) *WarehouseHandler {
	return &WarehouseHandler{seed: seed, audit: audit}
}

// RegisterRoutes registers warehouse routes. The group must carry SessionActor.
func (h *WarehouseHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/warehouses", h.List)
	router.POST("/warehouses", h.Upsert)
}

// WarehouseRequest is the body of POST /warehouses.
type WarehouseRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// List returns every warehouse ordered by name.
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.seed.ListWarehouses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list warehouses"})
		return
	}
	c.JSON(http.StatusOK, warehouses)
}

// Upsert creates the warehouse unless one with the same name exists. Either
// way the attempt is audited; an audit failure never changes the response.
func (h *WarehouseHandler) Upsert(c *gin.Context) {
	var req WarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wh, created, err := h.seed.UpsertWarehouse(c.Request.Context(), req.Name, req.Location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWarehouse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.GetRequestLogger(c).WithError(err).Error("upsert warehouse")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save warehouse"})
		return
	}

	actor, _ := middleware.ActorFrom(c)
	action, status := "exists", http.StatusOK
	if created {
		action, status = "create", http.StatusCreated
	}
	h.audit.Record(c.Request.Context(), actor, action,
		fmt.Sprintf("warehouse %s (%s)", util.SanitizeForLog(wh.Name), util.SanitizeForLog(wh.Location)),
		warehouseModule)

	c.JSON(status, gin.H{"created": created, "warehouse": wh})
}
