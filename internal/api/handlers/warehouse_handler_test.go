package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/models"
	"github.com/nstc-app/management/internal/services"
)

func warehouseRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewWarehouseHandler(services.NewSeedService(db), services.NewAuditService(db)).RegisterRoutes(sessionGroup(r))
	return r
}

func postWarehouse(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/warehouses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "storekeeper1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWarehouseHandler_UpsertAudits(t *testing.T) {
	db := setupTestDB(t)
	r := warehouseRouter(db)

	w := postWarehouse(t, r, `{"name":"CWW","location":"Central Warehouse"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postWarehouse(t, r, `{"name":"CWW","location":"Somewhere Else"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Created   bool             `json:"created"`
		Warehouse models.Warehouse `json:"warehouse"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Created)
	assert.Equal(t, "Central Warehouse", resp.Warehouse.Location)

	var logs []models.AuditLog
	require.NoError(t, db.Order("id asc").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "create", logs[0].Action)
	assert.Equal(t, "exists", logs[1].Action)
	for _, l := range logs {
		assert.Equal(t, "storekeeper1", l.Actor)
		assert.Equal(t, "warehouse", l.Module)
	}
}

func TestWarehouseHandler_AuditFailureDoesNotFailUpsert(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.AuditLog{}))
	r := warehouseRouter(db)

	w := postWarehouse(t, r, `{"name":"Jeddah","location":"Port"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var n int64
	db.Model(&models.Warehouse{}).Where("name = ?", "Jeddah").Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestWarehouseHandler_BlankName(t *testing.T) {
	r := warehouseRouter(setupTestDB(t))

	assert.Equal(t, http.StatusBadRequest, postWarehouse(t, r, `{"location":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postWarehouse(t, r, `{"name":"   "}`).Code)
}

func TestWarehouseHandler_List(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Warehouse{Name: "SNC", Location: "Dammam"}).Error)
	require.NoError(t, db.Create(&models.Warehouse{Name: "NSTC", Location: "Riyadh"}).Error)
	r := warehouseRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/warehouses", nil)
	req.Header.Set("Authorization", bearer(t, "storekeeper1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Warehouse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "NSTC", list[0].Name)
}
