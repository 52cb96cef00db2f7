package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/models"
	"github.com/nstc-app/management/internal/services"
)

func diagnosticsRouter(db *gorm.DB, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewDiagnosticsHandler(services.NewDiagnosticsService(db), production).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestDiagnosticsHandler_TestDB(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Warehouse{Name: "NSTC", Location: "Riyadh"}).Error)

	w := httptest.NewRecorder()
	diagnosticsRouter(db, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test-db", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool             `json:"success"`
		Counts  map[string]int64 `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.Counts["warehouses"])
}

func TestDiagnosticsHandler_TestDBHiddenInProduction(t *testing.T) {
	w := httptest.NewRecorder()
	diagnosticsRouter(setupTestDB(t), true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test-db", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiagnosticsHandler_TestDBFailure(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Shift{}))

	w := httptest.NewRecorder()
	diagnosticsRouter(db, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test-db", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestDiagnosticsHandler_StatusPartialFailure(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Shift{}))

	w := httptest.NewRecorder()
	diagnosticsRouter(db, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/debug-db-status", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var report services.StatusReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, services.StatusPartialFailure, report.Status)
	assert.Contains(t, report.Errors, "shifts")
	assert.Contains(t, report.Results, "activeWorkers")
}
