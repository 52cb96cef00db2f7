package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstc-app/management/internal/logger"
	"github.com/nstc-app/management/internal/models"
)

func TestStatusMonitor_Check(t *testing.T) {
	logger.Init(false, &bytes.Buffer{})
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Worker{Name: "A"}).Error)

	m := NewStatusMonitor(NewDiagnosticsService(db))
	assert.Nil(t, m.Last())

	report := m.Check(context.Background())
	assert.Equal(t, StatusOK, report.Status)
	require.NotNil(t, m.Last())
	assert.Equal(t, int64(1), m.Last().Results["activeWorkers"])
}

func TestStatusMonitor_LogsFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(false, buf)
	db := openTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Shift{}))

	report := NewStatusMonitor(NewDiagnosticsService(db)).Check(context.Background())
	assert.Equal(t, StatusPartialFailure, report.Status)
	assert.Contains(t, buf.String(), "store status check reported failures")
}

func TestStatusMonitor_StartStop(t *testing.T) {
	logger.Init(false, &bytes.Buffer{})
	db := openTestDB(t)
	m := NewStatusMonitor(NewDiagnosticsService(db))

	assert.Error(t, m.Start("not a schedule"))
	assert.NoError(t, NewStatusMonitor(NewDiagnosticsService(db)).Start(""))

	require.NoError(t, m.Start("@every 1s"))
	assert.Eventually(t, func() bool { return m.Last() != nil }, 5*time.Second, 50*time.Millisecond)
	m.Stop()
}
