package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/nstc-app/management/internal/logger"
	"github.com/nstc-app/management/internal/metrics"
)

// StatusMonitor periodically runs the store status probe and logs the report.
type StatusMonitor struct {
	diagnostics *DiagnosticsService
	cron        *cron.Cron
	now         func() time.Time

	mu   sync.Mutex
	last *StatusReport
}

// NewStatusMonitor returns a monitor for the given diagnostics service. It does nothing until Start.
func NewStatusMonitor(diagnostics *DiagnosticsService) *StatusMonitor {
	return &StatusMonitor{
		diagnostics: diagnostics,
		cron:        cron.New(),
		now:         time.Now,
	}
}

// Start schedules the probe with a cron spec such as "@every 15m". An
// empty spec leaves the monitor disabled.
func (m *StatusMonitor) Start(spec string) error {
	if spec == "" {
		logger.Log().Info("store status monitor disabled")
		return nil
	}
	if _, err := m.cron.AddFunc(spec, func() { m.Check(context.Background()) }); err != nil {
		return fmt.Errorf("schedule status monitor %q: %w", spec, err)
	}
	m.cron.Start()
	logger.Log().WithField("schedule", spec).Info("store status monitor started")
	return nil
}

// Stop halts scheduling and waits for a running probe to finish.
func (m *StatusMonitor) Stop() {
	<-m.cron.Stop().Done()
}

// Check runs one probe immediately.
func (m *StatusMonitor) Check(ctx context.Context) StatusReport {
	report := m.diagnostics.Status(ctx, m.now())
	metrics.ObserveStatusCheck(report.Status)

	entry := logger.WithFields(logrus.Fields{
		"status":  report.Status,
		"results": report.Results,
	})
	if len(report.Errors) > 0 {
		entry.WithField("errors", report.Errors).Warn("store status check reported failures")
	} else {
		entry.Debug("store status check passed")
	}

	m.mu.Lock()
	m.last = &report
	m.mu.Unlock()
	return report
}

// Last returns the most recent report, or nil before the first check.
func (m *StatusMonitor) Last() *StatusReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
