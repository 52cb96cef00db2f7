package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/models"
)

const (
	// StatusOK means every probe succeeded.
	StatusOK = "ok"
	// StatusPartialFailure means at least one probe failed.
	StatusPartialFailure = "partial_failure"

	sampleWorkersLimit = 20
	snapshotSampleSize = 3
)

// StoreCounts is the connectivity smoke test result.
type StoreCounts struct {
	Users         int64 `json:"users"`
	Workers       int64 `json:"workers"`
	Attendance    int64 `json:"attendance"`
	ActiveWorkers int64 `json:"active_workers"`
}

// RegionGroup is the number of active workers in one region.
type RegionGroup struct {
	Region string `json:"region"`
	Count  int64  `json:"count"`
}

// StatusReport collects independent probes; one failing probe does not hide the others.
type StatusReport struct {
	Status  string                 `json:"status"`
	Results map[string]interface{} `json:"results"`
	Errors  map[string]string      `json:"errors"`
}

// Snapshot is a broader connectivity check with a few sample rows per table.
type Snapshot struct {
	Counts  map[string]int64       `json:"counts"`
	Samples map[string]interface{} `json:"samples"`
}

// WorkerShift pairs a worker with the name of its shift.
type WorkerShift struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ShiftID   *uint  `json:"shift_id"`
	ShiftName string `json:"shift_name"`
}

// RegionUsage lists the distinct region names found in each table.
type RegionUsage struct {
	Defined []string `json:"defined"`
	Workers []string `json:"workers"`
	Users   []string `json:"users"`
}

// ColumnRequirement names a column a deployment depends on.
type ColumnRequirement struct {
	Table  string
	Column string
	Note   string
}

// DiagnosticsService runs read-only checks against the store.
type DiagnosticsService struct {
	db *gorm.DB
}

// NewDiagnosticsService returns a DiagnosticsService using the provided DB
func NewDiagnosticsService(db *gorm.DB) *DiagnosticsService {
	return &DiagnosticsService{db: db}
}

// Counts returns basic table counts; the first failing query aborts.
func (s *DiagnosticsService) Counts(ctx context.Context) (StoreCounts, error) {
	var c StoreCounts
	if s.db == nil {
		return c, ErrStoreUnavailable
	}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&c.Users).Error; err != nil {
		return c, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&models.Worker{}).Count(&c.Workers).Error; err != nil {
		return c, fmt.Errorf("count workers: %w", err)
	}
	if err := db.Model(&models.Attendance{}).Count(&c.Attendance).Error; err != nil {
		return c, fmt.Errorf("count attendance: %w", err)
	}
	if err := db.Model(&models.Worker{}).Where("status = ?", models.WorkerStatusActive).Count(&c.ActiveWorkers).Error; err != nil {
		return c, fmt.Errorf("count active workers: %w", err)
	}
	return c, nil
}

// Status runs every probe independently and reports which ones failed.
// now decides what "today" means for the attendance probe.
func (s *DiagnosticsService) Status(ctx context.Context, now time.Time) StatusReport {
	report := StatusReport{
		Results: map[string]interface{}{},
		Errors:  map[string]string{},
	}
	if s.db == nil {
		report.Status = StatusPartialFailure
		report.Errors["store"] = ErrStoreUnavailable.Error()
		return report
	}
	db := s.db.WithContext(ctx)

	var active int64
	if err := db.Model(&models.Worker{}).Where("status = ?", models.WorkerStatusActive).Count(&active).Error; err != nil {
		report.Errors["activeWorkers"] = err.Error()
	} else {
		report.Results["activeWorkers"] = active
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var attendance int64
	if err := db.Model(&models.Attendance{}).Where("date >= ?", today).Count(&attendance).Error; err != nil {
		report.Errors["attendance"] = err.Error()
	} else {
		report.Results["attendanceCount"] = attendance
	}

	var shifts int64
	if err := db.Model(&models.Shift{}).Count(&shifts).Error; err != nil {
		report.Errors["shifts"] = err.Error()
	} else {
		report.Results["shiftCount"] = shifts
	}

	var warehouses int64
	if err := db.Model(&models.Warehouse{}).Count(&warehouses).Error; err != nil {
		report.Errors["warehouses"] = err.Error()
	} else {
		report.Results["warehouseCount"] = warehouses
	}

	var groups []RegionGroup
	if err := db.Model(&models.Worker{}).
		Select("region, count(id) as count").
		Where("status = ?", models.WorkerStatusActive).
		Group("region").
		Order("region").
		Scan(&groups).Error; err != nil {
		report.Errors["workerGroups"] = err.Error()
	} else {
		report.Results["workerGroups"] = groups
	}

	report.Status = StatusOK
	if len(report.Errors) > 0 {
		report.Status = StatusPartialFailure
	}
	return report
}

// Snapshot counts every table and fetches a few rows of the main ones.
func (s *DiagnosticsService) Snapshot(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Counts: map[string]int64{}, Samples: map[string]interface{}{}}
	if s.db == nil {
		return snap, ErrStoreUnavailable
	}
	db := s.db.WithContext(ctx)

	tables := []struct {
		name  string
		model interface{}
	}{
		{"users", &models.User{}},
		{"workers", &models.Worker{}},
		{"shifts", &models.Shift{}},
		{"warehouses", &models.Warehouse{}},
		{"attendance", &models.Attendance{}},
	}
	for _, tbl := range tables {
		var n int64
		if err := db.Model(tbl.model).Count(&n).Error; err != nil {
			return snap, fmt.Errorf("count %s: %w", tbl.name, err)
		}
		snap.Counts[tbl.name] = n
	}

	var users []models.User
	if err := db.Select("id", "username", "name", "role").Limit(snapshotSampleSize).Find(&users).Error; err != nil {
		return snap, fmt.Errorf("sample users: %w", err)
	}
	snap.Samples["users"] = users

	var workers []models.Worker
	if err := db.Select("id", "name", "region").Limit(snapshotSampleSize).Find(&workers).Error; err != nil {
		return snap, fmt.Errorf("sample workers: %w", err)
	}
	snap.Samples["workers"] = workers

	var warehouses []models.Warehouse
	if err := db.Limit(snapshotSampleSize).Find(&warehouses).Error; err != nil {
		return snap, fmt.Errorf("sample warehouses: %w", err)
	}
	snap.Samples["warehouses"] = warehouses

	return snap, nil
}

// Shifts returns every shift ordered by id.
func (s *DiagnosticsService) Shifts(ctx context.Context) ([]models.Shift, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	var shifts []models.Shift
	if err := s.db.WithContext(ctx).Order("id asc").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// SampleWorkers returns the first workers with the name of their shift.
func (s *DiagnosticsService) SampleWorkers(ctx context.Context) ([]WorkerShift, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	var workers []models.Worker
	if err := s.db.WithContext(ctx).Preload("Shift").Order("id asc").Limit(sampleWorkersLimit).Find(&workers).Error; err != nil {
		return nil, err
	}

	out := make([]WorkerShift, 0, len(workers))
	for _, w := range workers {
		ws := WorkerShift{ID: w.ID, Name: w.Name, ShiftID: w.ShiftID}
		if w.Shift != nil {
			ws.ShiftName = w.Shift.Name
		}
		out = append(out, ws)
	}
	return out, nil
}

// RegionUsage collects distinct region names so spelling drift between tables is visible.
func (s *DiagnosticsService) RegionUsage(ctx context.Context) (RegionUsage, error) {
	var usage RegionUsage
	if s.db == nil {
		return usage, ErrStoreUnavailable
	}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Region{}).Order("name").Pluck("name", &usage.Defined).Error; err != nil {
		return usage, fmt.Errorf("list regions: %w", err)
	}
	if err := db.Model(&models.Worker{}).Distinct().Order("region").Pluck("region", &usage.Workers).Error; err != nil {
		return usage, fmt.Errorf("list worker regions: %w", err)
	}
	if err := db.Model(&models.User{}).Distinct().Order("region").Pluck("region", &usage.Users).Error; err != nil {
		return usage, fmt.Errorf("list user regions: %w", err)
	}
	return usage, nil
}

// MissingColumns returns the requirements whose column does not exist.
func (s *DiagnosticsService) MissingColumns(ctx context.Context, required []ColumnRequirement) ([]ColumnRequirement, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	migrator := s.db.WithContext(ctx).Migrator()

	var missing []ColumnRequirement
	for _, req := range required {
		if !migrator.HasTable(req.Table) || !migrator.HasColumn(req.Table, req.Column) {
			missing = append(missing, req)
		}
	}
	return missing, nil
}
