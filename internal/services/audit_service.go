package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/logger"
	"github.com/nstc-app/management/internal/metrics"
	"github.com/nstc-app/management/internal/models"
	"github.com/nstc-app/management/internal/util"
)

// ErrStoreUnavailable is reported when a service has no store handle.
var ErrStoreUnavailable = errors.New("store unavailable")

const (
	defaultAuditListLimit = 50
	maxAuditListLimit     = 500
)

// AuditOutcome is the result of a Record call. Callers may ignore it.
type AuditOutcome struct {
	Record *models.AuditLog
	Err    error
}

// OK reports whether the record was stored.
func (o AuditOutcome) OK() bool {
	return o.Err == nil && o.Record != nil
}

// AuditFilter narrows List results. Empty fields match everything.
type AuditFilter struct {
	Actor  string
	Module string
	Action string
	Limit  int
}

// AuditService writes and reads the audit trail.
type AuditService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAuditService returns an AuditService using the provided DB
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db, now: time.Now}
}

// Record stores one audit entry stamped with the current time. Failures are
// logged and returned in the outcome, never raised: the action being audited
// has already happened and must not fail because the trail could not be written.
func (s *AuditService) Record(ctx context.Context, actor, action, details, module string) (outcome AuditOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = AuditOutcome{Err: fmt.Errorf("audit store panic: %v", r)}
		}
		if outcome.Err != nil {
			metrics.IncAuditFailed()
			logger.WithFields(logrus.Fields{
				"actor":  util.SanitizeForLog(actor),
				"action": util.SanitizeForLog(action),
				"module": util.SanitizeForLog(module),
				"error":  outcome.Err.Error(),
			}).Error("Failed to create audit log")
			return
		}
		metrics.IncAuditRecorded()
	}()

	if s == nil || s.db == nil {
		return AuditOutcome{Err: ErrStoreUnavailable}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	entry := &models.AuditLog{
		UUID:      uuid.NewString(),
		Timestamp: s.now().UTC(),
		Actor:     actor,
		Action:    action,
		Details:   details,
		Module:    module,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return AuditOutcome{Err: fmt.Errorf("create audit log: %w", err)}
	}

	return AuditOutcome{Record: entry}
}

// List returns audit entries newest first.
func (s *AuditService) List(ctx context.Context, filter AuditFilter) ([]models.AuditLog, error) {
	if s == nil || s.db == nil {
		return nil, ErrStoreUnavailable
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	if limit > maxAuditListLimit {
		limit = maxAuditListLimit
	}

	q := s.db.WithContext(ctx).Order("timestamp desc").Order("id desc").Limit(limit)
	if filter.Actor != "" {
		q = q.Where("user_name = ?", filter.Actor)
	}
	if filter.Module != "" {
		q = q.Where("module = ?", filter.Module)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}

	var res []models.AuditLog
	if err := q.Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// Count returns the number of stored audit entries.
func (s *AuditService) Count(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrStoreUnavailable
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
