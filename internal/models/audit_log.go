package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrAuditLogImmutable is returned when something tries to change a stored audit record.
var ErrAuditLogImmutable = errors.New("audit log entries are immutable")

// AuditLog records who did what, in which module, and when.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid" gorm:"uniqueIndex"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	Actor     string    `json:"actor" gorm:"column:user_name;index;not null"`
	Action    string    `json:"action" gorm:"not null"`
	Details   string    `json:"details" gorm:"type:text"`
	Module    string    `json:"module" gorm:"index"`
}

// BeforeUpdate rejects every update.
func (a *AuditLog) BeforeUpdate(tx *gorm.DB) error {
	return ErrAuditLogImmutable
}

// BeforeDelete rejects every delete; retention is handled outside the application.
func (a *AuditLog) BeforeDelete(tx *gorm.DB) error {
	return ErrAuditLogImmutable
}
