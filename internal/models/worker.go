package models

import "time"

// WorkerStatusActive marks workers counted as active manpower.
const WorkerStatusActive = "Active"

// Worker is a member of the manpower pool assigned to a region and shift.
type Worker struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	EmpID     string    `json:"emp_id" gorm:"index"`
	Role      string    `json:"role"`
	Region    string    `json:"region" gorm:"index"`
	Status    string    `json:"status" gorm:"default:'Active'"`
	ShiftID   *uint     `json:"shift_id"`
	Shift     *Shift    `json:"shift,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
