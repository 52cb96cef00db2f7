package models

import "time"

// Known attendance statuses. Stored values are free text, so anything else is accepted too.
const (
	AttendancePresent    = "Present"
	AttendanceAbsent     = "Absent"
	AttendanceVacation   = "Vacation"
	AttendanceDayOff     = "Day Off"
	AttendanceEidHoliday = "Eid Holiday"
	AttendanceSickLeave  = "Sick Leave"
)

// Attendance is one worker's status for one day.
type Attendance struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	WorkerID   uint       `json:"worker_id" gorm:"index;not null"`
	Worker     *Worker    `json:"worker,omitempty"`
	Date       time.Time  `json:"date" gorm:"index"`
	Status     string     `json:"status"`
	ShiftID    *uint      `json:"shift_id"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Notes      string     `json:"notes"`
	Supervisor string     `json:"supervisor"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName keeps the singular table name used by the existing database.
func (Attendance) TableName() string {
	return "attendance"
}
