package models

// Shift is a named working window, e.g. "Morning" 07:00-15:00.
type Shift struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
