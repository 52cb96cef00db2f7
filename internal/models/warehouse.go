package models

// Warehouse is a stock location. Name is the natural key used by upserts.
type Warehouse struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Location string `json:"location"`
}
