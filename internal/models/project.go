package models

// Project groups work orders under a contract.
type Project struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"uniqueIndex;not null"`
	Type   string `json:"type"`
	Status string `json:"status" gorm:"not null;default:'Active'"`
}
