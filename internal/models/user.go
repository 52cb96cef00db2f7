package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole names the access level of an application user.
type UserRole string

const (
	RoleManager         UserRole = "manager"
	RoleSupervisor      UserRole = "supervisor"
	RoleStorekeeper     UserRole = "storekeeper"
	RoleNightSupervisor UserRole = "night_supervisor"
)

// User is an application account. Region is the legacy single zone, Regions
// holds the comma-separated list of assigned zones.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-"`
	Name              string    `json:"name"`
	Role              UserRole  `json:"role" gorm:"default:'supervisor'"`
	Region            string    `json:"region"`
	Regions           string    `json:"regions"`
	ShiftID           *uint     `json:"shift_id"`
	AttendanceShiftID *uint     `json:"attendance_shift_id"`
	AllowedShifts     string    `json:"allowed_shifts"`
	CreatedAt         time.Time `json:"created_at"`
}

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares the provided password with the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
