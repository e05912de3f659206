package model

import "time"

// Role is a coarse authorization level.
type Role string

const (
	RoleResident Role = "resident"
	RoleAdmin    Role = "admin"
)

// User represents a resident or administrator. Phone is the login identifier.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Phone        string    `json:"phone" gorm:"uniqueIndex;size:32;not null"`
	FlatNumber   *string   `json:"flat_number,omitempty" gorm:"size:64"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'resident'"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
