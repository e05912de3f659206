package model

import "time"

// VehicleStatus represents the approval state of a registered vehicle.
type VehicleStatus string

const (
	VehicleStatusPending  VehicleStatus = "pending"
	VehicleStatusApproved VehicleStatus = "approved"
	VehicleStatusRejected VehicleStatus = "rejected"
	VehicleStatusBlocked  VehicleStatus = "blocked"
)

// Valid reports whether s is one of the known vehicle statuses.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusPending, VehicleStatusApproved, VehicleStatusRejected, VehicleStatusBlocked:
		return true
	}
	return false
}

// Vehicle is a plate registered by a resident.
// PlateNumber is stored normalized and is intentionally not unique.
type Vehicle struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	PlateNumber string        `json:"plate_number" gorm:"size:32;not null;index"`
	Name        *string       `json:"name,omitempty" gorm:"size:255"`
	Status      VehicleStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
