package model

import "time"

// PassStatus is the stored lifecycle state of a temporary pass.
type PassStatus string

const (
	PassStatusActive  PassStatus = "active"
	PassStatusExpired PassStatus = "expired"
	PassStatusRevoked PassStatus = "revoked"

	// PassStatusScheduled is only ever derived, never stored: the pass is
	// active but its window has not opened yet.
	PassStatusScheduled PassStatus = "scheduled"
)

// TemporaryPass is a time-boxed visitor authorization for one plate.
type TemporaryPass struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	VisitorName string     `json:"visitor_name" gorm:"size:255;not null"`
	PlateNumber string     `json:"plate_number" gorm:"size:32;not null;index"`
	ValidFrom   time.Time  `json:"valid_from" gorm:"not null"`
	ValidTill   time.Time  `json:"valid_till" gorm:"not null"`
	Status      PassStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time  `json:"created_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName keeps the table name used by existing deployments.
func (TemporaryPass) TableName() string {
	return "temporary_passes"
}

// IsCurrentlyValid reports whether the pass admits a vehicle at now.
// Both window bounds are inclusive.
func (p *TemporaryPass) IsCurrentlyValid(now time.Time) bool {
	return p.Status == PassStatusActive &&
		!now.Before(p.ValidFrom) &&
		!now.After(p.ValidTill)
}

// EffectiveStatus derives the display status at now. The stored status is
// not changed.
func (p *TemporaryPass) EffectiveStatus(now time.Time) PassStatus {
	if p.Status != PassStatusActive {
		return p.Status
	}
	switch {
	case now.Before(p.ValidFrom):
		return PassStatusScheduled
	case now.After(p.ValidTill):
		return PassStatusExpired
	}
	return PassStatusActive
}
