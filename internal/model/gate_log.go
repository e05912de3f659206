package model

import "time"

// GateLogType is the direction of travel through the gate.
type GateLogType string

const (
	GateLogEntry GateLogType = "entry"
	GateLogExit  GateLogType = "exit"
)

// Valid reports whether t is entry or exit.
func (t GateLogType) Valid() bool {
	return t == GateLogEntry || t == GateLogExit
}

// GateStatus is the outcome attached to a gate log.
type GateStatus string

const (
	GateStatusApprovedVehicle GateStatus = "approved_vehicle"
	GateStatusTempPass        GateStatus = "temp_pass"
	GateStatusDenied          GateStatus = "denied"
	GateStatusNotFound        GateStatus = "not_found"
)

// Valid reports whether s is a known gate status.
func (s GateStatus) Valid() bool {
	switch s {
	case GateStatusApprovedVehicle, GateStatusTempPass, GateStatusDenied, GateStatusNotFound:
		return true
	}
	return false
}

// GateLog is an immutable record of an observed gate event.
// MatchedUserID is a weak reference: there is no foreign key and the user
// may no longer resolve.
type GateLog struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	PlateNumber   string      `json:"plate_number" gorm:"size:32;not null;index"`
	Type          GateLogType `json:"type" gorm:"type:varchar(10);not null"`
	Timestamp     time.Time   `json:"timestamp" gorm:"not null;index"`
	Source        *string     `json:"source,omitempty" gorm:"size:128"`
	Confidence    *int        `json:"confidence,omitempty"`
	Status        GateStatus  `json:"status" gorm:"type:varchar(20);not null"`
	MatchedUserID *uint       `json:"matched_user_id,omitempty" gorm:"index"`
}
