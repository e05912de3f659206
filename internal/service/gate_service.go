package service

import (
	"context"
	"log/slog"

	"gatepass/internal/clock"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/metrics"
	"gatepass/internal/model"
	"gatepass/internal/plate"
	"gatepass/internal/repository"
)

// ReasonCode explains a verification decision.
type ReasonCode string

const (
	ReasonApprovedVehicle ReasonCode = "approved_vehicle"
	ReasonTempPass        ReasonCode = "temp_pass"
	ReasonBlocked         ReasonCode = "blocked"
	ReasonNotFound        ReasonCode = "not_found"
)

// Decision is the outcome of a plate verification.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Reason  ReasonCode `json:"reason"`
	UserID  *uint      `json:"userId,omitempty"`
}

// GateService answers whether a plate may pass the gate. It never writes.
type GateService interface {
	Verify(ctx context.Context, plateRaw string) (*Decision, error)
}

type gateService struct {
	vehicles repository.VehicleRepository
	passes   PassService
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewGateService creates the verification engine. m may be nil.
func NewGateService(vehicles repository.VehicleRepository, passes PassService, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) GateService {
	if clk == nil {
		clk = clock.Real()
	}
	return &gateService{
		vehicles: vehicles,
		passes:   passes,
		clock:    clk,
		metrics:  m,
		logger:   loggerOrDefault(logger),
	}
}

// Verify applies, in order: a blocked registration denies outright, an
// approved registration allows, a currently valid pass allows, anything
// else is not found. Pending and rejected registrations fall through to
// the pass check.
func (s *gateService) Verify(ctx context.Context, plateRaw string) (*Decision, error) {
	normalized := plate.Normalize(plateRaw)
	if normalized == "" {
		return nil, apperrors.NewValidationError("plate_number", "is required")
	}

	decision, err := s.decide(ctx, normalized)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveVerification(string(decision.Reason), decision.Allowed)
	s.logger.DebugContext(ctx, "gate verification",
		"plate", normalized, "allowed", decision.Allowed, "reason", decision.Reason)
	return decision, nil
}

func (s *gateService) decide(ctx context.Context, normalized string) (*Decision, error) {
	vehicles, err := s.vehicles.FindByPlate(ctx, normalized)
	if err != nil {
		return nil, apperrors.NewStorageError("find vehicles by plate", err)
	}

	var approved *model.Vehicle
	for i := range vehicles {
		v := &vehicles[i]
		switch v.Status {
		case model.VehicleStatusBlocked:
			return &Decision{Allowed: false, Reason: ReasonBlocked, UserID: uintPtr(v.UserID)}, nil
		case model.VehicleStatusApproved:
			if approved == nil {
				approved = v
			}
		}
	}
	if approved != nil {
		return &Decision{Allowed: true, Reason: ReasonApprovedVehicle, UserID: uintPtr(approved.UserID)}, nil
	}

	pass, err := s.passes.FindActiveByPlate(ctx, normalized, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if pass != nil {
		return &Decision{Allowed: true, Reason: ReasonTempPass, UserID: uintPtr(pass.UserID)}, nil
	}

	return &Decision{Allowed: false, Reason: ReasonNotFound}, nil
}

func uintPtr(v uint) *uint {
	return &v
}
