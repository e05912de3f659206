package service

import (
	"context"
	"log/slog"
	"strings"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/plate"
	"gatepass/internal/repository"
)

// VehicleService manages resident vehicle registrations.
type VehicleService interface {
	// Create registers a plate for ownerID. New vehicles are always pending.
	Create(ctx context.Context, ownerID uint, plateRaw string, name *string) (*model.Vehicle, error)
	// UpdateStatus sets a vehicle's status. Last write wins.
	UpdateStatus(ctx context.Context, id uint, status model.VehicleStatus) (*model.Vehicle, error)
	ListMine(ctx context.Context, ownerID uint) ([]model.Vehicle, error)
	ListAll(ctx context.Context) ([]model.Vehicle, error)
}

type vehicleService struct {
	repo   repository.VehicleRepository
	logger *slog.Logger
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(repo repository.VehicleRepository, logger *slog.Logger) VehicleService {
	return &vehicleService{repo: repo, logger: loggerOrDefault(logger)}
}

func (s *vehicleService) Create(ctx context.Context, ownerID uint, plateRaw string, name *string) (*model.Vehicle, error) {
	normalized := plate.Normalize(plateRaw)
	if !plate.Valid(normalized) {
		return nil, apperrors.NewValidationError("plate_number", "must be 1 to 16 non-space characters")
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			name = nil
		} else {
			name = &trimmed
		}
	}

	vehicle := &model.Vehicle{
		UserID:      ownerID,
		PlateNumber: normalized,
		Name:        name,
		Status:      model.VehicleStatusPending,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, apperrors.NewStorageError("create vehicle", err)
	}

	s.logger.InfoContext(ctx, "vehicle registered",
		"vehicle_id", vehicle.ID, "plate", vehicle.PlateNumber, "owner_id", ownerID)
	return vehicle, nil
}

func (s *vehicleService) UpdateStatus(ctx context.Context, id uint, status model.VehicleStatus) (*model.Vehicle, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of pending, approved, rejected, blocked")
	}

	vehicle, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, lookupErr("update vehicle status", err, apperrors.ErrVehicleNotFound)
	}

	s.logger.InfoContext(ctx, "vehicle status changed",
		"vehicle_id", id, "plate", vehicle.PlateNumber, "status", status)
	return vehicle, nil
}

func (s *vehicleService) ListMine(ctx context.Context, ownerID uint) ([]model.Vehicle, error) {
	vehicles, err := s.repo.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewStorageError("list vehicles", err)
	}
	return vehicles, nil
}

func (s *vehicleService) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("list vehicles", err)
	}
	return vehicles, nil
}
