package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/plate"
	"gatepass/internal/repository"
)

// PassService manages temporary visitor passes.
type PassService interface {
	// Create issues an active pass. Input is validated before the store is
	// touched.
	Create(ctx context.Context, creatorID uint, visitorName, plateRaw string, validFrom, validTill time.Time) (*model.TemporaryPass, error)
	// FindActiveByPlate returns the oldest pass for the plate that is
	// currently valid at now, or nil if there is none.
	FindActiveByPlate(ctx context.Context, plateRaw string, now time.Time) (*model.TemporaryPass, error)
	ListMine(ctx context.Context, creatorID uint) ([]model.TemporaryPass, error)
	ListAll(ctx context.Context) ([]model.TemporaryPass, error)
}

type passService struct {
	repo   repository.PassRepository
	logger *slog.Logger
}

// NewPassService creates a new pass service.
func NewPassService(repo repository.PassRepository, logger *slog.Logger) PassService {
	return &passService{repo: repo, logger: loggerOrDefault(logger)}
}

func (s *passService) Create(ctx context.Context, creatorID uint, visitorName, plateRaw string, validFrom, validTill time.Time) (*model.TemporaryPass, error) {
	visitorName = strings.TrimSpace(visitorName)
	if visitorName == "" {
		return nil, apperrors.NewValidationError("visitor_name", "is required")
	}
	normalized := plate.Normalize(plateRaw)
	if !plate.Valid(normalized) {
		return nil, apperrors.NewValidationError("plate_number", "must be 1 to 16 non-space characters")
	}
	if validFrom.IsZero() || validTill.IsZero() {
		return nil, apperrors.NewValidationError("valid_from", "validity window is required")
	}
	if validTill.Before(validFrom) {
		return nil, apperrors.NewValidationError("valid_till", "must not be before valid_from")
	}

	pass := &model.TemporaryPass{
		UserID:      creatorID,
		VisitorName: visitorName,
		PlateNumber: normalized,
		ValidFrom:   validFrom.UTC(),
		ValidTill:   validTill.UTC(),
		Status:      model.PassStatusActive,
	}
	if err := s.repo.Create(ctx, pass); err != nil {
		return nil, apperrors.NewStorageError("create pass", err)
	}

	s.logger.InfoContext(ctx, "pass issued",
		"pass_id", pass.ID, "plate", pass.PlateNumber, "creator_id", creatorID,
		"valid_from", pass.ValidFrom, "valid_till", pass.ValidTill)
	return pass, nil
}

func (s *passService) FindActiveByPlate(ctx context.Context, plateRaw string, now time.Time) (*model.TemporaryPass, error) {
	normalized := plate.Normalize(plateRaw)
	if normalized == "" {
		return nil, nil
	}

	candidates, err := s.repo.ListByPlateAndStatus(ctx, normalized, model.PassStatusActive)
	if err != nil {
		return nil, apperrors.NewStorageError("find active pass", err)
	}
	for i := range candidates {
		if candidates[i].IsCurrentlyValid(now) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

func (s *passService) ListMine(ctx context.Context, creatorID uint) ([]model.TemporaryPass, error) {
	passes, err := s.repo.ListByUserID(ctx, creatorID)
	if err != nil {
		return nil, apperrors.NewStorageError("list passes", err)
	}
	return passes, nil
}

func (s *passService) ListAll(ctx context.Context) ([]model.TemporaryPass, error) {
	passes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("list passes", err)
	}
	return passes, nil
}
