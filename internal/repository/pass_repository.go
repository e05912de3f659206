package repository

import (
	"context"

	"gorm.io/gorm"

	"gatepass/internal/model"
)

// PassRepository defines temporary pass persistence operations.
type PassRepository interface {
	Create(ctx context.Context, pass *model.TemporaryPass) error
	ListByPlateAndStatus(ctx context.Context, plateNumber string, status model.PassStatus) ([]model.TemporaryPass, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.TemporaryPass, error)
	ListAll(ctx context.Context) ([]model.TemporaryPass, error)
}

type passRepository struct {
	db *gorm.DB
}

// NewPassRepository creates a new temporary pass repository.
func NewPassRepository(db *gorm.DB) PassRepository {
	return &passRepository{db: db}
}

// Create creates a new temporary pass.
func (r *passRepository) Create(ctx context.Context, pass *model.TemporaryPass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}

// ListByPlateAndStatus returns passes for an exact normalized plate with the
// given stored status, in ascending id order. Window checks are left to
// the caller.
func (r *passRepository) ListByPlateAndStatus(ctx context.Context, plateNumber string, status model.PassStatus) ([]model.TemporaryPass, error) {
	var passes []model.TemporaryPass
	if err := r.db.WithContext(ctx).
		Where("plate_number = ? AND status = ?", plateNumber, status).
		Order("id ASC").
		Find(&passes).Error; err != nil {
		return nil, err
	}
	return passes, nil
}

// ListByUserID lists passes created by a user, newest first.
func (r *passRepository) ListByUserID(ctx context.Context, userID uint) ([]model.TemporaryPass, error) {
	var passes []model.TemporaryPass
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&passes).Error; err != nil {
		return nil, err
	}
	return passes, nil
}

// ListAll lists every pass with its creator, newest first.
func (r *passRepository) ListAll(ctx context.Context) ([]model.TemporaryPass, error) {
	var passes []model.TemporaryPass
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&passes).Error; err != nil {
		return nil, err
	}
	return passes, nil
}
