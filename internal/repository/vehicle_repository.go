package repository

import (
	"context"

	"gorm.io/gorm"

	"gatepass/internal/model"
)

// VehicleRepository defines vehicle persistence operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	FindByID(ctx context.Context, id uint) (*model.Vehicle, error)
	FindByPlate(ctx context.Context, plateNumber string) ([]model.Vehicle, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.Vehicle, error)
	ListAll(ctx context.Context) ([]model.Vehicle, error)
	UpdateStatus(ctx context.Context, id uint, status model.VehicleStatus) (*model.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create creates a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// FindByID finds a vehicle by ID.
func (r *vehicleRepository) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindByPlate returns every vehicle registered under an exact normalized
// plate, oldest first. Plates are not unique, so this may return several.
func (r *vehicleRepository) FindByPlate(ctx context.Context, plateNumber string) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).
		Where("plate_number = ?", plateNumber).
		Order("id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListByUserID lists the vehicles owned by a user.
func (r *vehicleRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListAll lists every vehicle with its owner, newest first.
func (r *vehicleRepository) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateStatus sets the status of a vehicle and returns the updated row.
// It returns gorm.ErrRecordNotFound when no row has that id.
func (r *vehicleRepository) UpdateStatus(ctx context.Context, id uint, status model.VehicleStatus) (*model.Vehicle, error) {
	res := r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	// RowsAffected is not trusted here: MySQL reports 0 for an unchanged value.
	return r.FindByID(ctx, id)
}
