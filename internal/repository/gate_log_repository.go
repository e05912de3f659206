package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gatepass/internal/model"
)

// GateLogFilter narrows an admin log listing.
type GateLogFilter struct {
	// Search matches a substring of the normalized plate.
	Search string
	// From and To bound the timestamp as [From, To). Zero means unbounded.
	From  time.Time
	To    time.Time
	Limit int
}

// GateLogRepository defines gate log persistence operations. Gate logs are
// append-only, so there is no update or delete.
type GateLogRepository interface {
	Create(ctx context.Context, log *model.GateLog) error
	FindByID(ctx context.Context, id uint) (*model.GateLog, error)
	ListByMatchedUser(ctx context.Context, userID uint) ([]model.GateLog, error)
	List(ctx context.Context, filter GateLogFilter) ([]model.GateLog, error)
}

type gateLogRepository struct {
	db *gorm.DB
}

// NewGateLogRepository creates a new gate log repository.
func NewGateLogRepository(db *gorm.DB) GateLogRepository {
	return &gateLogRepository{db: db}
}

// Create appends a gate log entry.
func (r *gateLogRepository) Create(ctx context.Context, log *model.GateLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindByID finds a gate log by ID.
func (r *gateLogRepository) FindByID(ctx context.Context, id uint) (*model.GateLog, error) {
	var log model.GateLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListByMatchedUser lists logs attributed to a user, newest first.
func (r *gateLogRepository) ListByMatchedUser(ctx context.Context, userID uint) ([]model.GateLog, error) {
	var logs []model.GateLog
	if err := r.db.WithContext(ctx).
		Where("matched_user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// List returns logs matching filter, newest first.
func (r *gateLogRepository) List(ctx context.Context, filter GateLogFilter) ([]model.GateLog, error) {
	q := r.db.WithContext(ctx).Model(&model.GateLog{})
	if filter.Search != "" {
		q = q.Where("plate_number LIKE ?", "%"+filter.Search+"%")
	}
	if !filter.From.IsZero() {
		q = q.Where("timestamp >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("timestamp < ?", filter.To)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var logs []model.GateLog
	if err := q.Order("timestamp DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
