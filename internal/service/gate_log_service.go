package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gatepass/internal/broadcast"
	"gatepass/internal/clock"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/metrics"
	"gatepass/internal/model"
	"gatepass/internal/plate"
	"gatepass/internal/repository"
)

// DefaultLogListLimit caps admin log listings when no limit is given.
const DefaultLogListLimit = 100

const logDateLayout = "2006-01-02"

// RecordInput is a gate observation reported by an edge device.
type RecordInput struct {
	PlateNumber   string
	Type          model.GateLogType
	Source        *string
	Confidence    *int
	Status        model.GateStatus
	MatchedUserID *uint
	// Timestamp defaults to the server clock when nil.
	Timestamp *time.Time
}

// LogFilter narrows the admin log listing.
type LogFilter struct {
	// Search is a plate substring; it is normalized before matching.
	Search string
	// Date is a calendar day in YYYY-MM-DD (UTC). Empty means any day.
	Date  string
	Limit int
}

// GateLogService records gate events and lists them.
type GateLogService interface {
	// Record persists the entry and then publishes it. Nothing is published
	// when persistence fails.
	Record(ctx context.Context, in RecordInput) (*model.GateLog, error)
	ListMine(ctx context.Context, userID uint) ([]model.GateLog, error)
	ListAll(ctx context.Context, filter LogFilter) ([]model.GateLog, error)
}

type gateLogService struct {
	repo         repository.GateLogRepository
	publisher    broadcast.Publisher
	clock        clock.Clock
	metrics      *metrics.Metrics
	logger       *slog.Logger
	defaultLimit int
}

// GateLogServiceOptions holds the optional collaborators of the recorder.
type GateLogServiceOptions struct {
	Clock        clock.Clock
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
	DefaultLimit int
}

// NewGateLogService creates the gate log recorder.
func NewGateLogService(repo repository.GateLogRepository, publisher broadcast.Publisher, opts GateLogServiceOptions) GateLogService {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLogListLimit
	}
	return &gateLogService{
		repo:         repo,
		publisher:    publisher,
		clock:        opts.Clock,
		metrics:      opts.Metrics,
		logger:       loggerOrDefault(opts.Logger),
		defaultLimit: opts.DefaultLimit,
	}
}

func (s *gateLogService) Record(ctx context.Context, in RecordInput) (*model.GateLog, error) {
	normalized := plate.Normalize(in.PlateNumber)
	if !plate.Valid(normalized) {
		return nil, apperrors.NewValidationError("plate_number", "must be 1 to 16 non-space characters")
	}
	if !in.Type.Valid() {
		return nil, apperrors.NewValidationError("type", "must be entry or exit")
	}
	if !in.Status.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of approved_vehicle, temp_pass, denied, not_found")
	}
	if in.Confidence != nil && (*in.Confidence < 0 || *in.Confidence > 100) {
		return nil, apperrors.NewValidationError("confidence", "must be between 0 and 100")
	}

	ts := s.clock.Now()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC()
	}

	entry := &model.GateLog{
		PlateNumber:   normalized,
		Type:          in.Type,
		Timestamp:     ts,
		Source:        in.Source,
		Confidence:    in.Confidence,
		Status:        in.Status,
		MatchedUserID: in.MatchedUserID,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "gate log not persisted", "plate", normalized, "error", err)
		return nil, apperrors.NewStorageError("create gate log", err)
	}

	s.metrics.ObserveGateLog(string(entry.Type), string(entry.Status))
	if s.publisher != nil {
		s.publisher.Publish(broadcast.NewGateEvent(entry))
	}

	s.logger.InfoContext(ctx, "gate log recorded",
		"log_id", entry.ID, "plate", entry.PlateNumber, "type", entry.Type, "status", entry.Status)
	return entry, nil
}

func (s *gateLogService) ListMine(ctx context.Context, userID uint) ([]model.GateLog, error) {
	logs, err := s.repo.ListByMatchedUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("list gate logs", err)
	}
	return logs, nil
}

func (s *gateLogService) ListAll(ctx context.Context, filter LogFilter) ([]model.GateLog, error) {
	repoFilter := repository.GateLogFilter{
		Search: plate.Normalize(filter.Search),
		Limit:  filter.Limit,
	}
	if repoFilter.Limit <= 0 {
		repoFilter.Limit = s.defaultLimit
	}
	if date := strings.TrimSpace(filter.Date); date != "" {
		day, err := time.ParseInLocation(logDateLayout, date, time.UTC)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "must be YYYY-MM-DD")
		}
		repoFilter.From = day
		repoFilter.To = day.AddDate(0, 0, 1)
	}

	logs, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.NewStorageError("list gate logs", err)
	}
	return logs, nil
}
