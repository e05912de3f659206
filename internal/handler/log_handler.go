package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gatepass/internal/model"
	"gatepass/internal/service"
)

// LogHandler handles gate log endpoints.
type LogHandler struct {
	logService service.GateLogService
}

// NewLogHandler creates a new log handler.
func NewLogHandler(logService service.GateLogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// CreateLogRequest is a gate observation posted by an edge device.
type CreateLogRequest struct {
	PlateNumber   string            `json:"plate_number" validate:"required"`
	Type          model.GateLogType `json:"type" validate:"required,oneof=entry exit"`
	Source        *string           `json:"source" validate:"omitempty,max=128"`
	Confidence    *int              `json:"confidence" validate:"omitempty,min=0,max=100"`
	Status        model.GateStatus  `json:"status" validate:"required,oneof=approved_vehicle temp_pass denied not_found"`
	MatchedUserID *uint             `json:"matched_user_id"`
	Timestamp     *time.Time        `json:"timestamp"`
}

// ListLogsQuery filters the admin log listing.
type ListLogsQuery struct {
	Search string `query:"search"`
	Date   string `query:"date"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// ListMine godoc
// @Summary List gate logs matched to me
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GateLog
// @Failure 401 {object} errors.ErrorResponse
// @Router /logs/my [get]
func (h *LogHandler) ListMine(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	logs, err := h.logService.ListMine(c.Request().Context(), caller.UserID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, logs)
}

// ListAll godoc
// @Summary List gate logs
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param search query string false "Plate substring"
// @Param date query string false "Day, YYYY-MM-DD (UTC)"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} model.GateLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /logs/all [get]
func (h *LogHandler) ListAll(c echo.Context) error {
	var q ListLogsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	logs, err := h.logService.ListAll(c.Request().Context(), service.LogFilter{
		Search: q.Search,
		Date:   q.Date,
		Limit:  q.Limit,
	})
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, logs)
}

// Create godoc
// @Summary Record a gate event
// @Description Persists the log and pushes it to connected dashboards.
// @Tags edge
// @Accept json
// @Produce json
// @Security DeviceKey
// @Param request body CreateLogRequest true "Gate event"
// @Success 201 {object} model.GateLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs/create [post]
func (h *LogHandler) Create(c echo.Context) error {
	var req CreateLogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.logService.Record(c.Request().Context(), service.RecordInput{
		PlateNumber:   req.PlateNumber,
		Type:          req.Type,
		Source:        req.Source,
		Confidence:    req.Confidence,
		Status:        req.Status,
		MatchedUserID: req.MatchedUserID,
		Timestamp:     req.Timestamp,
	})
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusCreated, entry)
}
