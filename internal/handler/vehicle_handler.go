package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/model"
	"gatepass/internal/service"
)

// VehicleHandler handles vehicle registration endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// CreateVehicleRequest registers a plate for the caller.
type CreateVehicleRequest struct {
	PlateNumber string  `json:"plate_number" validate:"required"`
	Name        *string `json:"name" validate:"omitempty,max=255"`
}

// UpdateVehicleStatusRequest sets a vehicle's approval state.
type UpdateVehicleStatusRequest struct {
	Status model.VehicleStatus `json:"status" validate:"required,oneof=pending approved rejected blocked"`
}

// ListMine godoc
// @Summary List my vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Vehicle
// @Failure 401 {object} errors.ErrorResponse
// @Router /vehicles/my [get]
func (h *VehicleHandler) ListMine(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	vehicles, err := h.vehicleService.ListMine(c.Request().Context(), caller.UserID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// ListAll godoc
// @Summary List all vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Vehicle
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /vehicles/all [get]
func (h *VehicleHandler) ListAll(c echo.Context) error {
	vehicles, err := h.vehicleService.ListAll(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Create godoc
// @Summary Register a vehicle
// @Description New vehicles are pending until an admin approves them.
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateVehicleRequest true "Vehicle"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /vehicles/add [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	var req CreateVehicleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vehicle, err := h.vehicleService.Create(c.Request().Context(), caller.UserID, req.PlateNumber, req.Name)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// UpdateStatus godoc
// @Summary Change a vehicle's status
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param request body UpdateVehicleStatusRequest true "New status"
// @Success 200 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id}/status [patch]
func (h *VehicleHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateVehicleStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vehicle, err := h.vehicleService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, vehicle)
}
