package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/service"
)

// GateHandler answers edge-device verification requests.
type GateHandler struct {
	gateService service.GateService
}

// NewGateHandler creates a new gate handler.
func NewGateHandler(gateService service.GateService) *GateHandler {
	return &GateHandler{gateService: gateService}
}

// VerifyRequest carries the plate read at the gate.
type VerifyRequest struct {
	PlateNumber string `json:"plate_number" validate:"required"`
}

// Verify godoc
// @Summary Verify a plate
// @Description Read-only decision; does not write a gate log.
// @Tags edge
// @Accept json
// @Produce json
// @Security DeviceKey
// @Param request body VerifyRequest true "Plate"
// @Success 200 {object} service.Decision
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gate/verify [post]
func (h *GateHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	decision, err := h.gateService.Verify(c.Request().Context(), req.PlateNumber)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, decision)
}
