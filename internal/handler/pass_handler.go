package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gatepass/internal/clock"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// PassHandler handles temporary visitor pass endpoints.
type PassHandler struct {
	passService service.PassService
	clock       clock.Clock
}

// NewPassHandler creates a new pass handler. clk stamps the derived
// effective status on responses.
func NewPassHandler(passService service.PassService, clk clock.Clock) *PassHandler {
	if clk == nil {
		clk = clock.Real()
	}
	return &PassHandler{passService: passService, clock: clk}
}

// CreatePassRequest issues a pass for a visitor's plate.
type CreatePassRequest struct {
	VisitorName string    `json:"visitor_name" validate:"required,max=255"`
	PlateNumber string    `json:"plate_number" validate:"required"`
	ValidFrom   time.Time `json:"valid_from" validate:"required"`
	ValidTill   time.Time `json:"valid_till" validate:"required"`
}

// PassResponse is a pass plus its status as of the response time.
type PassResponse struct {
	model.TemporaryPass
	EffectiveStatus model.PassStatus `json:"effective_status"`
}

func (h *PassHandler) present(passes []model.TemporaryPass) []PassResponse {
	now := h.clock.Now()
	out := make([]PassResponse, 0, len(passes))
	for i := range passes {
		out = append(out, PassResponse{
			TemporaryPass:   passes[i],
			EffectiveStatus: passes[i].EffectiveStatus(now),
		})
	}
	return out
}

// ListMine godoc
// @Summary List passes I issued
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PassResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /passes/my [get]
func (h *PassHandler) ListMine(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	passes, err := h.passService.ListMine(c.Request().Context(), caller.UserID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, h.present(passes))
}

// ListAll godoc
// @Summary List all passes
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PassResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /passes/all [get]
func (h *PassHandler) ListAll(c echo.Context) error {
	passes, err := h.passService.ListAll(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, h.present(passes))
}

// Create godoc
// @Summary Issue a visitor pass
// @Tags passes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePassRequest true "Pass"
// @Success 201 {object} PassResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /passes/create [post]
func (h *PassHandler) Create(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	var req CreatePassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pass, err := h.passService.Create(c.Request().Context(), caller.UserID, req.VisitorName, req.PlateNumber, req.ValidFrom, req.ValidTill)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusCreated, h.present([]model.TemporaryPass{*pass})[0])
}
