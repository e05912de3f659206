package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gatepass/internal/auth"
	"gatepass/internal/errors"
	"gatepass/internal/policy"
)

// ContextKeyUser is where the JWT middleware stores the access token claims.
const ContextKeyUser = "user"

// ClaimsFromContext returns the access token claims of the current request,
// or nil when the request is unauthenticated.
func ClaimsFromContext(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ContextKeyUser).(*auth.Claims)
	return claims
}

// CallerFromContext builds the policy caller from the request's claims.
func CallerFromContext(c echo.Context) *policy.Caller {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return nil
	}
	return &policy.Caller{UserID: claims.UserID, Role: claims.Role}
}

func requireCaller(c echo.Context) (*policy.Caller, error) {
	caller := CallerFromContext(c)
	if caller == nil {
		return nil, errorResponse(errors.ErrUnauthorized)
	}
	return caller, nil
}

// errorResponse converts a service error into an echo HTTP error. Storage
// failures are logged here with their detail; the client only sees the
// opaque message.
func errorResponse(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationFailed(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(req); err != nil {
		return validationFailed(err)
	}
	return nil
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
